package catalog

import (
	"io/fs"
	"os"

	"github.com/gfdac/gamedex/internal/embedded"
)

// DocumentName is the bundled document the catalog loads by default.
const DocumentName = "games.json"

// catalogOptions holds the configuration for a catalog instance.
type catalogOptions struct {
	readFS   fs.FS
	document string
	autoLoad bool
}

// catalogDefaults returns the default catalog configuration.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		document: DocumentName,
		autoLoad: true,
	}
}

// apply applies the given options and returns the configuration.
func (o *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a function that configures a catalog instance.
type Option func(*catalogOptions)

// WithEmbedded configures the catalog to load the document compiled into
// the binary. This is the production configuration.
func WithEmbedded() Option {
	return func(o *catalogOptions) {
		o.readFS = embedded.CatalogFS()
	}
}

// WithFS configures the catalog to load from a custom filesystem.
func WithFS(fsys fs.FS) Option {
	return func(o *catalogOptions) {
		o.readFS = fsys
	}
}

// WithPath configures the catalog to load from a directory on disk.
// Useful for development when editing the document without recompiling.
func WithPath(path string) Option {
	return func(o *catalogOptions) {
		o.readFS = os.DirFS(path)
	}
}

// WithDocument overrides the document name read from the filesystem.
func WithDocument(name string) Option {
	return func(o *catalogOptions) {
		o.document = name
	}
}

// WithAutoLoad controls whether New loads the document immediately.
// Disable it to register observers before the initial Load.
func WithAutoLoad(enabled bool) Option {
	return func(o *catalogOptions) {
		o.autoLoad = enabled
	}
}
