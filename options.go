package gamedex

import (
	"github.com/gfdac/gamedex/pkg/catalog"
)

// Option is a function that configures a Gamedex instance
type Option func(*config) error

// config holds the configuration for a Gamedex instance
type config struct {
	catalog        *catalog.Catalog
	catalogOptions []catalog.Option
}

// defaultConfig returns the default configuration: the bundled document
// compiled into the binary.
func defaultConfig() *config {
	return &config{
		catalogOptions: []catalog.Option{catalog.WithEmbedded()},
	}
}

// WithCatalog configures an existing catalog to use instead of loading one.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *config) error {
		c.catalog = cat
		return nil
	}
}

// WithEmbedded configures the catalog to load the bundled document.
func WithEmbedded() Option {
	return func(c *config) error {
		c.catalogOptions = []catalog.Option{catalog.WithEmbedded()}
		return nil
	}
}

// WithPath configures the catalog to load its document from a directory on
// disk instead of the bundled copy.
func WithPath(path string) Option {
	return func(c *config) error {
		c.catalogOptions = []catalog.Option{catalog.WithPath(path)}
		return nil
	}
}
