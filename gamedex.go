// Package gamedex manages an in-memory catalog of game titles loaded once
// from a bundled JSON document, with prepend-insertion of user-submitted
// entries, live title filtering, and synchronous event hooks for views.
package gamedex

import (
	"github.com/gfdac/gamedex/pkg/catalog"
)

// Gamedex owns a catalog and exposes the operations the presentation layer
// consumes: the current sequence, filtered views, validated submission, and
// change notification.
type Gamedex interface {
	// Catalog returns the underlying catalog store.
	Catalog() *catalog.Catalog

	// Entries returns a snapshot of the current ordered sequence.
	Entries() []catalog.Entry

	// Filter returns the entries whose titles match query.
	Filter(query string) []catalog.Entry

	// Submit validates a form submission and adds the resulting entry.
	Submit(sub catalog.Submission) (catalog.Entry, error)

	// OnEntryAdded registers a callback for when entries are added.
	OnEntryAdded(catalog.EntryAddedHook)

	// OnLoaded registers a callback for when the catalog loads.
	OnLoaded(catalog.LoadedHook)
}

// gamedex is the internal implementation of the Gamedex interface
type gamedex struct {
	catalog *catalog.Catalog
	config  *config
}

// New creates a new Gamedex instance with the given options. By default it
// loads the document bundled into the binary; a missing or malformed
// document fails construction with a LoadError, which callers treat as a
// startup-time fatal condition.
func New(opts ...Option) (Gamedex, error) {
	g := &gamedex{
		config: defaultConfig(),
	}

	if err := g.options(opts...); err != nil {
		return nil, err
	}

	if g.config.catalog != nil {
		g.catalog = g.config.catalog
	} else {
		cat, err := catalog.New(g.config.catalogOptions...)
		if err != nil {
			return nil, err
		}
		g.catalog = cat
	}

	return g, nil
}

// options applies the given options to the configuration
func (g *gamedex) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(g.config); err != nil {
			return err
		}
	}
	return nil
}

// Catalog returns the underlying catalog store
func (g *gamedex) Catalog() *catalog.Catalog {
	return g.catalog
}

// Entries returns a snapshot of the current ordered sequence
func (g *gamedex) Entries() []catalog.Entry {
	return g.catalog.Entries()
}

// Filter returns the entries whose titles match query
func (g *gamedex) Filter(query string) []catalog.Entry {
	return g.catalog.Filter(query)
}

// Submit validates a form submission and adds the resulting entry
func (g *gamedex) Submit(sub catalog.Submission) (catalog.Entry, error) {
	return sub.Submit(g.catalog)
}

// OnEntryAdded registers a callback for when entries are added
func (g *gamedex) OnEntryAdded(fn catalog.EntryAddedHook) {
	g.catalog.OnEntryAdded(fn)
}

// OnLoaded registers a callback for when the catalog loads
func (g *gamedex) OnLoaded(fn catalog.LoadedHook) {
	g.catalog.OnLoaded(fn)
}
