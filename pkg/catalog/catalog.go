// Package catalog provides the in-memory game catalog for gamedex.
// It owns the ordered sequence of entries, loads the initial snapshot from
// a bundled JSON document, supports prepend-insertion of new entries, and
// derives filtered views for display.
//
// The catalog is designed for a single-process, event-driven consumer: all
// additions happen at the head of the sequence, entries are never mutated
// or removed, and nothing is persisted beyond process memory. Access is
// still guarded by a RWMutex so library consumers do not have to reason
// about which goroutine reads a snapshot.
//
// Example usage:
//
//	// Production: load the bundled document compiled into the binary.
//	cat, err := catalog.New(catalog.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, entry := range cat.Entries() {
//	    fmt.Println(entry.Title)
//	}
//
//	// Development: load from files on disk.
//	cat, err = catalog.New(catalog.WithPath("./internal/embedded/catalog"))
package catalog

import (
	"sync"

	"github.com/gfdac/gamedex/pkg/errors"
)

// Catalog owns the ordered sequence of game entries. New entries are placed
// first; existing entries are never reordered, mutated, or removed.
type Catalog struct {
	mu      sync.RWMutex
	config  *catalogOptions
	entries []Entry
	hooks   *hooks
}

// New creates a catalog with the given options.
// WithEmbedded() = bundled document compiled into the binary
// WithPath(dir) = document read from a directory on disk
// No filesystem option = empty in-memory catalog.
//
// When a filesystem is configured the document is loaded immediately unless
// WithAutoLoad(false) is set; a missing, unreadable, or malformed document
// is returned as a LoadError, which callers treat as fatal.
func New(opts ...Option) (*Catalog, error) {
	cat := &Catalog{
		config: catalogDefaults().apply(opts...),
		hooks:  newHooks(),
	}

	if cat.config.readFS != nil && cat.config.autoLoad {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// NewEmbedded creates a catalog backed by the bundled document.
// This is the recommended constructor for production use.
func NewEmbedded() (*Catalog, error) {
	return New(WithEmbedded())
}

// NewEmpty creates an in-memory empty catalog, useful for tests and
// temporary catalogs that never load a document.
func NewEmpty() *Catalog {
	return &Catalog{
		config: catalogDefaults(),
		hooks:  newHooks(),
	}
}

// Add inserts entry at position 0 of the sequence. The store performs no
// deduplication and no validation; gating user input is the submission
// path's job. Registered observers are notified synchronously before Add
// returns.
func (c *Catalog) Add(entry Entry) {
	if entry.ID == "" {
		entry.ID = newEntryID()
	}

	c.mu.Lock()
	c.entries = append([]Entry{entry}, c.entries...)
	c.mu.Unlock()

	c.hooks.notifyAdded(entry)
}

// Entries returns a snapshot copy of the current ordered sequence.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]Entry, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// First returns the most recently added entry, if any.
func (c *Catalog) First() (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[0], true
}

// Find returns the entry with the given ID.
func (c *Catalog) Find(id string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, &errors.NotFoundError{Resource: "entry", ID: id}
}

// Filter returns the subsequence of the catalog whose titles contain query,
// in original relative order. See the package-level Filter function.
func (c *Catalog) Filter(query string) []Entry {
	return Filter(c.Entries(), query)
}

// OnEntryAdded registers a callback invoked synchronously after every Add.
func (c *Catalog) OnEntryAdded(fn EntryAddedHook) {
	c.hooks.onEntryAdded(fn)
}

// OnLoaded registers a callback invoked synchronously after every Load.
func (c *Catalog) OnLoaded(fn LoadedHook) {
	c.hooks.onLoaded(fn)
}
