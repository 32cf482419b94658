package catalog

import (
	"bytes"
	"encoding/json"
	"io/fs"

	"github.com/gfdac/gamedex/pkg/errors"
)

// Load reads the bundled document from the configured filesystem and
// replaces the catalog's sequence with its contents. Entries in the
// document are trusted as-is and not re-validated; each receives a fresh
// process-lifetime ID. Registered observers are notified after the
// sequence is replaced.
//
// A missing file, unreadable bytes, or a schema mismatch is a startup-time
// configuration error: Load returns a LoadError and callers must not
// continue with a partially initialized catalog.
func (c *Catalog) Load() error {
	if c.config.readFS == nil {
		return nil // Memory catalog - nothing to load
	}

	data, err := fs.ReadFile(c.config.readFS, c.config.document)
	if err != nil {
		return errors.WrapIO(c.config.document, err)
	}

	entries, err := decodeDocument(data)
	if err != nil {
		return errors.WrapParse("json", c.config.document, err)
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()

	c.hooks.notifyLoaded(c.Entries())
	return nil
}

// decodeDocument decodes the bundled document strictly: the document must
// be a JSON array of objects carrying only the fixed schema keys, and Year
// must be a plain integer.
func decodeDocument(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].ID = newEntryID()
	}
	return entries, nil
}
