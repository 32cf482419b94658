package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Snapshot marshals the current sequence under the fixed document schema.
// Deserializing the bundled document and snapshotting an unmodified catalog
// reproduces the original data, including the absence of optional links.
func (c *Catalog) Snapshot() ([]byte, error) {
	return MarshalDocument(c.Entries())
}

// Export writes a snapshot of the catalog to w in the given format
// ("json" or "yaml").
func (c *Catalog) Export(w io.Writer, format string) error {
	return Export(w, c.Entries(), format)
}

// MarshalDocument marshals entries under the fixed document schema.
func MarshalDocument(entries []Entry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "    ")
}

// MarshalDocumentYAML renders entries as YAML under the same schema, for
// human inspection.
func MarshalDocumentYAML(entries []Entry) ([]byte, error) {
	return yaml.Marshal(entries)
}

// Export writes entries to w in the given format ("json" or "yaml").
func Export(w io.Writer, entries []Entry, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "", "json":
		data, err = MarshalDocument(entries)
	case "yaml", "yml":
		data, err = MarshalDocumentYAML(entries)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
