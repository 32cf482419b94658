package catalog

import (
	"encoding/json"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfdac/gamedex/internal/embedded"
	"github.com/gfdac/gamedex/pkg/errors"
)

func TestLoadMissingDocumentFails(t *testing.T) {
	_, err := New(WithFS(fstest.MapFS{}))
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestLoadUnparsableDocumentFails(t *testing.T) {
	fsys := fstest.MapFS{
		"games.json": {Data: []byte(`{not json`)},
	}
	_, err := New(WithFS(fsys))
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"games.json": {Data: []byte(`[{"Game":"Zelda","Year":1986,"Dev":"Nintendo","Publisher":"Nintendo","Platform":"the NES","Rating":10}]`)},
	}
	_, err := New(WithFS(fsys))
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestLoadRejectsNonIntegerYear(t *testing.T) {
	fsys := fstest.MapFS{
		"games.json": {Data: []byte(`[{"Game":"Zelda","Year":"1986","Dev":"Nintendo","Publisher":"Nintendo","Platform":"the NES"}]`)},
	}
	_, err := New(WithFS(fsys))
	require.Error(t, err)
	assert.True(t, errors.IsLoadError(err))
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"games.json": {Data: []byte(`[
			{"Game":"A","Year":2011,"Dev":"d","Publisher":"p","Platform":"the 3DS"},
			{"Game":"B","Year":2012,"Dev":"d","Publisher":"p","Platform":"the 3DS"},
			{"Game":"C","Year":2013,"Dev":"d","Publisher":"p","Platform":"the 3DS"}
		]`)},
	}
	cat, err := New(WithFS(fsys))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(cat.Entries()))
}

func TestLoadCustomDocumentName(t *testing.T) {
	fsys := fstest.MapFS{
		"library.json": {Data: []byte(`[{"Game":"Zelda","Year":1986,"Dev":"Nintendo","Publisher":"Nintendo","Platform":"the NES"}]`)},
	}
	cat, err := New(WithFS(fsys), WithDocument("library.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

// An unmodified catalog snapshot reproduces the bundled document's data,
// including absent optional links.
func TestSnapshotRoundTrip(t *testing.T) {
	original, err := fs.ReadFile(embedded.CatalogFS(), DocumentName)
	require.NoError(t, err)

	cat, err := New(WithEmbedded())
	require.NoError(t, err)

	snapshot, err := cat.Snapshot()
	require.NoError(t, err)

	var want, got []map[string]any
	require.NoError(t, json.Unmarshal(original, &want))
	require.NoError(t, json.Unmarshal(snapshot, &got))
	assert.Equal(t, want, got)
}

func TestSnapshotOmitsAbsentLinks(t *testing.T) {
	fsys := fstest.MapFS{
		"games.json": {Data: []byte(`[{"Game":"Zelda","Year":1986,"Dev":"Nintendo","Publisher":"Nintendo","Platform":"the NES"}]`)},
	}
	cat, err := New(WithFS(fsys))
	require.NoError(t, err)

	snapshot, err := cat.Snapshot()
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(snapshot, &docs))
	require.Len(t, docs, 1)

	for _, key := range []string{"GameLink", "DevLink", "PublisherLink", "PlatformLink"} {
		_, present := docs[0][key]
		assert.False(t, present, "absent link %s must not appear in the snapshot", key)
	}
	assert.NotContains(t, docs[0], "ID", "process-lifetime IDs are never serialized")
}
