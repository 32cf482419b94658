package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	entries := []Entry{
		{Title: "Zelda"},
		{Title: "Mario Kart 7"},
	}
	assert.Equal(t, entries, Filter(entries, ""))
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	entries := []Entry{
		{Title: "Zelda"},
		{Title: "Mario Kart 7"},
		{Title: "Super Mario 3D Land"},
	}

	assert.Equal(t, []string{"Zelda"}, titles(Filter(entries, "zel")))
	assert.Equal(t, []string{"Zelda"}, titles(Filter(entries, "ZEL")))
	assert.Empty(t, Filter(entries, "xyz"))
	assert.Equal(t, []string{"Mario Kart 7", "Super Mario 3D Land"}, titles(Filter(entries, "mario")))
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	entries := []Entry{
		{Title: "Mario Golf"},
		{Title: "Zelda"},
		{Title: "Mario Tennis"},
		{Title: "Mario Party"},
	}

	got := titles(Filter(entries, "Mario"))
	assert.Equal(t, []string{"Mario Golf", "Mario Tennis", "Mario Party"}, got)
}

func TestFilterIsSubsequence(t *testing.T) {
	entries := []Entry{
		{Title: "Kirby Triple Deluxe"},
		{Title: "Kid Icarus: Uprising"},
		{Title: "Tomodachi Life"},
	}

	got := Filter(entries, "ki")
	require.NotEmpty(t, got)

	// Every match appears in the original sequence, in the same order.
	i := 0
	for _, want := range got {
		for i < len(entries) && entries[i].Title != want.Title {
			i++
		}
		require.Less(t, i, len(entries), "%q not found in order", want.Title)
		i++
	}
}

func TestFilterFoldsUnicode(t *testing.T) {
	entries := []Entry{
		{Title: "Étrian Odyssey"},
		{Title: "Theatrhythm Final Fantasy"},
	}

	assert.Equal(t, []string{"Étrian Odyssey"}, titles(Filter(entries, "étrian")))
	assert.Equal(t, []string{"Étrian Odyssey"}, titles(Filter(entries, "ÉTRIAN")))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{Title: "Zelda"},
		{Title: "Mario Kart 7"},
	}
	original := make([]Entry, len(entries))
	copy(original, entries)

	_ = Filter(entries, "zelda")
	assert.Equal(t, original, entries)
}

func TestCatalogFilter(t *testing.T) {
	cat := NewEmpty()
	cat.Add(Entry{Title: "Zelda"})

	assert.Equal(t, []string{"Zelda"}, titles(cat.Filter("zel")))
	assert.Empty(t, cat.Filter("xyz"))
}
