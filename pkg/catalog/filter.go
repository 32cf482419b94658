package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the subsequence of entries whose title contains query as a
// substring under case-insensitive, locale-aware comparison (Unicode case
// folding), preserving original relative order.
//
// An empty query returns entries unchanged. Filter never mutates its input
// and never fails: no matches is an empty result, not an error. It is a
// pure projection, cheap enough to recompute on every keystroke.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	// cases.Caser is stateful, so build one per call.
	folder := cases.Fold()
	needle := folder.String(query)

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(folder.String(entry.Title), needle) {
			matched = append(matched, entry)
		}
	}
	return matched
}
