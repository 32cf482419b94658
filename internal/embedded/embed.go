// Package embedded bundles the catalog document into the binary.
package embedded

import (
	"embed"
	"io/fs"
)

// games embeds the bundled catalog document at build time.
//
//go:embed catalog/games.json
var games embed.FS

// CatalogFS returns the filesystem rooted at the catalog directory.
func CatalogFS() fs.FS {
	sub, err := fs.Sub(games, "catalog")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic("embedded: catalog directory missing: " + err.Error())
	}
	return sub
}
