// Package cmd implements the gamedex CLI subcommands.
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/gfdac/gamedex"
	"github.com/gfdac/gamedex/pkg/catalog"
)

// AppContext defines the interface commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Gamedex() (gamedex.Gamedex, error)
	Logger() *zerolog.Logger
	Format() string
	NoColor() bool
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// writeEntries renders entries to out in the requested format.
// Table is the default; json and yaml reuse the document schema.
func writeEntries(out io.Writer, entries []catalog.Entry, format string, noColor bool) error {
	switch format {
	case "", "table":
		return writeTable(out, entries, noColor)
	case "json", "yaml", "yml":
		return catalog.Export(out, entries, format)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// writeTable renders a fixed-width table of the entries.
func writeTable(out io.Writer, entries []catalog.Entry, noColor bool) error {
	header := fmt.Sprintf("%-44s %-6s %-22s %-22s %s", "TITLE", "YEAR", "DEVELOPER", "PUBLISHER", "PLATFORM")
	if !noColor {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(out, "%-44s %-6d %-22s %-22s %s\n",
			truncate(e.Title, 44), e.Year, truncate(e.Developer, 22), truncate(e.Publisher, 22), e.Platform); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
