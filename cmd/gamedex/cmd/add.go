package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gfdac/gamedex/pkg/catalog"
)

// NewAddCommand creates the add command with app dependencies.
func NewAddCommand(app AppContext) *cobra.Command {
	var sub catalog.Submission

	c := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the catalog for this session",
		Long: `Add validates the given fields and prepends a new entry to the
catalog. Title, developer, and publisher must be non-empty and year must be
a plain integer. The entry exists for this process only; the bundled
document is never modified.`,
		Example: `  gamedex add --title "Mario Kart 7" --developer "Nintendo EAD" --publisher Nintendo --year 2011`,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			g, err := app.Gamedex()
			if err != nil {
				return err
			}

			entry, err := g.Submit(sub)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Str("title", entry.Title).
				Int("year", entry.Year).
				Msg("Entry added")
			_, err = fmt.Fprintf(c.OutOrStdout(), "Added %q (%d); catalog now has %d entries\n",
				entry.Title, entry.Year, len(g.Entries()))
			return err
		},
	}

	c.Flags().StringVar(&sub.Title, "title", "", "game title")
	c.Flags().StringVar(&sub.Developer, "developer", "", "developer name")
	c.Flags().StringVar(&sub.Publisher, "publisher", "", "publisher name")
	c.Flags().StringVar(&sub.Year, "year", "", "release year")

	return c
}
