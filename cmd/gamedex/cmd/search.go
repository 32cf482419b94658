package cmd

import (
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command with app dependencies.
func NewSearchCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Filter catalog entries by title",
		Long: `Search returns the entries whose title contains the query as a
case-insensitive substring, preserving catalog order. No matches is an
empty result, not an error.`,
		Example: `  gamedex search zelda
  gamedex search "mario kart" -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			g, err := app.Gamedex()
			if err != nil {
				return err
			}

			matches := g.Filter(args[0])
			app.Logger().Debug().Str("query", args[0]).Int("matches", len(matches)).Msg("Filtered catalog")
			return writeEntries(c.OutOrStdout(), matches, app.Format(), app.NoColor())
		},
	}
}
