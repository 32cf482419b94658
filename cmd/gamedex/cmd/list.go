package cmd

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command with app dependencies.
func NewListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all catalog entries",
		Long: `List displays every entry in the catalog in insertion order,
newest additions first.`,
		Example: `  gamedex list
  gamedex list -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			g, err := app.Gamedex()
			if err != nil {
				return err
			}

			entries := g.Entries()
			app.Logger().Debug().Int("count", len(entries)).Msg("Listing catalog entries")
			return writeEntries(c.OutOrStdout(), entries, app.Format(), app.NoColor())
		},
	}
}
