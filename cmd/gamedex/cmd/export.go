package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command with app dependencies.
func NewExportCommand(app AppContext) *cobra.Command {
	var (
		format string
		output string
	)

	c := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the catalog",
		Long: `Export serializes the current catalog under the document schema.
An unmodified catalog exports byte-for-byte the same data as the bundled
document. Session additions are included; they are not persisted anywhere
else.`,
		Example: `  gamedex export
  gamedex export --format yaml --output games.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			g, err := app.Gamedex()
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}

			return g.Catalog().Export(out, format)
		},
	}

	c.Flags().StringVar(&format, "format", "json", "export format: json or yaml")
	c.Flags().StringVar(&output, "output", "", "write to this file instead of stdout")

	return c
}
