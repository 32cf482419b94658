package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gfdac/gamedex/internal/tui"
)

// NewBrowseCommand creates the browse command with app dependencies.
func NewBrowseCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Browse opens a full-screen terminal browser over the catalog:
type / to filter by title as you type, enter to view an entry's details,
and a to add an entry for this session.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			g, err := app.Gamedex()
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(g), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
