// Package tui provides the interactive terminal browser over the catalog.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the browser.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Status   lipgloss.Style
	Search   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Link     lipgloss.Style
	Notice   lipgloss.Style
	FormBox  lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the browser's default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Header:   lipgloss.NewStyle().Bold(true),
		Status:   lipgloss.NewStyle().Faint(true),
		Search:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Label:    lipgloss.NewStyle().Bold(true).Width(12),
		Value:    lipgloss.NewStyle(),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("33")),
		Notice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Border(lipgloss.RoundedBorder()).Padding(0, 1),
		FormBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}
