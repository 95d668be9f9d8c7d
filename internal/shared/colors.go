// Package shared provides shared utilities for all lint-summary commands.
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Standard color definitions.
var (
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Mauve  = lipgloss.Color("#cba6f7")
	Sky    = lipgloss.Color("#89dceb")
	Text   = lipgloss.Color("#cdd6f4")
)

// Styles groups the styles used for report output. They are bound to a
// renderer so the colour profile follows the destination writer.
type Styles struct {
	Title lipgloss.Style
	Count lipgloss.Style
	Item  lipgloss.Style
	Total lipgloss.Style
	Error lipgloss.Style
}

// NewStyles builds the standard styles for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().Bold(true).Foreground(Mauve),
		Count: r.NewStyle().Foreground(Yellow),
		Item:  r.NewStyle().Foreground(Text),
		Total: r.NewStyle().Bold(true).Foreground(Sky),
		Error: r.NewStyle().Foreground(Red),
	}
}
