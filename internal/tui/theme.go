package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui/components"
)

// Theme holds accent-color-derived styles for the dashboard.
type Theme struct {
	components.Styles
	footer  lipgloss.Style
	warning lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	return Theme{
		Styles:  components.NewStyles(accentColor),
		footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D")).Bold(true),
	}
}
