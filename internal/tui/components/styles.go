// Package components provides the card and button primitives the widgets
// are laid out with. Components are stateless: callers pass everything a
// render needs.
package components

import "github.com/charmbracelet/lipgloss"

// DefaultAccent is used when no accent color is configured.
const DefaultAccent = "#7D56F4"

var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorDark  = lipgloss.Color("#333333")
	colorRed   = lipgloss.Color("#FF6B6B")
)

// Styles holds the accent-derived styles shared by cards and buttons.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	ErrorBody   lipgloss.Style
	Border      lipgloss.Style
	ErrorBorder lipgloss.Style

	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
	ButtonFocused lipgloss.Style
}

// NewStyles builds Styles from a hex accent color. An empty accent selects
// DefaultAccent.
func NewStyles(accent string) Styles {
	if accent == "" {
		accent = DefaultAccent
	}
	c := lipgloss.Color(accent)
	pill := lipgloss.NewStyle().Padding(0, 2)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(c),
		Subtitle:  lipgloss.NewStyle().Foreground(colorGray),
		Body:      lipgloss.NewStyle().Foreground(colorWhite),
		ErrorBody: lipgloss.NewStyle().Foreground(colorRed),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(1, 2),
		ErrorBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRed).
			Padding(1, 2),

		Button: pill.
			Foreground(colorWhite).
			Background(colorDark),
		ButtonPrimary: pill.
			Foreground(colorWhite).
			Background(c).
			Bold(true),
		ButtonFocused: pill.
			Foreground(colorDark).
			Background(lipgloss.Color("#FFD93D")).
			Bold(true),
	}
}
