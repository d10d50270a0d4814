package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant selects how a Button is emphasised.
type Variant int

const (
	VariantDefault Variant = iota
	VariantPrimary         // the currently selected option
)

// Button is a labelled control. Activation is dispatched by the caller; the
// button only renders.
type Button struct {
	Label   string
	Variant Variant
	Focused bool
}

// Render draws the button. Focus wins over the variant so the keyboard
// cursor is always visible.
func (b Button) Render(s Styles) string {
	style := s.Button
	switch {
	case b.Focused:
		style = s.ButtonFocused
	case b.Variant == VariantPrimary:
		style = s.ButtonPrimary
	}
	label := b.Label
	if b.Focused {
		label = "▸ " + label
	}
	return style.Render(label)
}

// ButtonRow renders buttons side by side separated by a single space.
// When the row does not fit width, buttons are stacked instead.
func ButtonRow(s Styles, width int, buttons ...Button) string {
	if len(buttons) == 0 {
		return ""
	}
	rendered := make([]string, len(buttons))
	for i, b := range buttons {
		rendered[i] = b.Render(s)
	}

	row := strings.Join(rendered, " ")
	if width <= 0 || lipgloss.Width(row) <= width {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
