package clock

import "github.com/LISSConsulting/LISSTech.Widgets/internal/tui/components"

const (
	title    = "DIGITAL CLOCK"
	subtitle = "Display current time in hours, minutes, and seconds."
)

// Button indexes, in render order.
const (
	Button24Hour = iota
	Button12Hour
	ButtonCount
)

// ButtonLabels are the mode selector labels in render order.
var ButtonLabels = [ButtonCount]string{"24-Hour Format", "12-Hour Format"}

// Press applies the mode selector at index button. Unknown indexes are ignored.
func (m Model) Press(button int) Model {
	switch button {
	case Button24Hour:
		return m.SetDisplayMode(true)
	case Button12Hour:
		return m.SetDisplayMode(false)
	}
	return m
}

// View renders the clock card at the given outer size. focused is the index
// of the button holding keyboard focus, or -1.
func (m Model) View(s components.Styles, width, height, focused int) string {
	buttons := make([]components.Button, ButtonCount)
	for i, label := range ButtonLabels {
		buttons[i] = components.Button{Label: label, Focused: i == focused}
	}
	if m.use24Hour {
		buttons[Button24Hour].Variant = components.VariantPrimary
	} else {
		buttons[Button12Hour].Variant = components.VariantPrimary
	}

	return components.Card{
		Title:    title,
		Subtitle: subtitle,
		Body:     m.FormattedTime(),
		Footer:   components.ButtonRow(s, components.InnerWidth(width), buttons...),
		Width:    width,
		Height:   height,
	}.Render(s)
}
