package joke

import "github.com/LISSConsulting/LISSTech.Widgets/internal/tui/components"

const title = "Random Joke 😉"

// ButtonCount is the number of buttons the widget renders.
const ButtonCount = 1

// View renders the joke card at the given outer size. focused is the index
// of the button holding keyboard focus, or -1.
func (m Model) View(s components.Styles, width, height, focused int) string {
	body := m.Text()
	if m.state == StateLoading {
		body = m.spinner.View() + " " + body
	}
	button := components.Button{
		Label:   ButtonLabel(m.state),
		Variant: components.VariantPrimary,
		Focused: focused == 0,
	}
	return components.Card{
		Title:   title,
		Body:    body,
		Footer:  components.ButtonRow(s, components.InnerWidth(width), button),
		Width:   width,
		Height:  height,
		Errored: m.HasError(),
	}.Render(s)
}
