package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card is a bordered container with a title, an optional subtitle, a body,
// and an optional footer (usually a ButtonRow).
type Card struct {
	Title    string
	Subtitle string
	Body     string
	Footer   string
	Width    int  // outer width including border; 0 = fit content
	Height   int  // minimum outer height including border; 0 = fit content
	Errored  bool // render with the error border and body color
}

// frameWidth is the horizontal space taken by border and padding.
const frameWidth = 2 + 4

// InnerWidth returns the content width for a card of the given outer width.
// It never returns less than 1.
func InnerWidth(outer int) int {
	w := outer - frameWidth
	if w < 1 {
		return 1
	}
	return w
}

// Render draws the card. The body is word-wrapped to the inner width.
func (c Card) Render(s Styles) string {
	border, body := s.Border, s.Body
	if c.Errored {
		border, body = s.ErrorBorder, s.ErrorBody
	}

	text := c.Body
	if c.Width > 0 {
		text = ansi.Wordwrap(text, InnerWidth(c.Width), " -")
	}

	parts := []string{s.Title.Render(c.Title)}
	if c.Subtitle != "" {
		sub := c.Subtitle
		if c.Width > 0 {
			sub = ansi.Wordwrap(sub, InnerWidth(c.Width), " ")
		}
		parts = append(parts, s.Subtitle.Render(sub))
	}
	parts = append(parts, "", body.Render(text))
	if c.Footer != "" {
		parts = append(parts, "", c.Footer)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if c.Width > 0 {
		content = lipgloss.PlaceHorizontal(InnerWidth(c.Width), lipgloss.Center, content)
		border = border.Width(c.Width - 2)
	}
	if c.Height > 2 {
		border = border.Height(c.Height - 2)
	}
	return border.Render(content)
}
