// Package tui provides the bubbletea dashboard hosting the clock and joke
// widgets.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/clock"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/joke"
)

// Model is the root bubbletea model for the dashboard.
type Model struct {
	// Widgets
	clock    clock.Model
	hasClock bool
	joke     joke.Model
	hasJoke  bool

	// Layout and focus
	layout Layout
	ring   focusRing
	focus  FocusTarget
	theme  Theme
	keys   KeyMap
	help   help.Model
	width  int
	height int

	done bool
}

// Option configures the dashboard.
type Option func(*Model)

// WithClock shows the given clock widget.
func WithClock(c clock.Model) Option {
	return func(m *Model) {
		m.clock = c
		m.hasClock = true
	}
}

// WithJoke shows the given joke widget.
func WithJoke(j joke.Model) Option {
	return func(m *Model) {
		m.joke = j
		m.hasJoke = true
	}
}

// New creates the dashboard. Widgets not passed as options are hidden.
func New(accentColor string, opts ...Option) Model {
	m := Model{
		theme:  NewTheme(accentColor),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.ring = newFocusRing(m.hasClock, m.hasJoke)
	if len(m.ring) > 0 {
		m.focus = m.ring[0]
	}
	m.keys = DefaultKeyMap(m.hasClock, m.hasJoke)
	m.layout = Calculate(m.width, m.height, m.cardCount())
	return m
}

func (m Model) cardCount() int {
	n := 0
	if m.hasClock {
		n++
	}
	if m.hasJoke {
		n++
	}
	return n
}

// Clock returns the hosted clock widget.
func (m Model) Clock() clock.Model { return m.clock }

// Joke returns the hosted joke widget.
func (m Model) Joke() joke.Model { return m.joke }

// Focus returns the button holding keyboard focus.
func (m Model) Focus() FocusTarget { return m.focus }

// Done reports whether the dashboard has torn its widgets down.
func (m Model) Done() bool { return m.done }

// Init starts every visible widget.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.hasClock {
		cmds = append(cmds, m.clock.Init())
	}
	if m.hasJoke {
		cmds = append(cmds, m.joke.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout = Calculate(msg.Width, msg.Height, m.cardCount())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.delegate(msg)
}

// delegate forwards a message to every visible widget. Widgets ignore
// messages addressed to other instances.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.hasClock {
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.hasJoke {
		var cmd tea.Cmd
		m.joke, cmd = m.joke.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.teardown(), tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.focus = m.ring.Next(m.focus)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = m.ring.Prev(m.focus)
		return m, nil
	case key.Matches(msg, m.keys.Press):
		return m.press(m.focus)
	case key.Matches(msg, m.keys.Use24):
		return m.press(FocusClock24)
	case key.Matches(msg, m.keys.Use12):
		return m.press(FocusClock12)
	case key.Matches(msg, m.keys.NewJoke):
		return m.press(FocusJoke)
	}
	return m, nil
}

// press activates the button identified by target.
func (m Model) press(target FocusTarget) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if b := target.clockButton(); b >= 0 && m.hasClock {
		m.clock = m.clock.Press(b)
		return m, nil
	}
	if target.jokeButton() >= 0 && m.hasJoke {
		var cmd tea.Cmd
		m.joke, cmd = m.joke.RequestNewJoke()
		return m, cmd
	}
	return m, nil
}

// teardown stops the clock and closes the joke widget so that no pending
// tick or response mutates them after the program exits.
func (m Model) teardown() Model {
	if m.hasClock {
		m.clock = m.clock.Stop()
	}
	if m.hasJoke {
		m.joke = m.joke.Close()
	}
	m.done = true
	return m
}

// View renders the dashboard.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.",
			m.width, m.height, MinCardWidth, MinHeight)
		return m.theme.warning.
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	var cards []string
	i := 0
	if m.hasClock {
		cards = append(cards, m.clock.View(m.theme.Styles, m.layout.Cards[i].Width, m.layout.Cards[i].Height, m.focus.clockButton()))
		i++
	}
	if m.hasJoke {
		cards = append(cards, m.joke.View(m.theme.Styles, m.layout.Cards[i].Width, m.layout.Cards[i].Height, m.focus.jokeButton()))
	}

	var body string
	if m.layout.Horizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	footer := m.theme.footer.Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
