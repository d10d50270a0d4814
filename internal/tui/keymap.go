package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Press   key.Binding
	Use24   key.Binding
	Use12   key.Binding
	NewJoke key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings. Bindings for hidden widgets
// are disabled.
func DefaultKeyMap(hasClock, hasJoke bool) KeyMap {
	k := KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Use24: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "24-hour"),
		),
		Use12: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "12-hour"),
		),
		NewJoke: key.NewBinding(
			key.WithKeys("n", "r"),
			key.WithHelp("n", "new joke"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	k.Use24.SetEnabled(hasClock)
	k.Use12.SetEnabled(hasClock)
	k.NewJoke.SetEnabled(hasJoke)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.NewJoke, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press},
		{k.Use24, k.Use12, k.NewJoke},
		{k.Help, k.Quit},
	}
}
