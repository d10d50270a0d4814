package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap(true, true)
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"tab → next", tea.KeyMsg{Type: tea.KeyTab}, k.Next},
		{"right → next", tea.KeyMsg{Type: tea.KeyRight}, k.Next},
		{"shift+tab → prev", tea.KeyMsg{Type: tea.KeyShiftTab}, k.Prev},
		{"enter → press", tea.KeyMsg{Type: tea.KeyEnter}, k.Press},
		{"space → press", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, k.Press},
		{"H → 24-hour", runeKey("H"), k.Use24},
		{"h → 12-hour", runeKey("h"), k.Use12},
		{"n → new joke", runeKey("n"), k.NewJoke},
		{"? → help", runeKey("?"), k.Help},
		{"q → quit", runeKey("q"), k.Quit},
		{"ctrl+c → quit", tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q should match binding %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestDefaultKeyMap_HiddenWidgetsDisabled(t *testing.T) {
	k := DefaultKeyMap(false, true)
	if k.Use24.Enabled() || k.Use12.Enabled() {
		t.Error("clock bindings should be disabled without a clock")
	}
	if !k.NewJoke.Enabled() {
		t.Error("joke binding should be enabled with a joke widget")
	}

	k = DefaultKeyMap(true, false)
	if k.NewJoke.Enabled() {
		t.Error("joke binding should be disabled without a joke widget")
	}
	if key.Matches(runeKey("n"), k.NewJoke) {
		t.Error("disabled binding should not match")
	}
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap(true, true)
	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	total := 0
	for _, col := range k.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, want 8", total)
	}
}
