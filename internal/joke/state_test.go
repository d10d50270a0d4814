package joke

import "testing"

func TestState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateIdle, StateLoading, true},
		{StateIdle, StateDisplayed, false},
		{StateIdle, StateErrored, false},
		{StateLoading, StateDisplayed, true},
		{StateLoading, StateErrored, true},
		{StateLoading, StateLoading, true},
		{StateLoading, StateIdle, false},
		{StateDisplayed, StateLoading, true},
		{StateDisplayed, StateErrored, false},
		{StateErrored, StateLoading, true},
		{StateErrored, StateDisplayed, false},
		{State(99), StateLoading, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"→"+tt.to.String(), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%v.CanTransitionTo(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateLoading, "loading"},
		{StateDisplayed, "displayed"},
		{StateErrored, "errored"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name  string
		state State
		text  string
		want  string
	}{
		{"loading hides stale joke", StateLoading, "old - joke", LoadingText},
		{"loading hides error", StateLoading, FailureMessage, LoadingText},
		{"displayed", StateDisplayed, "a - b", "a - b"},
		{"errored", StateErrored, FailureMessage, FailureMessage},
		{"idle", StateIdle, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayText(tt.state, tt.text); got != tt.want {
				t.Errorf("DisplayText(%v, %q) = %q, want %q", tt.state, tt.text, got, tt.want)
			}
		})
	}
}

func TestButtonLabel(t *testing.T) {
	if got := ButtonLabel(StateLoading); got != "Fetching Joke..." {
		t.Errorf("ButtonLabel(loading) = %q", got)
	}
	for _, s := range []State{StateIdle, StateDisplayed, StateErrored} {
		if got := ButtonLabel(s); got != "Get New Joke" {
			t.Errorf("ButtonLabel(%v) = %q, want %q", s, got, "Get New Joke")
		}
	}
}

func TestJoke_String(t *testing.T) {
	j := Joke{Setup: "Why did...", Punchline: "..."}
	if got := j.String(); got != "Why did... - ..." {
		t.Errorf("String() = %q", got)
	}
}
