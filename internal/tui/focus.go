package tui

import (
	"github.com/LISSConsulting/LISSTech.Widgets/internal/clock"
)

// FocusTarget identifies which button currently holds keyboard focus.
type FocusTarget int

const (
	FocusClock24 FocusTarget = iota // clock: 24-Hour Format
	FocusClock12                    // clock: 12-Hour Format
	FocusJoke                       // joke: Get New Joke
)

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusClock24:
		return "24-hour"
	case FocusClock12:
		return "12-hour"
	case FocusJoke:
		return "new joke"
	default:
		return "unknown"
	}
}

// clockButton returns the clock button index for f, or -1 when f is not a
// clock button.
func (f FocusTarget) clockButton() int {
	switch f {
	case FocusClock24:
		return clock.Button24Hour
	case FocusClock12:
		return clock.Button12Hour
	default:
		return -1
	}
}

// jokeButton returns the joke button index for f, or -1.
func (f FocusTarget) jokeButton() int {
	if f == FocusJoke {
		return 0
	}
	return -1
}

// focusRing is the ordered set of focusable buttons for the visible widgets.
type focusRing []FocusTarget

func newFocusRing(hasClock, hasJoke bool) focusRing {
	var r focusRing
	if hasClock {
		r = append(r, FocusClock24, FocusClock12)
	}
	if hasJoke {
		r = append(r, FocusJoke)
	}
	return r
}

func (r focusRing) index(f FocusTarget) int {
	for i, t := range r {
		if t == f {
			return i
		}
	}
	return -1
}

// Next returns the target after f in tab order, wrapping around.
func (r focusRing) Next(f FocusTarget) FocusTarget {
	if len(r) == 0 {
		return f
	}
	return r[(r.index(f)+1)%len(r)]
}

// Prev returns the target before f in tab order, wrapping around.
func (r focusRing) Prev(f FocusTarget) FocusTarget {
	if len(r) == 0 {
		return f
	}
	i := r.index(f)
	if i < 0 {
		return r[len(r)-1]
	}
	return r[(i+len(r)-1)%len(r)]
}
