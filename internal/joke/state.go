package joke

// State is the widget's position in the fetch lifecycle.
type State int

const (
	StateIdle      State = iota // Created, first fetch not yet started
	StateLoading                // A fetch is in flight
	StateDisplayed              // Last fetch succeeded
	StateErrored                // Last fetch failed
)

// validTransitions defines the allowed State transitions. Loading→Loading
// is a new request superseding the pending one.
var validTransitions = map[State][]State{
	StateIdle:      {StateLoading},
	StateLoading:   {StateLoading, StateDisplayed, StateErrored},
	StateDisplayed: {StateLoading},
	StateErrored:   {StateLoading},
}

// CanTransitionTo reports whether transitioning from s to next is valid.
func (s State) CanTransitionTo(next State) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDisplayed:
		return "displayed"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// LoadingText replaces the joke while a fetch is in flight.
const LoadingText = "Loading..."

// DisplayText returns what the card shows for the given state and settled text.
func DisplayText(s State, text string) string {
	if s == StateLoading {
		return LoadingText
	}
	return text
}

// ButtonLabel returns the request button label for the given state.
func ButtonLabel(s State) string {
	if s == StateLoading {
		return "Fetching Joke..."
	}
	return "Get New Joke"
}
