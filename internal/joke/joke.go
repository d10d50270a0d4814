// Package joke implements the random joke widget: a single HTTP fetch per
// request, a loading flag, and an error fallback.
package joke

import (
	"context"
	"errors"
)

// FailureMessage is shown in place of a joke when a fetch fails.
const FailureMessage = "Failed to fetch joke. Please try again."

// ErrFetchFailed wraps every fetch failure: transport errors, non-2xx
// statuses, and malformed payloads alike.
var ErrFetchFailed = errors.New("joke: fetch failed")

// Joke is one record from the remote source.
type Joke struct {
	ID        int    `json:"id,omitempty"`
	Type      string `json:"type,omitempty"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// String joins setup and punchline the way the widget displays them.
func (j Joke) String() string {
	return j.Setup + " - " + j.Punchline
}

// Fetcher retrieves one joke.
type Fetcher interface {
	Fetch(ctx context.Context) (Joke, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (Joke, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) (Joke, error) { return f(ctx) }
