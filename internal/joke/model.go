package joke

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// requestMsg asks the instance to start a fetch.
type requestMsg struct{ id int }

// fetchedMsg carries the outcome of one fetch.
type fetchedMsg struct {
	id        int
	requestID string
	joke      Joke
	err       error
}

// Model is the bubbletea model for one joke widget instance.
type Model struct {
	id      int
	ctx     context.Context
	fetcher Fetcher
	spinner spinner.Model

	state   State
	text    string
	pending string // request id allowed to settle; "" when none
	closed  bool
}

// Option configures a Model.
type Option func(*Model)

// WithContext sets the context fetches run under. Defaults to
// context.Background.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates an idle joke widget backed by f. The first fetch starts when
// the Init command is delivered.
func New(f Fetcher, opts ...Option) Model {
	m := Model{
		id:      nextID(),
		ctx:     context.Background(),
		fetcher: f,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the unique instance id.
func (m Model) ID() int { return m.id }

// Init requests the automatic first fetch.
func (m Model) Init() tea.Cmd {
	id := m.id
	return func() tea.Msg { return requestMsg{id: id} }
}

// Update applies request, fetch-result, and spinner messages addressed to
// this instance.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case requestMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m.RequestNewJoke()

	case fetchedMsg:
		if msg.id != m.id {
			return m, nil
		}
		if m.closed || msg.requestID != m.pending {
			log.Printf("joke: dropping response for request %s", msg.requestID)
			return m, nil
		}
		return m.settle(msg), nil

	case spinner.TickMsg:
		if m.state != StateLoading || m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// RequestNewJoke enters Loading and starts a fetch, whatever the current
// state. A fetch still in flight is superseded: only the newest response
// settles the widget. After Close it does nothing.
func (m Model) RequestNewJoke() (Model, tea.Cmd) {
	if m.closed || !m.state.CanTransitionTo(StateLoading) {
		return m, nil
	}
	wasLoading := m.state == StateLoading
	m.state = StateLoading
	m.pending = uuid.NewString()

	cmds := []tea.Cmd{m.fetch(m.pending)}
	if !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// fetch returns the command performing one request.
func (m Model) fetch(requestID string) tea.Cmd {
	id, ctx, f := m.id, m.ctx, m.fetcher
	return func() tea.Msg {
		j, err := f.Fetch(ctx)
		return fetchedMsg{id: id, requestID: requestID, joke: j, err: err}
	}
}

// settle leaves Loading for Displayed or Errored. The loading flag is
// cleared on both paths.
func (m Model) settle(msg fetchedMsg) Model {
	m.pending = ""
	if msg.err != nil {
		log.Printf("joke: request %s: %v", msg.requestID, msg.err)
		m.state = StateErrored
		m.text = FailureMessage
		return m
	}
	m.state = StateDisplayed
	m.text = msg.joke.String()
	return m
}

// Close tears the widget down. Responses arriving later are ignored.
func (m Model) Close() Model {
	m.closed = true
	m.pending = ""
	return m
}

// Closed reports whether Close has been called.
func (m Model) Closed() bool { return m.closed }

// State returns the current lifecycle state.
func (m Model) State() State { return m.state }

// IsLoading reports whether a fetch is in flight.
func (m Model) IsLoading() bool { return m.state == StateLoading }

// HasError reports whether the most recent settled fetch failed.
func (m Model) HasError() bool { return m.state == StateErrored }

// Text returns the text the card currently shows.
func (m Model) Text() string { return DisplayText(m.state, m.text) }
