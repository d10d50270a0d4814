package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the tick period of a running clock.
const DefaultInterval = time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg refreshes the time of the clock instance identified by ID.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// mountMsg marks the clock instance ready.
type mountMsg struct {
	id   int
	time time.Time
}

// Model is the bubbletea model for one clock instance.
type Model struct {
	id       int
	tag      int
	now      func() time.Time
	interval time.Duration

	currentTime time.Time
	use24Hour   bool
	ready       bool
	running     bool
}

// Option configures a Model.
type Option func(*Model)

// WithNow sets the time source. Defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// With24Hour sets the initial display mode.
func With24Hour(on bool) Option {
	return func(m *Model) { m.use24Hour = on }
}

// WithInterval overrides the tick period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// New creates a clock that starts in 24-hour mode, captures the current time,
// and is not ready until its Init command has been delivered.
func New(opts ...Option) Model {
	m := Model{
		id:        nextID(),
		now:       time.Now,
		interval:  DefaultInterval,
		use24Hour: true,
		running:   true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.currentTime = m.now()
	return m
}

// ID returns the unique instance id.
func (m Model) ID() int { return m.id }

// Init marks the clock ready and schedules the first tick.
func (m Model) Init() tea.Cmd {
	id, now := m.id, m.now
	mount := func() tea.Msg {
		return mountMsg{id: id, time: now()}
	}
	return tea.Batch(mount, m.tick())
}

// tick schedules the next tick for the current generation. The tick reads
// the model's time source, not the timer's fire time.
func (m Model) tick() tea.Cmd {
	id, tag, now := m.id, m.tag, m.now
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now(), tag: tag}
	})
}

// Update applies mount and tick messages addressed to this instance.
// Ticks after Stop, or from a previous generation, are dropped and not
// rescheduled.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mountMsg:
		if msg.id != m.id || !m.running {
			return m, nil
		}
		m.ready = true
		m.currentTime = msg.time
		return m, nil

	case TickMsg:
		if msg.ID != m.id || msg.tag != m.tag || !m.running {
			return m, nil
		}
		m.currentTime = msg.Time
		return m, m.tick()
	}
	return m, nil
}

// SetDisplayMode switches between 24-hour and 12-hour rendering. The
// underlying timestamp is left untouched.
func (m Model) SetDisplayMode(use24Hour bool) Model {
	m.use24Hour = use24Hour
	return m
}

// Stop tears the clock down. Pending ticks become inert.
func (m Model) Stop() Model {
	m.running = false
	m.tag++
	return m
}

// Running reports whether the clock is still accepting ticks.
func (m Model) Running() bool { return m.running }

// Ready reports whether the mount message has been applied.
func (m Model) Ready() bool { return m.ready }

// Use24Hour reports the current display mode.
func (m Model) Use24Hour() bool { return m.use24Hour }

// CurrentTime returns the last captured instant.
func (m Model) CurrentTime() time.Time { return m.currentTime }

// FormattedTime returns the rendered time, or "" before the clock is ready.
func (m Model) FormattedTime() string {
	if !m.ready {
		return ""
	}
	return Format(m.currentTime, m.use24Hour)
}
