package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/clock"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/config"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/joke"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui"
)

func newJokeClient(cfg *config.Config) *joke.Client {
	return joke.NewClient(cfg.Joke.Endpoint, cfg.Joke.Timeout())
}

// newDashboard builds the dashboard model with the selected widgets.
func newDashboard(ctx context.Context, cfg *config.Config, showClock, showJoke bool) tui.Model {
	var opts []tui.Option
	if showClock {
		opts = append(opts, tui.WithClock(clock.New(clock.With24Hour(cfg.Clock.Use24Hour))))
	}
	if showJoke {
		opts = append(opts, tui.WithJoke(joke.New(newJokeClient(cfg), joke.WithContext(ctx))))
	}
	return tui.New(cfg.TUI.AccentColor, opts...)
}

// runTUI runs the bubbletea program until the user quits or ctx is
// cancelled. Cancellation is a normal shutdown.
func runTUI(ctx context.Context, cfg *config.Config, model tui.Model) error {
	restore, err := redirectLog(cfg.Log.Path())
	if err != nil {
		return err
	}
	defer restore()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// redirectLog sends the standard logger to path so log lines never land on
// the alternate screen. The returned func restores stderr.
func redirectLog(path string) (func(), error) {
	f, err := tea.LogToFile(path, "widgets")
	if err != nil {
		return nil, fmt.Errorf("log: open %s: %w", path, err)
	}
	return func() {
		f.Close()
		log.SetPrefix("")
		log.SetOutput(os.Stderr)
	}, nil
}

// printClock writes one formatted time.
func printClock(w io.Writer, now time.Time, use24Hour bool) {
	fmt.Fprintln(w, clock.Format(now, use24Hour))
}

// printJoke fetches one joke and writes its display text. On failure the
// failure message is written and the error returned.
func printJoke(ctx context.Context, w io.Writer, f joke.Fetcher) error {
	j, err := f.Fetch(ctx)
	if err != nil {
		fmt.Fprintln(w, joke.FailureMessage)
		return err
	}
	fmt.Fprintln(w, j.String())
	return nil
}
