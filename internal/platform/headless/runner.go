// Package headless drives the game without a terminal, one run at a time.
// It is used by the sim command and by tests that need whole runs.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// CauseLimit is reported when a run hits the tick limit before crashing.
const CauseLimit = "limit"

// Game is the part of the game the runner needs.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Abandon()
}

// Pilot produces the input for each tick.
type Pilot interface {
	Input() core.InputFrame
}

// advancer is implemented by fake clocks.
type advancer interface {
	Advance(d time.Duration)
}

// Options configures a Runner. Zero values fall back to defaults.
type Options struct {
	Clock    clockwork.Clock
	Interval time.Duration // Simulated time per tick
	Paced    bool          // Wait Interval on the clock between ticks
	MaxTicks uint64        // Ticks per Run call before giving up; 0 means no limit
	Logger   *log.Logger
}

// Result describes one finished run.
type Result struct {
	Ticks     uint64
	Score     int
	Best      int
	Cause     string
	Quit      bool
	StartedAt time.Time
	EndedAt   time.Time
}

// Runner plays runs of a game with a pilot.
type Runner struct {
	game  Game
	pilot Pilot
	opts  Options
}

// NewRunner creates a runner.
func NewRunner(game Game, pilot Pilot, opts Options) *Runner {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second / 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Runner{game: game, pilot: pilot, opts: opts}
}

// Run plays until the current run ends, the tick limit is reached, the pilot
// quits, or ctx is cancelled. A run left on the game over screen by a
// previous call is restarted by the pilot; a run cut off by the tick limit
// is abandoned, so the next call starts a fresh one.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var ticker clockwork.Ticker
	if r.opts.Paced {
		ticker = r.opts.Clock.NewTicker(r.opts.Interval)
		defer ticker.Stop()
	}

	var res Result
	var ticks uint64

	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("headless: run interrupted: %w", err)
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return res, fmt.Errorf("headless: run interrupted: %w", ctx.Err())
			case <-ticker.Chan():
			}
		} else if adv, ok := r.opts.Clock.(advancer); ok {
			adv.Advance(r.opts.Interval)
		}

		step := r.game.Step(r.pilot.Input())
		res.Ticks, res.Score, res.Best = step.State.Ticks, step.State.Score, step.State.Best

		for _, e := range step.Events {
			switch e.Kind {
			case core.EventStarted:
				res.StartedAt = r.opts.Clock.Now()
				r.opts.Logger.Debug("run started")
			case core.EventScored:
				r.opts.Logger.Debug("scored", "score", e.Detail)
			case core.EventCrashed:
				res.Cause = e.Detail
			}
		}

		ticks++
		switch {
		case step.Quit:
			res.Quit = true
			res.Cause = "quit"
		case res.Cause != "":
		case r.opts.MaxTicks > 0 && ticks >= r.opts.MaxTicks:
			res.Cause = CauseLimit
			r.game.Abandon()
		}

		if res.Cause != "" {
			res.EndedAt = r.opts.Clock.Now()
			r.opts.Logger.Info("run finished",
				"cause", res.Cause, "score", res.Score, "best", res.Best, "ticks", res.Ticks)
			return res, nil
		}
	}
}
