package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newFlappy(t *testing.T, clock clockwork.Clock, seed int64) *flappy.Game {
	t.Helper()
	g, err := flappy.New(config.DefaultFlappyConfig(), flappy.WithClock(clock))
	if err != nil {
		t.Fatalf("flappy.New: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// idlePilot never presses anything.
type idlePilot struct{}

func (idlePilot) Input() core.InputFrame { return core.NewInputFrame() }

// scriptPilot replays a fixed list of frames, then idles.
type scriptPilot struct {
	frames [][]core.Action
	i      int
}

func (p *scriptPilot) Input() core.InputFrame {
	in := core.NewInputFrame()
	if p.i < len(p.frames) {
		for _, a := range p.frames[p.i] {
			in.Set(a)
		}
		p.i++
	}
	return in
}

func TestRunEndsOnCrash(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := newFlappy(t, clock, 1)
	pilot := &scriptPilot{frames: [][]core.Action{{core.ActionFlap}}}

	r := NewRunner(g, pilot, Options{Clock: clock})
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Cause != flappy.CauseGround {
		t.Errorf("cause = %q, expected %q", res.Cause, flappy.CauseGround)
	}
	if res.Ticks == 0 || res.Score != 0 {
		t.Errorf("result = %+v", res)
	}
	if !res.EndedAt.After(res.StartedAt) {
		t.Errorf("run should take simulated time: %v..%v", res.StartedAt, res.EndedAt)
	}
	if g.Phase() != flappy.PhaseGameOver {
		t.Errorf("phase = %s", g.Phase())
	}
}

func TestRunTickLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := newFlappy(t, clock, 1)

	r := NewRunner(g, idlePilot{}, Options{Clock: clock, MaxTicks: 50})
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Cause != CauseLimit {
		t.Errorf("cause = %q, expected %q", res.Cause, CauseLimit)
	}
}

func TestRunAfterTickLimitStartsFreshRun(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := newFlappy(t, clock, 7)
	r := NewRunner(g, flappy.NewAutopilot(g), Options{Clock: clock, MaxTicks: 300})

	first, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if first.Cause != CauseLimit {
		t.Fatalf("first cause = %q, expected %q", first.Cause, CauseLimit)
	}
	if g.Phase() != flappy.PhaseStart {
		t.Errorf("phase after limit = %s, expected START", g.Phase())
	}

	second, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if second.Ticks == 0 || second.Ticks > 300 {
		t.Errorf("second run ticks = %d, expected a fresh count up to 300", second.Ticks)
	}
	if second.StartedAt.IsZero() {
		t.Error("second run has no start time")
	}
	if second.StartedAt.Before(first.EndedAt) {
		t.Errorf("second run started %v, before the first ended %v", second.StartedAt, first.EndedAt)
	}
}

func TestRunQuit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := newFlappy(t, clock, 1)
	pilot := &scriptPilot{frames: [][]core.Action{{core.ActionFlap}, {}, {core.ActionQuit}}}

	res, err := NewRunner(g, pilot, Options{Clock: clock}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Quit || res.Cause != "quit" {
		t.Errorf("result = %+v, expected a quit", res)
	}
}

func TestRunCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := newFlappy(t, clock, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(g, idlePilot{}, Options{Clock: clock}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunPacedOnRealClock(t *testing.T) {
	g := newFlappy(t, clockwork.NewRealClock(), 1)

	start := time.Now()
	res, err := NewRunner(g, idlePilot{}, Options{
		Interval: time.Millisecond,
		Paced:    true,
		MaxTicks: 5,
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Cause != CauseLimit {
		t.Errorf("cause = %q", res.Cause)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("paced run took %v, expected at least 5ms", elapsed)
	}
}

func TestAutopilotRunsAreDeterministic(t *testing.T) {
	play := func() []Result {
		clock := clockwork.NewFakeClock()
		g := newFlappy(t, clock, 77)
		r := NewRunner(g, flappy.NewAutopilot(g), Options{Clock: clock, MaxTicks: 3000})

		var results []Result
		for i := 0; i < 3; i++ {
			res, err := r.Run(context.Background())
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			res.StartedAt, res.EndedAt = time.Time{}, time.Time{}
			results = append(results, res)
		}
		return results
	}

	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
