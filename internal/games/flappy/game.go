package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Crash causes reported in EventCrashed details.
const (
	CauseGround = "ground"
	CausePipe   = "pipe"
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg   config.FlappyConfig
	clock clockwork.Clock
	rng   *rand.Rand

	bird  *Bird
	pipes *PipeManager
	score Scoreboard
	phase Phase

	lastSpawn  time.Time    // Wall-clock time of the last spawn or reset
	tickCount  uint64       // Update passes in the current run
	crashCause string       // Set when the run ends
	events     []core.Event // Collected during the current Step
}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the clock used for the pipe spawn timer.
func WithClock(c clockwork.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// New creates a game from a validated configuration.
func New(cfg config.FlappyConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		clock: clockwork.NewRealClock(),
		rng:   rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}

	pipes, err := NewPipeManager(cfg, g.rng)
	if err != nil {
		return nil, err
	}
	g.pipes = pipes
	g.bird = NewBird(cfg)
	g.resetRun()

	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset reseeds the pipe generator and returns to the start screen.
// The best score survives; it lives as long as the Game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	seed := rt.Seed
	if seed == 0 {
		seed = g.clock.Now().UnixNano()
	}
	g.rng.Seed(seed)
	g.resetRun()
	g.events = g.events[:0]
}

// Abandon drops the run in progress, if any, and returns to the start
// screen. The best score and the random sequence carry over.
func (g *Game) Abandon() {
	g.resetRun()
}

// resetRun restores the bird, pipes, score, phase and spawn timer.
func (g *Game) resetRun() {
	g.bird.Reset()
	g.pipes.Reset()
	g.score.Reset()
	g.phase = PhaseStart
	g.lastSpawn = g.clock.Now()
	g.tickCount = 0
	g.crashCause = ""
}

// Step advances the game by one tick: it drains the input actions in order,
// then runs the update pass if a run is in progress.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var result core.StepResult

	for _, a := range in.Actions {
		if a == core.ActionQuit {
			result.Quit = true
			break
		}
		if err := g.Apply(a); err != nil {
			result.Ignored = append(result.Ignored, a)
		}
	}

	if !result.Quit && g.phase == PhasePlaying {
		g.Update()
	}

	result.Events = g.drainEvents()
	result.State = g.State()
	return result
}

// Apply handles a single input action. It returns ErrIllegalTransition when
// the action means nothing in the current phase.
func (g *Game) Apply(a core.Action) error {
	var trigger Trigger
	switch a {
	case core.ActionFlap:
		trigger = TriggerFlap
	case core.ActionRestart:
		trigger = TriggerRestart
	default:
		return fmt.Errorf("%w: action %s", ErrIllegalTransition, a)
	}

	next, err := Transition(g.phase, trigger)
	if err != nil {
		return err
	}

	switch trigger {
	case TriggerFlap:
		if g.phase == PhaseStart {
			g.emit(core.EventStarted, "")
		}
		g.bird.Flap(g.cfg.Physics.FlapImpulse)
		g.emit(core.EventFlapped, "")
	case TriggerRestart:
		g.resetRun()
		g.emit(core.EventReset, "")
	}

	g.phase = next
	return nil
}

// Update runs one update pass. It does nothing unless a run is in progress.
func (g *Game) Update() {
	next, err := Transition(g.phase, TriggerTick)
	if err != nil {
		return
	}
	g.phase = next
	g.tickCount++

	g.bird.Update(g.cfg.Physics.Gravity)

	now := g.clock.Now()
	if now.Sub(g.lastSpawn) > g.cfg.Pipes.SpawnInterval {
		p := g.pipes.Spawn()
		g.lastSpawn = now
		g.emit(core.EventSpawned, fmt.Sprintf("gap_y=%.1f", p.GapY))
	}

	g.pipes.Advance(g.cfg.Pipes.Speed)

	// A crash on this tick wins over a pass on this tick.
	cause := ""
	switch {
	case g.bird.HitsGround(g.cfg.GroundLevel()):
		cause = CauseGround
	case g.pipes.CheckCollision(g.bird.Bounds()):
		cause = CausePipe
	}
	if cause != "" {
		g.phase, _ = Transition(g.phase, TriggerCrash)
		g.crashCause = cause
		g.emit(core.EventCrashed, cause)
		return
	}

	if g.pipes.CheckScoring(g.bird.X) {
		g.score.Increment()
		g.emit(core.EventScored, fmt.Sprintf("%d", g.score.Current()))
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Current(),
		Best:     g.score.Best(),
		Ticks:    g.tickCount,
		Started:  g.phase != PhaseStart,
		GameOver: g.phase == PhaseGameOver,
	}
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

func (g *Game) drainEvents() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}
