package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Best     int    // Best score of this process
	Ticks    uint64 // Ticks simulated in the current run
	Started  bool   // Whether a run is in progress or finished
	GameOver bool   // Whether the current run has ended
}

// EventKind identifies something that happened during a tick.
type EventKind string

const (
	EventStarted EventKind = "started"
	EventFlapped EventKind = "flapped"
	EventSpawned EventKind = "spawned"
	EventScored  EventKind = "scored"
	EventCrashed EventKind = "crashed"
	EventReset   EventKind = "reset"
)

// Event describes one occurrence within a tick. Detail carries
// kind-specific context, such as the crash cause.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State   GameState
	Events  []Event  // In the order they happened
	Ignored []Action // Input actions that were not legal in the current state
	Quit    bool     // A quit action was processed; the loop should stop
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
