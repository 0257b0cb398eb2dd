package flappy

import (
	"errors"
	"fmt"
)

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseStart    Phase = iota // Waiting for the first flap
	PhasePlaying               // Simulation running
	PhaseGameOver              // Run ended, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Trigger is something that can move the game between phases.
type Trigger int

const (
	TriggerFlap    Trigger = iota // Primary action
	TriggerTick                   // Update pass while playing
	TriggerCrash                  // Ground or pipe collision
	TriggerRestart                // Restart action
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerFlap:
		return "flap"
	case TriggerTick:
		return "tick"
	case TriggerCrash:
		return "crash"
	case TriggerRestart:
		return "restart"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// ErrIllegalTransition is returned for a trigger that is not allowed in a phase.
var ErrIllegalTransition = errors.New("flappy: illegal transition")

type transitionKey struct {
	from    Phase
	trigger Trigger
}

var transitions = map[transitionKey]Phase{
	{PhaseStart, TriggerFlap}:       PhasePlaying,
	{PhasePlaying, TriggerFlap}:     PhasePlaying,
	{PhasePlaying, TriggerTick}:     PhasePlaying,
	{PhasePlaying, TriggerCrash}:    PhaseGameOver,
	{PhaseGameOver, TriggerRestart}: PhaseStart,
}

// Transition returns the phase reached from `from` by trigger t.
// Quitting is legal everywhere and is handled by the loop, not here.
func Transition(from Phase, t Trigger) (Phase, error) {
	next, ok := transitions[transitionKey{from, t}]
	if !ok {
		return from, fmt.Errorf("%w: %s in %s", ErrIllegalTransition, t, from)
	}
	return next, nil
}
