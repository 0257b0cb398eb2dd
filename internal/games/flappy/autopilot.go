package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot plays the game from snapshots. It flaps whenever the bird is
// falling below a point slightly under the next gap's center, starts runs on
// its own and restarts after a crash.
type Autopilot struct {
	game  *Game
	frame core.InputFrame
}

// NewAutopilot creates an autopilot for the given game.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{
		game:  g,
		frame: core.NewInputFrame(),
	}
}

// Input returns the actions for the next tick. The returned frame is reused
// by the following call.
func (a *Autopilot) Input() core.InputFrame {
	a.frame.Clear()
	snap := a.game.Snapshot()

	switch snap.Phase {
	case PhaseStart:
		a.frame.Set(core.ActionFlap)
	case PhaseGameOver:
		a.frame.Set(core.ActionRestart)
	case PhasePlaying:
		if snap.Bird.Velocity >= 0 && snap.Bird.Y > a.target(snap) {
			a.frame.Set(core.ActionFlap)
		}
	}
	return a.frame
}

// target returns the height the autopilot tries to stay above.
func (a *Autopilot) target(snap Snapshot) float64 {
	p, ok := snap.NextPipe()
	if !ok {
		return a.game.cfg.Bird.Y
	}
	return p.GapY + p.GapHeight*0.65
}
