package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also ascending x.
type PipeManager struct {
	pipes  []Pipe
	rng    *rand.Rand
	cfg    config.PipesConfig
	spawnX float64 // Right edge of the visible area
	floor  float64 // Playable height
	gapLo  float64
	gapHi  float64
}

// NewPipeManager creates a pipe manager drawing gap offsets from rng.
// It fails if the configured gap cannot fit between the margins.
func NewPipeManager(cfg config.FlappyConfig, rng *rand.Rand) (*PipeManager, error) {
	lo, hi, err := gapRange(cfg.PlayableHeight(), cfg.Pipes)
	if err != nil {
		return nil, err
	}
	return &PipeManager{
		pipes:  make([]Pipe, 0, 8),
		rng:    rng,
		cfg:    cfg.Pipes,
		spawnX: cfg.Screen.Width,
		floor:  cfg.PlayableHeight(),
		gapLo:  lo,
		gapHi:  hi,
	}, nil
}

// Spawn appends a new pipe at the right edge of the screen and returns it.
func (pm *PipeManager) Spawn() Pipe {
	p := newPipe(pm.spawnX, pm.floor, pm.gapLo, pm.gapHi, pm.cfg, pm.rng)
	pm.pipes = append(pm.pipes, p)
	return p
}

// Advance moves every pipe left by speed, then drops the pipes that are off
// screen. Survivors keep their relative order. Returns the number removed.
func (pm *PipeManager) Advance(speed float64) int {
	for i := range pm.pipes {
		pm.pipes[i].Update(speed)
	}

	before := len(pm.pipes)
	validPipes := pm.pipes[:0]
	for _, p := range pm.pipes {
		if !p.OffScreen() {
			validPipes = append(validPipes, p)
		}
	}
	pm.pipes = validPipes

	return before - len(pm.pipes)
}

// CheckCollision tests if the given box collides with any pipe.
func (pm *PipeManager) CheckCollision(b core.Box) bool {
	for _, p := range pm.pipes {
		if p.Collides(b) {
			return true
		}
	}
	return false
}

// CheckScoring evaluates every pipe and reports whether at least one was
// passed for the first time.
func (pm *PipeManager) CheckScoring(birdX float64) bool {
	scored := false
	for i := range pm.pipes {
		if pm.pipes[i].CheckScoring(birdX) {
			scored = true
		}
	}
	return scored
}

// Reset removes all pipes.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
}

// Len returns the number of active pipes.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}

// Pipes returns a copy of the active pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}
