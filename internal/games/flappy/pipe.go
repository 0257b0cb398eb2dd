package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalidConfig is returned when the configuration cannot produce a
// playable world, such as a gap that does not fit between its margins.
var ErrInvalidConfig = config.ErrInvalidConfig

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	Width     float64
	GapY      float64 // Y position where the gap starts (top of gap)
	GapHeight float64 // Height of the passable gap
	Floor     float64 // Y position where the bottom section ends
	Scored    bool    // Whether the bird has passed this pipe
}

// gapRange returns the inclusive range of valid gap offsets.
func gapRange(playableHeight float64, cfg config.PipesConfig) (lo, hi float64, err error) {
	lo = cfg.Margin
	hi = playableHeight - cfg.Margin - cfg.GapHeight
	if hi < lo {
		return 0, 0, fmt.Errorf("flappy: %w: gap %v with margin %v does not fit in playable height %v",
			ErrInvalidConfig, cfg.GapHeight, cfg.Margin, playableHeight)
	}
	return lo, hi, nil
}

// NewPipe creates a pipe at x with a gap offset drawn uniformly from
// [margin, playableHeight-margin-gapHeight].
func NewPipe(x, playableHeight float64, cfg config.PipesConfig, rng *rand.Rand) (Pipe, error) {
	lo, hi, err := gapRange(playableHeight, cfg)
	if err != nil {
		return Pipe{}, err
	}
	return newPipe(x, playableHeight, lo, hi, cfg, rng), nil
}

func newPipe(x, floor, lo, hi float64, cfg config.PipesConfig, rng *rand.Rand) Pipe {
	return Pipe{
		X:         x,
		Width:     cfg.Width,
		GapY:      lo + rng.Float64()*(hi-lo),
		GapHeight: cfg.GapHeight,
		Floor:     floor,
	}
}

// Update moves the pipe left by speed.
func (p *Pipe) Update(speed float64) {
	p.X -= speed
}

// Right returns the x-coordinate of the right edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// OffScreen reports whether the pipe has fully left the visible area.
func (p Pipe) OffScreen() bool {
	return p.Right() < 0
}

// TopRect returns the collision box of the upper section.
func (p Pipe) TopRect() core.Box {
	return core.NewBox(p.X, 0, p.Width, p.GapY)
}

// BottomRect returns the collision box of the lower section.
func (p Pipe) BottomRect() core.Box {
	bottomY := p.GapY + p.GapHeight
	return core.NewBox(p.X, bottomY, p.Width, p.Floor-bottomY)
}

// Collides reports whether the box overlaps either section of the pipe.
func (p Pipe) Collides(b core.Box) bool {
	return b.Intersects(p.TopRect()) || b.Intersects(p.BottomRect())
}

// CheckScoring marks the pipe as scored the first time birdX is past its
// right edge. It returns true only on that first call.
func (p *Pipe) CheckScoring(birdX float64) bool {
	if p.Scored || birdX <= p.Right() {
		return false
	}
	p.Scored = true
	return true
}
