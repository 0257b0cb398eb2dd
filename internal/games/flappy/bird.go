// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through a stream of gapped pipes; each pipe passed
// scores a point, and touching a pipe or the ground ends the run.
package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird motion constants that are part of the feel, not of the tuning.
const (
	FlapAnimationTicks = 5   // Ticks the wing stays raised after a flap
	RotationScale      = 3.0 // Degrees of tilt per unit of velocity
	RotationSmoothing  = 0.2 // Weight of the target rotation in each tick's blend
)

// Bird is the player entity. Y grows downwards; negative velocity is upward.
type Bird struct {
	X         float64 // Fixed horizontal position
	Y         float64 // Vertical center
	Velocity  float64
	Rotation  float64 // Degrees, positive = nose up
	FlapTicks int     // Remaining ticks of the flap animation
	Radius    float64

	originX, originY float64
	physics          config.PhysicsConfig
}

// NewBird creates a bird at the configured spawn point.
func NewBird(cfg config.FlappyConfig) *Bird {
	b := &Bird{
		Radius:  cfg.Bird.Radius,
		originX: cfg.Bird.X,
		originY: cfg.Bird.Y,
		physics: cfg.Physics,
	}
	b.Reset()
	return b
}

// Flap sets the velocity to the given impulse and restarts the wing animation.
func (b *Bird) Flap(impulse float64) {
	b.Velocity = impulse
	b.FlapTicks = FlapAnimationTicks
}

// Update advances the bird by one tick.
func (b *Bird) Update(gravity float64) {
	p := b.physics

	b.Velocity += gravity
	b.Velocity *= p.GlideFactor
	b.Velocity = core.ClampF(b.Velocity, p.MinVelocity, p.MaxVelocity)
	b.Y += b.Velocity

	target := -b.Velocity * RotationScale
	b.Rotation = b.Rotation*(1-RotationSmoothing) + target*RotationSmoothing
	b.Rotation = core.ClampF(b.Rotation, p.MinRotation, p.MaxRotation)

	if b.FlapTicks > 0 {
		b.FlapTicks--
	}

	// The ceiling stops upward motion without bouncing.
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.Velocity = math.Max(b.Velocity, 0)
	}
}

// HitsGround reports whether the bird touches or sinks below the ground level.
func (b *Bird) HitsGround(groundLevel float64) bool {
	return b.Y+b.Radius >= groundLevel
}

// Reset puts the bird back at its spawn point at rest.
func (b *Bird) Reset() {
	b.X = b.originX
	b.Y = b.originY
	b.Velocity = 0
	b.Rotation = 0
	b.FlapTicks = 0
}

// Bounds returns the square collision box around the bird.
func (b *Bird) Bounds() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}
