package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration preconditions the simulation relies on.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	s, p, b, o := c.Screen, c.Physics, c.Bird, c.Pipes

	// The range checks below cannot see NaN, so non-finite values stop here.
	floats := []struct {
		name string
		v    float64
	}{
		{"screen width", s.Width},
		{"screen height", s.Height},
		{"ground height", s.GroundHeight},
		{"gravity", p.Gravity},
		{"flap impulse", p.FlapImpulse},
		{"glide factor", p.GlideFactor},
		{"min velocity", p.MinVelocity},
		{"max velocity", p.MaxVelocity},
		{"min rotation", p.MinRotation},
		{"max rotation", p.MaxRotation},
		{"bird x", b.X},
		{"bird y", b.Y},
		{"bird radius", b.Radius},
		{"pipe width", o.Width},
		{"pipe gap height", o.GapHeight},
		{"pipe margin", o.Margin},
		{"pipe speed", o.Speed},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			fail("%s %v must be a finite number", f.name, f.v)
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(problems...))
	}

	if s.Width <= 0 || s.Height <= 0 {
		fail("screen size %vx%v must be positive", s.Width, s.Height)
	}
	if s.GroundHeight < 0 || s.GroundHeight >= s.Height {
		fail("ground height %v must be within [0, %v)", s.GroundHeight, s.Height)
	}

	if p.GlideFactor <= 0 || p.GlideFactor > 1 {
		fail("glide factor %v must be within (0, 1]", p.GlideFactor)
	}
	if p.MinVelocity >= p.MaxVelocity {
		fail("min velocity %v must be below max velocity %v", p.MinVelocity, p.MaxVelocity)
	}
	if p.MinVelocity > 0 || p.MaxVelocity < 0 {
		fail("velocity range [%v, %v] must contain 0", p.MinVelocity, p.MaxVelocity)
	}
	if p.FlapImpulse < p.MinVelocity || p.FlapImpulse > p.MaxVelocity {
		fail("flap impulse %v must be within [%v, %v]", p.FlapImpulse, p.MinVelocity, p.MaxVelocity)
	}
	if p.MinRotation >= p.MaxRotation {
		fail("min rotation %v must be below max rotation %v", p.MinRotation, p.MaxRotation)
	}

	if b.Radius <= 0 {
		fail("bird radius %v must be positive", b.Radius)
	}
	if b.X < 0 || b.X > s.Width {
		fail("bird x %v must be within [0, %v]", b.X, s.Width)
	}
	if b.Y-b.Radius < 0 || b.Y+b.Radius >= c.GroundLevel() {
		fail("bird y %v with radius %v must start above the ground and below the top", b.Y, b.Radius)
	}

	if o.Width <= 0 {
		fail("pipe width %v must be positive", o.Width)
	}
	if o.GapHeight <= 0 {
		fail("pipe gap height %v must be positive", o.GapHeight)
	}
	if o.Margin < 0 {
		fail("pipe margin %v must not be negative", o.Margin)
	}
	if need := 2*o.Margin + o.GapHeight; need > c.PlayableHeight() {
		fail("pipe gap %v plus margins 2x%v exceeds playable height %v", o.GapHeight, o.Margin, c.PlayableHeight())
	}
	if o.Speed <= 0 {
		fail("pipe speed %v must be positive", o.Speed)
	}
	if o.SpawnInterval <= 0 {
		fail("pipe spawn interval %v must be positive", o.SpawnInterval)
	}

	if c.TickRate <= 0 {
		fail("tick rate %d must be positive", c.TickRate)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(problems...))
}
