package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBirdFlap(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig())
	b.Velocity = 7

	b.Flap(-8)

	if b.Velocity != -8 {
		t.Errorf("Velocity after flap = %v, expected -8", b.Velocity)
	}
	if b.FlapTicks != FlapAnimationTicks {
		t.Errorf("FlapTicks after flap = %d, expected %d", b.FlapTicks, FlapAnimationTicks)
	}
}

func TestBirdUpdateFromRest(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg)

	b.Update(cfg.Physics.Gravity)

	wantV := (0 + cfg.Physics.Gravity) * cfg.Physics.GlideFactor
	if !approx(b.Velocity, wantV) {
		t.Errorf("Velocity = %v, expected %v", b.Velocity, wantV)
	}
	if !approx(b.Y, cfg.Bird.Y+wantV) {
		t.Errorf("Y = %v, expected %v", b.Y, cfg.Bird.Y+wantV)
	}
	if b.Rotation >= 0 {
		t.Errorf("falling bird should tilt nose down, rotation = %v", b.Rotation)
	}
}

func TestBirdStaysWithinBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := cfg.Physics
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		b := NewBird(cfg)
		for i := 0; i < 500; i++ {
			if rng.Intn(4) == 0 {
				b.Flap(p.FlapImpulse)
			}
			b.Update(p.Gravity)

			if b.Velocity < p.MinVelocity || b.Velocity > p.MaxVelocity {
				t.Fatalf("run %d tick %d: velocity %v outside [%v, %v]",
					run, i, b.Velocity, p.MinVelocity, p.MaxVelocity)
			}
			if b.Rotation < p.MinRotation || b.Rotation > p.MaxRotation {
				t.Fatalf("run %d tick %d: rotation %v outside [%v, %v]",
					run, i, b.Rotation, p.MinRotation, p.MaxRotation)
			}
			if b.Y-b.Radius < 0 {
				t.Fatalf("run %d tick %d: bird above the ceiling at y=%v", run, i, b.Y)
			}
		}
	}
}

func TestBirdTerminalVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg)
	b.Y = 10000 // far from the ceiling, ground is not checked here

	for i := 0; i < 200; i++ {
		b.Update(cfg.Physics.Gravity)
	}
	if b.Velocity > cfg.Physics.MaxVelocity {
		t.Errorf("velocity %v exceeds max %v", b.Velocity, cfg.Physics.MaxVelocity)
	}
	if math.Abs(b.Rotation-cfg.Physics.MinRotation) > 1e-6 {
		t.Errorf("long fall should settle at min rotation %v, got %v", cfg.Physics.MinRotation, b.Rotation)
	}
}

func TestBirdCeiling(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg)
	b.Y = b.Radius + 1

	b.Flap(cfg.Physics.FlapImpulse)
	b.Update(cfg.Physics.Gravity)

	if b.Y != b.Radius {
		t.Errorf("Y = %v, expected bird pinned at %v", b.Y, b.Radius)
	}
	if b.Velocity != 0 {
		t.Errorf("upward velocity should be cancelled at the ceiling, got %v", b.Velocity)
	}

	// Next tick falls again instead of bouncing
	b.Update(cfg.Physics.Gravity)
	if b.Velocity <= 0 || b.Y <= b.Radius {
		t.Errorf("bird should start falling after the ceiling, v=%v y=%v", b.Velocity, b.Y)
	}
}

func TestBirdHitsGround(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ground := cfg.GroundLevel()

	tests := []struct {
		y    float64
		want bool
	}{
		{cfg.Bird.Y, false},
		{ground - cfg.Bird.Radius - 0.1, false},
		{ground - cfg.Bird.Radius, true},
		{ground + 90, true},
	}

	for _, tt := range tests {
		b := NewBird(cfg)
		b.Y = tt.y
		if got := b.HitsGround(ground); got != tt.want {
			t.Errorf("HitsGround at y=%v = %v, expected %v", tt.y, got, tt.want)
		}
	}
}

func TestBirdReset(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg)

	b.Flap(cfg.Physics.FlapImpulse)
	for i := 0; i < 10; i++ {
		b.Update(cfg.Physics.Gravity)
	}
	b.Reset()

	if b.X != cfg.Bird.X || b.Y != cfg.Bird.Y {
		t.Errorf("position after reset = (%v, %v), expected (%v, %v)", b.X, b.Y, cfg.Bird.X, cfg.Bird.Y)
	}
	if b.Velocity != 0 || b.Rotation != 0 || b.FlapTicks != 0 {
		t.Errorf("bird should be at rest after reset, got %+v", b)
	}
}

func TestBirdBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBird(cfg)

	box := b.Bounds()
	if box.X != cfg.Bird.X-cfg.Bird.Radius || box.Y != cfg.Bird.Y-cfg.Bird.Radius {
		t.Errorf("box origin = (%v, %v)", box.X, box.Y)
	}
	if box.W != 2*cfg.Bird.Radius || box.H != 2*cfg.Bird.Radius {
		t.Errorf("box size = %vx%v, expected %v square", box.W, box.H, 2*cfg.Bird.Radius)
	}
}
