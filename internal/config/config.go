// Package config provides YAML-based game configuration loading and
// validation for the flappy platform.
package config

import "time"

// FlappyConfig contains every tunable of the game. It is loaded once at
// startup and passed by value into constructors; nothing mutates it afterwards.
type FlappyConfig struct {
	Screen   ScreenConfig  `yaml:"screen"`
	Physics  PhysicsConfig `yaml:"physics"`
	Bird     BirdConfig    `yaml:"bird"`
	Pipes    PipesConfig   `yaml:"pipes"`
	TickRate int           `yaml:"tick_rate"` // Simulation ticks per second
}

// ScreenConfig defines the world dimensions in world units.
// The terminal renderer scales the world to whatever size it is given.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Height of the ground strip at the bottom
}

// PhysicsConfig defines the bird's motion parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
	GlideFactor float64 `yaml:"glide_factor"` // Per-tick velocity damping in (0, 1]
	MinVelocity float64 `yaml:"min_velocity"`
	MaxVelocity float64 `yaml:"max_velocity"`
	MinRotation float64 `yaml:"min_rotation"` // Degrees
	MaxRotation float64 `yaml:"max_rotation"` // Degrees
}

// BirdConfig defines the bird's spawn point and collision radius.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// PipesConfig defines obstacle geometry and cadence.
type PipesConfig struct {
	Width         float64       `yaml:"width"`
	GapHeight     float64       `yaml:"gap_height"`
	Margin        float64       `yaml:"margin"` // Minimum distance of the gap from the top and the ground
	Speed         float64       `yaml:"speed"`  // Scroll distance per tick
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// GroundLevel returns the y coordinate where the ground strip begins.
func (c FlappyConfig) GroundLevel() float64 {
	return c.Screen.Height - c.Screen.GroundHeight
}

// PlayableHeight returns the vertical extent available for pipe gaps.
// The world's top edge is y = 0, so it equals the ground level.
func (c FlappyConfig) PlayableHeight() float64 {
	return c.GroundLevel()
}

// TickInterval returns the duration of one simulation tick.
func (c FlappyConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
