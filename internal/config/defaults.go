package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors the
// embedded defaults/flappy.yaml and is used when that cannot be decoded.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:        400,
			Height:       600,
			GroundHeight: 100,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			FlapImpulse: -8,
			GlideFactor: 0.98,
			MinVelocity: -10,
			MaxVelocity: 10,
			MinRotation: -30,
			MaxRotation: 90,
		},
		Bird: BirdConfig{
			X:      100,
			Y:      300,
			Radius: 15,
		},
		Pipes: PipesConfig{
			Width:         70,
			GapHeight:     150,
			Margin:        100,
			Speed:         3,
			SpawnInterval: 1500 * time.Millisecond,
		},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
