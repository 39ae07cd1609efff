package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default pong configuration.
// It mirrors defaults/pong.yaml and is used when the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 400,
		},
		Paddles: PaddleConfig{
			Width:  12,
			Height: 80,
		},
		Ball: BallConfig{
			Radius:            10,
			BaseSpeed:         5,
			BaseVerticalSpeed: 5,
		},
		Physics: PhysicsConfig{
			SpeedIncrement:    0.2,
			MaxDeflectionDeg:  45,
			ClampCollidePoint: false,
			MaxSpeed:          0,
		},
		AI: AIConfig{
			Tracking: 0.08,
		},
		Colors: ColorConfig{
			Background: "#111",
			Net:        "#fff",
			Player:     "#00ff99",
			AI:         "#ff5050",
			Ball:       "#fff",
			Text:       "#fff",
		},
		Render: RenderConfig{
			ShowScores: false,
			NetSpacing: 24,
			NetDash:    12,
			NetWidth:   2,
		},
		Gameplay: GameplayConfig{
			WinScore:  0,
			NudgeStep: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
