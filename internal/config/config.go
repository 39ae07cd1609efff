// Package config provides YAML-based game configuration loading and
// difficulty presets for the pong platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// PongConfig contains all configuration for the pong game.
type PongConfig struct {
	Surface  SurfaceConfig  `yaml:"surface"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Ball     BallConfig     `yaml:"ball"`
	Physics  PhysicsConfig  `yaml:"physics"`
	AI       AIConfig       `yaml:"ai"`
	Colors   ColorConfig    `yaml:"colors"`
	Render   RenderConfig   `yaml:"render"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// SurfaceConfig defines the playable bounds in surface units (pixels on a canvas).
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the size shared by both paddles.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and serve speeds.
type BallConfig struct {
	Radius            float64 `yaml:"radius"`
	BaseSpeed         float64 `yaml:"base_speed"`
	BaseVerticalSpeed float64 `yaml:"base_vertical_speed"`
}

// PhysicsConfig defines paddle bounce behavior.
type PhysicsConfig struct {
	SpeedIncrement    float64 `yaml:"speed_increment"`
	MaxDeflectionDeg  float64 `yaml:"max_deflection_deg"`
	ClampCollidePoint bool    `yaml:"clamp_collide_point"`
	MaxSpeed          float64 `yaml:"max_speed"` // 0 = unbounded
}

// AIConfig defines the CPU paddle's tracking behavior.
type AIConfig struct {
	Tracking float64 `yaml:"tracking"` // Fraction of the remaining distance closed per tick
}

// ColorConfig holds hex color tags for every drawn element.
type ColorConfig struct {
	Background string `yaml:"background"`
	Net        string `yaml:"net"`
	Player     string `yaml:"player"`
	AI         string `yaml:"ai"`
	Ball       string `yaml:"ball"`
	Text       string `yaml:"text"`
}

// RenderConfig defines optional overlays and the net pattern.
type RenderConfig struct {
	ShowScores bool    `yaml:"show_scores"`
	NetSpacing float64 `yaml:"net_spacing"`
	NetDash    float64 `yaml:"net_dash"`
	NetWidth   float64 `yaml:"net_width"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore  int     `yaml:"win_score"` // 0 = endless
	NudgeStep float64 `yaml:"nudge_step"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with:
// non-positive or non-finite dimensions, rates outside their ranges.
func (c PongConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"surface.width", c.Surface.Width},
		{"surface.height", c.Surface.Height},
		{"paddles.width", c.Paddles.Width},
		{"paddles.height", c.Paddles.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.base_speed", c.Ball.BaseSpeed},
		{"render.net_spacing", c.Render.NetSpacing},
	}
	for _, p := range positive {
		if math.IsNaN(p.val) || math.IsInf(p.val, 0) || p.val <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	nonNegative := []struct {
		name string
		val  float64
	}{
		{"ball.base_vertical_speed", c.Ball.BaseVerticalSpeed},
		{"physics.speed_increment", c.Physics.SpeedIncrement},
		{"physics.max_deflection_deg", c.Physics.MaxDeflectionDeg},
		{"physics.max_speed", c.Physics.MaxSpeed},
		{"render.net_dash", c.Render.NetDash},
		{"render.net_width", c.Render.NetWidth},
		{"gameplay.nudge_step", c.Gameplay.NudgeStep},
	}
	for _, p := range nonNegative {
		if math.IsNaN(p.val) || math.IsInf(p.val, 0) || p.val < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Paddles.Height > c.Surface.Height {
		return fmt.Errorf("%w: paddles.height %v exceeds surface.height %v", ErrInvalidConfig, c.Paddles.Height, c.Surface.Height)
	}
	if math.IsNaN(c.AI.Tracking) || c.AI.Tracking < 0 || c.AI.Tracking > 1 {
		return fmt.Errorf("%w: ai.tracking must be within [0, 1], got %v", ErrInvalidConfig, c.AI.Tracking)
	}
	if c.Gameplay.WinScore < 0 {
		return fmt.Errorf("%w: gameplay.win_score must not be negative, got %d", ErrInvalidConfig, c.Gameplay.WinScore)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Unknown values return "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// TrackingForPreset returns the CPU tracking factor for a difficulty preset.
// Normal is the classic 0.08 reaction lag.
func TrackingForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.12
	default:
		return 0.08
	}
}
