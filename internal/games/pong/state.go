// Package pong implements a canvas-style Pong game: the left paddle follows
// the pointer, the right paddle is driven by a reactive tracking heuristic.
//
// The simulation works in surface units (pixels of a fixed-size drawing
// surface) and advances one fixed step per tick. Hosts feed pointer samples
// in and receive draw commands out; nothing in this package blocks or does I/O.
package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Surface holds the fixed playable bounds.
type Surface struct {
	Width  float64
	Height float64
}

// Paddle is a vertical bat. X is fixed per side, Y is the top edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
}

// MaxY returns the largest legal top edge on the given surface.
func (p Paddle) MaxY(s Surface) float64 {
	return s.Height - p.Height
}

// ClampY keeps the paddle inside [0, surface height - paddle height].
func (p *Paddle) ClampY(s Surface) {
	p.Y = math.Max(0, math.Min(p.MaxY(s), p.Y))
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Ball is the moving circle. Speed is the scalar used to rebuild the velocity
// after a paddle bounce; between bounces the velocity magnitude may differ.
type Ball struct {
	X, Y      float64
	Radius    float64
	Speed     float64
	VelocityX float64
	VelocityY float64
	Color     core.Color
}

// Scores is the point pair. Values only ever grow.
type Scores struct {
	Player int
	AI     int
}

// Side identifies a half of the court.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "cpu"
	default:
		return "none"
	}
}

// Palette holds the color tags for the static parts of the scene.
type Palette struct {
	Background core.Color
	Net        core.Color
	Text       core.Color
}

// Params are the tunables of a match. They are read-only once a State exists.
type Params struct {
	Surface           Surface
	PaddleWidth       float64
	PaddleHeight      float64
	BallRadius        float64
	BaseSpeed         float64 // Speed after a point is scored
	BaseVerticalSpeed float64 // |VelocityY| of a fresh serve
	SpeedIncrement    float64 // Added to Speed on every paddle hit
	MaxDeflection     float64 // Radians; reflection angle at collidePoint = ±1
	ClampCollidePoint bool    // Clamp the normalized hit offset to [-1, 1]
	MaxSpeed          float64 // 0 = unbounded
	Tracking          float64 // CPU paddle smoothing factor per tick
	NetSpacing        float64
	NetDash           float64
	NetWidth          float64
	PlayerColor       core.Color
	AIColor           core.Color
	BallColor         core.Color
	Palette           Palette
}

// DefaultParams returns the classic 800x400 canvas layout.
func DefaultParams() Params {
	return Params{
		Surface:           Surface{Width: 800, Height: 400},
		PaddleWidth:       12,
		PaddleHeight:      80,
		BallRadius:        10,
		BaseSpeed:         5,
		BaseVerticalSpeed: 5,
		SpeedIncrement:    0.2,
		MaxDeflection:     math.Pi / 4,
		Tracking:          0.08,
		NetSpacing:        24,
		NetDash:           12,
		NetWidth:          2,
		PlayerColor:       "#00ff99",
		AIColor:           "#ff5050",
		BallColor:         "#fff",
		Palette: Palette{
			Background: "#111",
			Net:        "#fff",
			Text:       "#fff",
		},
	}
}

// Validate rejects parameters that would produce non-finite state.
func (p Params) Validate() error {
	if !core.Finite(p.Surface.Width, p.Surface.Height, p.PaddleWidth, p.PaddleHeight,
		p.BallRadius, p.BaseSpeed, p.BaseVerticalSpeed, p.SpeedIncrement,
		p.MaxDeflection, p.MaxSpeed, p.Tracking, p.NetSpacing, p.NetDash, p.NetWidth) {
		return fmt.Errorf("pong: parameters must be finite")
	}
	if p.Surface.Width <= 0 || p.Surface.Height <= 0 {
		return fmt.Errorf("pong: surface must be positive, got %vx%v", p.Surface.Width, p.Surface.Height)
	}
	if p.PaddleWidth <= 0 || p.PaddleHeight <= 0 || p.PaddleHeight > p.Surface.Height {
		return fmt.Errorf("pong: paddle %vx%v does not fit surface height %v", p.PaddleWidth, p.PaddleHeight, p.Surface.Height)
	}
	if p.BallRadius <= 0 {
		return fmt.Errorf("pong: ball radius must be positive, got %v", p.BallRadius)
	}
	if p.NetSpacing <= 0 {
		return fmt.Errorf("pong: net spacing must be positive, got %v", p.NetSpacing)
	}
	return nil
}

// State is the whole mutable world of one match. It is owned by a single
// simulation loop and passed by pointer into the step functions.
type State struct {
	Params Params
	Player Paddle
	AI     Paddle
	Ball   Ball
	Scores Scores

	Tick         uint64
	Hits         int // Paddle hits over the whole match
	Rally        int // Paddle hits since the last point
	LongestRally int
}

// NewState lays out a fresh match: paddles vertically centered at the two
// edges, ball at the center heading down-right at base speed.
func NewState(p Params) (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := p.Surface
	centerY := s.Height/2 - p.PaddleHeight/2
	return &State{
		Params: p,
		Player: Paddle{
			X:      0,
			Y:      centerY,
			Width:  p.PaddleWidth,
			Height: p.PaddleHeight,
			Color:  p.PlayerColor,
		},
		AI: Paddle{
			X:      s.Width - p.PaddleWidth,
			Y:      centerY,
			Width:  p.PaddleWidth,
			Height: p.PaddleHeight,
			Color:  p.AIColor,
		},
		Ball: Ball{
			X:         s.Width / 2,
			Y:         s.Height / 2,
			Radius:    p.BallRadius,
			Speed:     p.BaseSpeed,
			VelocityX: p.BaseSpeed,
			VelocityY: p.BaseVerticalSpeed,
			Color:     p.BallColor,
		},
	}, nil
}

// Surface returns the playable bounds.
func (s *State) Surface() Surface {
	return s.Params.Surface
}
