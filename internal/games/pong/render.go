package pong

import (
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Canvas is a drawing surface that accepts filled shapes in surface units.
type Canvas interface {
	FillRect(x, y, w, h float64, color core.Color)
	FillCircle(x, y, r float64, color core.Color)
	FillText(x, y float64, text string, color core.Color)
}

// RenderOptions toggles optional parts of the scene.
type RenderOptions struct {
	ShowScores bool
}

// Render draws the scene in a fixed order: background, net, player paddle,
// CPU paddle, ball, then the optional score overlay. It only reads s.
func Render(s *State, c Canvas, opts RenderOptions) {
	p := s.Params
	w, h := p.Surface.Width, p.Surface.Height

	c.FillRect(0, 0, w, h, p.Palette.Background)

	for y := 0.0; y < h; y += p.NetSpacing {
		c.FillRect(w/2-p.NetWidth/2, y, p.NetWidth, p.NetDash, p.Palette.Net)
	}

	c.FillRect(s.Player.X, s.Player.Y, s.Player.Width, s.Player.Height, s.Player.Color)
	c.FillRect(s.AI.X, s.AI.Y, s.AI.Width, s.AI.Height, s.AI.Color)
	c.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, s.Ball.Color)

	if opts.ShowScores {
		c.FillText(w/4, 40, strconv.Itoa(s.Scores.Player), p.Palette.Text)
		c.FillText(3*w/4, 40, strconv.Itoa(s.Scores.AI), p.Palette.Text)
	}
}
