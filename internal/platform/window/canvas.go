package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Canvas draws scene commands onto an ebiten image in surface pixels.
type Canvas struct {
	dst    *ebiten.Image
	colors map[core.Color]color.Color
}

// NewCanvas creates a canvas with an empty color cache.
func NewCanvas() *Canvas {
	return &Canvas{colors: make(map[core.Color]color.Color)}
}

// Target sets the image the next commands draw onto.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.color(clr), false)
}

// FillCircle draws a filled, anti-aliased circle.
func (c *Canvas) FillCircle(x, y, r float64, clr core.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), c.color(clr), true)
}

// FillText prints text with the built-in debug font, which is always white.
func (c *Canvas) FillText(x, y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}

func (c *Canvas) color(tag core.Color) color.Color {
	if clr, ok := c.colors[tag]; ok {
		return clr
	}
	clr := ParseColor(tag)
	c.colors[tag] = clr
	return clr
}

// ParseColor converts a hex color tag. Empty or invalid tags are white.
func ParseColor(tag core.Color) color.Color {
	col, err := colorful.Hex(string(tag))
	if err != nil {
		return color.White
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
