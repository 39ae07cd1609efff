package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering on a terminal
const (
	BlockChar = '█'
	BallChar  = '●'
)

// ScreenCanvas rasterizes surface-space draw commands onto a cell Screen.
type ScreenCanvas struct {
	screen *core.Screen
	proj   core.Projection
}

// NewScreenCanvas stretches the given surface over the whole screen.
func NewScreenCanvas(screen *core.Screen, s Surface) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		proj:   core.NewProjection(s.Width, s.Height, screen.Width(), screen.Height()),
	}
}

// FillRect fills every cell the rectangle covers.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, color core.Color) {
	c.screen.DrawRect(c.proj.Rect(x, y, w, h), BlockChar, color)
}

// FillCircle fills the cells whose centers lie inside the circle. A circle
// smaller than a cell still marks the cell holding its center.
func (c *ScreenCanvas) FillCircle(x, y, r float64, color core.Color) {
	sx, sy := c.proj.ScaleX(), c.proj.ScaleY()
	if sx == 0 || sy == 0 {
		return
	}

	x0, y0 := c.proj.Point(x-r, y-r)
	x1, y1 := c.proj.Point(x+r, y+r)

	var cells [][2]int
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			// Cell center back in surface units
			px := (float64(cx) + 0.5) / sx
			py := (float64(cy) + 0.5) / sy
			if math.Hypot(px-x, py-y) <= r {
				cells = append(cells, [2]int{cx, cy})
			}
		}
	}

	if len(cells) <= 1 {
		cx, cy := c.proj.Point(x, y)
		c.screen.SetCell(cx, cy, core.Cell{Rune: BallChar, Color: color})
		return
	}
	for _, cell := range cells {
		c.screen.SetCell(cell[0], cell[1], core.Cell{Rune: BlockChar, Color: color})
	}
}

// FillText writes the label starting at the cell holding (x, y).
func (c *ScreenCanvas) FillText(x, y float64, text string, color core.Color) {
	cx, cy := c.proj.Point(x, y)
	c.screen.DrawText(cx, cy, text, color)
}
