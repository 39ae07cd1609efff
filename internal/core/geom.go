// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Projection maps a continuous drawing surface onto a grid of cells.
// A surface of SurfaceW x SurfaceH units is stretched over CellsW x CellsH cells.
type Projection struct {
	SurfaceW, SurfaceH float64
	CellsW, CellsH     int
}

// NewProjection creates a projection from surface units to cells.
func NewProjection(surfaceW, surfaceH float64, cellsW, cellsH int) Projection {
	return Projection{SurfaceW: surfaceW, SurfaceH: surfaceH, CellsW: cellsW, CellsH: cellsH}
}

// ScaleX returns how many cells one surface unit spans horizontally.
func (p Projection) ScaleX() float64 {
	if p.SurfaceW <= 0 {
		return 0
	}
	return float64(p.CellsW) / p.SurfaceW
}

// ScaleY returns how many cells one surface unit spans vertically.
func (p Projection) ScaleY() float64 {
	if p.SurfaceH <= 0 {
		return 0
	}
	return float64(p.CellsH) / p.SurfaceH
}

// Point converts a surface point to the cell that contains it.
func (p Projection) Point(x, y float64) (int, int) {
	return int(math.Floor(x * p.ScaleX())), int(math.Floor(y * p.ScaleY()))
}

// Rect converts a surface rectangle to cells by rounding its edges.
// A rectangle with positive size always covers at least one cell so that
// thin shapes (a 2-unit net dash) stay visible.
func (p Projection) Rect(x, y, w, h float64) Rect {
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	sx, sy := p.ScaleX(), p.ScaleY()
	x0 := int(math.Round(x * sx))
	y0 := int(math.Round(y * sy))
	x1 := int(math.Round((x + w) * sx))
	y1 := int(math.Round((y + h) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
