package core

// Color is a color tag for a screen cell, written as a hex string ("#00ff99").
// The empty tag means the terminal's default foreground.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}
