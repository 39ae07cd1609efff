package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Op names a draw command.
type Op int

const (
	OpFillRect Op = iota
	OpFillCircle
	OpFillText
)

// DrawCommand is one recorded Canvas call.
type DrawCommand struct {
	Op         Op
	X, Y, W, H float64
	R          float64
	Text       string
	Color      core.Color
}

// Recorder is a Canvas that keeps the commands it receives.
type Recorder struct {
	Commands []DrawCommand
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, color core.Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: color})
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(x, y, radius float64, color core.Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpFillCircle, X: x, Y: y, R: radius, Color: color})
}

// FillText records a text label.
func (r *Recorder) FillText(x, y float64, text string, color core.Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpFillText, X: x, Y: y, Text: text, Color: color})
}
