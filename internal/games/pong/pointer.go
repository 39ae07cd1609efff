package pong

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Pointer is a single-slot, most-recent-value cell for pointer samples.
// Input handlers Store from any goroutine; the simulation Takes at most one
// sample per tick. Older samples are overwritten, never queued.
type Pointer struct {
	latest atomic.Pointer[float64]
}

// Store records a surface-space y sample. Non-finite values are dropped.
func (p *Pointer) Store(surfaceY float64) bool {
	if !core.Finite(surfaceY) {
		return false
	}
	p.latest.Store(&surfaceY)
	return true
}

// Take returns the newest sample since the last Take, if any.
func (p *Pointer) Take() (float64, bool) {
	v := p.latest.Swap(nil)
	if v == nil {
		return 0, false
	}
	return *v, true
}

// PointerY maps a pointer y in display coordinates to surface space.
// displayedHeight is the height the surface currently occupies on screen
// (terminal rows, window pixels). Degenerate inputs are rejected.
func PointerY(screenY, displayedHeight float64, s Surface) (float64, bool) {
	if !core.Finite(screenY, displayedHeight) || displayedHeight <= 0 {
		return 0, false
	}
	scale := s.Height / displayedHeight
	return screenY * scale, true
}

// MovePlayer centers the player paddle on a surface-space y, no smoothing.
func (s *State) MovePlayer(surfaceY float64) {
	if !core.Finite(surfaceY) {
		return
	}
	s.Player.Y = surfaceY - s.Player.Height/2
	s.Player.ClampY(s.Params.Surface)
}

// NudgePlayer moves the player paddle by dy surface units.
func (s *State) NudgePlayer(dy float64) {
	s.MovePlayer(s.Player.CenterY() + dy)
}
