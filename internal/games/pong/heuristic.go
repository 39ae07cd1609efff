package pong

// TrackBall moves the paddle a fixed fraction of the way toward centering
// itself on the ball, then clamps it to the surface. A factor below 1 gives
// the exponential lag that makes the CPU beatable.
func TrackBall(p *Paddle, b Ball, s Surface, factor float64) {
	target := b.Y - p.Height/2
	p.Y += (target - p.Y) * factor
	p.ClampY(s)
}
