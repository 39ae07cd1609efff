package pong

// Collides reports whether the ball's bounding box overlaps the paddle.
// The circle is approximated by its axis-aligned square; edges that only
// touch do not count.
func Collides(b Ball, p Paddle) bool {
	return b.X-b.Radius < p.X+p.Width &&
		b.X+b.Radius > p.X &&
		b.Y-b.Radius < p.Y+p.Height &&
		b.Y+b.Radius > p.Y
}
