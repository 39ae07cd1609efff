package pong

import "math"

// Rand is the randomness the simulation needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// StepEvents reports what happened during a tick, for hosts that log or
// keep statistics. The simulation itself never reads it back.
type StepEvents struct {
	WallBounce bool
	Hit        Side // Paddle the ball bounced off, if any
	Scored     Side // Side that won a point, if any
}

// Step advances the match by one fixed tick:
// integrate, bounce off walls, bounce off the paddle on the ball's half,
// award points, then let the CPU paddle react.
func (s *State) Step(rng Rand) StepEvents {
	var ev StepEvents
	surface := s.Params.Surface
	b := &s.Ball

	b.X += b.VelocityX
	b.Y += b.VelocityY

	// No position correction: the ball may overlap the wall for a tick.
	if b.Y-b.Radius < 0 || b.Y+b.Radius > surface.Height {
		b.VelocityY = -b.VelocityY
		ev.WallBounce = true
	}

	paddle, side, direction := &s.Player, SidePlayer, 1.0
	if b.X >= surface.Width/2 {
		paddle, side, direction = &s.AI, SideAI, -1.0
	}
	if Collides(*b, *paddle) {
		s.bounce(paddle, direction)
		ev.Hit = side
	}

	// Both edges are checked independently.
	if b.X-b.Radius < 0 {
		s.Scores.AI++
		s.pointScored(rng)
		ev.Scored = SideAI
	}
	if b.X+b.Radius > surface.Width {
		s.Scores.Player++
		s.pointScored(rng)
		ev.Scored = SidePlayer
	}

	TrackBall(&s.AI, *b, surface, s.Params.Tracking)
	s.Tick++
	return ev
}

// CollidePoint returns where the ball meets the paddle, normalized so that
// the paddle center is 0 and its ends are ±1. Corner overlaps can exceed
// that range.
func CollidePoint(b Ball, p Paddle) float64 {
	half := p.Height / 2
	return (b.Y - p.CenterY()) / half
}

// bounce rebuilds the ball velocity from the hit offset and speeds it up.
func (s *State) bounce(p *Paddle, direction float64) {
	b := &s.Ball

	collidePoint := CollidePoint(*b, *p)
	if s.Params.ClampCollidePoint {
		collidePoint = math.Max(-1, math.Min(1, collidePoint))
	}
	angle := s.Params.MaxDeflection * collidePoint

	b.VelocityX = direction * b.Speed * math.Cos(angle)
	b.VelocityY = b.Speed * math.Sin(angle)

	b.Speed += s.Params.SpeedIncrement
	if s.Params.MaxSpeed > 0 && b.Speed > s.Params.MaxSpeed {
		b.Speed = s.Params.MaxSpeed
	}

	s.Hits++
	s.Rally++
	s.LongestRally = max(s.LongestRally, s.Rally)
}

func (s *State) pointScored(rng Rand) {
	s.Ball.Speed = s.Params.BaseSpeed
	s.Rally = 0
	s.ResetBall(rng)
}

// ResetBall serves from the center: horizontal direction reversed, vertical
// direction picked at random at the base vertical speed.
func (s *State) ResetBall(rng Rand) {
	b := &s.Ball
	b.X = s.Params.Surface.Width / 2
	b.Y = s.Params.Surface.Height / 2
	b.VelocityX = -b.VelocityX

	sign := -1.0
	if rng.Float64() > 0.5 {
		sign = 1.0
	}
	b.VelocityY = sign * s.Params.BaseVerticalSpeed
}
