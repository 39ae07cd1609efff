package pong

import "math"

// Snapshot contains the complete simulation state of a match.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	BallX        float64
	BallY        float64
	BallVX       float64
	BallVY       float64
	BallSpeed    float64
	PlayerY      float64
	AIY          float64
	PlayerScore  int
	AIScore      int
	Hits         int
	LongestRally int
	GameOver     bool
	Winner       int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Tick:         s.Tick,
		BallX:        s.Ball.X,
		BallY:        s.Ball.Y,
		BallVX:       s.Ball.VelocityX,
		BallVY:       s.Ball.VelocityY,
		BallSpeed:    s.Ball.Speed,
		PlayerY:      s.Player.Y,
		AIY:          s.AI.Y,
		PlayerScore:  s.Scores.Player,
		AIScore:      s.Scores.AI,
		Hits:         s.Hits,
		LongestRally: s.LongestRally,
		GameOver:     g.gameOver,
		Winner:       int(g.winner),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.BallSpeed, snap.PlayerY, snap.AIY} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.PlayerScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AIScore)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LongestRally) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)       //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	return h
}
