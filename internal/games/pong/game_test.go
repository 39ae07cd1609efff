package pong

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func newTestGame(t *testing.T, mutate func(*config.PongConfig)) *Game {
	t.Helper()
	cfg := config.DefaultPongConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 20, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("pong", config.DefaultPongConfig())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "pong" || g.Title() != "Pong" {
		t.Errorf("got %q / %q", g.ID(), g.Title())
	}
	if _, ok := g.(registry.PointerTarget); !ok {
		t.Error("pong should accept pointer samples")
	}
}

func TestGameRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.PongConfig)
	}{
		{"zero surface", func(c *config.PongConfig) { c.Surface.Height = 0 }},
		{"negative paddle", func(c *config.PongConfig) { c.Paddles.Width = -1 }},
		{"zero net spacing", func(c *config.PongConfig) { c.Render.NetSpacing = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultPongConfig()
			tc.mutate(&cfg)
			if g, err := NewWithConfig(cfg); err == nil || g != nil {
				t.Errorf("NewWithConfig() = %v, %v; expected an error", g, err)
			}
			if g, err := registry.Create("pong", cfg); err == nil || g != nil {
				t.Errorf("registry.Create() = %v, %v; expected an error", g, err)
			}
		})
	}
}

func TestGamePointerAppliedOnStep(t *testing.T) {
	g := newTestGame(t, nil)

	// Row 5 of a 20-row terminal is y=100 on a 400-unit surface.
	g.PointerMoved(5, 20)
	if g.Snapshot().PlayerY != 160 {
		t.Fatal("pointer sample must not apply before the next Step")
	}

	g.Step(frame())
	if got := g.Snapshot().PlayerY; got != 60 {
		t.Errorf("PlayerY = %v, expected 60", got)
	}
}

func TestGamePointerLastWriteWins(t *testing.T) {
	g := newTestGame(t, nil)

	g.PointerMoved(2, 20)
	g.PointerMoved(18, 20)
	g.PointerMoved(10, 20)
	g.Step(frame())

	if got := g.Snapshot().PlayerY; got != 160 {
		t.Errorf("PlayerY = %v, expected 160 from the last sample", got)
	}
}

func TestGamePointerIgnoresDegenerateHeight(t *testing.T) {
	g := newTestGame(t, nil)

	g.PointerMoved(5, 0)
	g.Step(frame())

	if got := g.Snapshot().PlayerY; got != 160 {
		t.Errorf("PlayerY = %v, expected unchanged 160", got)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.Snapshot().Tick

	g.PointerMoved(0, 20)
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.Snapshot().Tick != tick {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected resumed")
	}
	if got := g.Snapshot().PlayerY; got != 0 {
		t.Errorf("PlayerY = %v, expected the sample stored while paused", got)
	}
}

func TestGameNudge(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(frame(core.ActionDown))
	if got := g.Snapshot().PlayerY; got != 180 {
		t.Errorf("PlayerY = %v after down, expected 180", got)
	}

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionUp))
	if got := g.Snapshot().PlayerY; got != 140 {
		t.Errorf("PlayerY = %v after two ups, expected 140", got)
	}
}

func TestGameEndlessByDefault(t *testing.T) {
	g := newTestGame(t, nil)

	for i := 0; i < 5000; i++ {
		g.Step(frame())
	}
	if g.State().GameOver {
		t.Error("a match without a win score should never end")
	}
}

func TestGameWinScore(t *testing.T) {
	g := newTestGame(t, func(c *config.PongConfig) { c.Gameplay.WinScore = 1 })

	g.state.Player.Y = 0
	g.state.Ball.X, g.state.Ball.Y = 5, 300
	g.state.Ball.VelocityX, g.state.Ball.VelocityY = -5, 0

	g.Step(frame())

	st := g.State()
	if !st.GameOver || st.OpponentScore != 1 {
		t.Fatalf("State = %+v, expected game over with cpu on 1", st)
	}
	if g.Events().Scored != SideAI {
		t.Errorf("Events().Scored = %v, expected cpu", g.Events().Scored)
	}

	r := g.Result()
	if r.Winner != SideAI || r.AIScore != 1 || r.PlayerScore != 0 {
		t.Errorf("Result = %+v", r)
	}

	tick := g.Snapshot().Tick
	g.Step(frame())
	if g.Snapshot().Tick != tick {
		t.Error("simulation advanced after game over")
	}

	screen := core.NewScreen(80, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "CPU WINS!") {
		t.Error("game over message not rendered")
	}

	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.State().GameOver || g.State().OpponentScore != 0 {
		t.Errorf("Reset left %+v", g.State())
	}
}

func TestGameResultInfersLeader(t *testing.T) {
	g := newTestGame(t, nil)
	g.state.Scores = Scores{Player: 4, AI: 2}

	if r := g.Result(); r.Winner != SidePlayer {
		t.Errorf("Winner = %v, expected player", r.Winner)
	}

	g.state.Scores = Scores{Player: 2, AI: 2}
	if r := g.Result(); r.Winner != SideNone {
		t.Errorf("Winner = %v, expected none on a draw", r.Winner)
	}
}

func TestGameToggleScores(t *testing.T) {
	g := newTestGame(t, nil)
	var rec Recorder

	g.Draw(&rec)
	if len(rec.Commands) != 21 {
		t.Fatalf("got %d commands, expected 21 with scores hidden", len(rec.Commands))
	}

	g.Step(frame(core.ActionToggleScore))
	rec = Recorder{}
	g.Draw(&rec)
	if len(rec.Commands) != 23 {
		t.Errorf("got %d commands, expected 23 with scores shown", len(rec.Commands))
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 20)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "PAUSED") {
		t.Error("pause overlay not rendered")
	}
	if got := screen.GetCell(0, 8); got.Color != "#00ff99" {
		t.Errorf("player paddle cell = %+v, expected the scene under the overlay", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, nil)
		for i := 0; i < 3000; i++ {
			if i%7 == 0 {
				g.PointerMoved(float64(i%20), 20)
			}
			g.Step(frame())
		}
		return g.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and input produced different hashes: %d vs %d", a, b)
	}
}

func TestParamsFromConfig(t *testing.T) {
	p := ParamsFromConfig(config.DefaultPongConfig())
	d := DefaultParams()

	if math.Abs(p.MaxDeflection-d.MaxDeflection) > 1e-12 {
		t.Errorf("MaxDeflection = %v, expected %v", p.MaxDeflection, d.MaxDeflection)
	}
	p.MaxDeflection = d.MaxDeflection

	if p != d {
		t.Errorf("params from default config = %+v, expected %+v", p, d)
	}
}
