package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// ParamsFromConfig converts the YAML configuration into simulation parameters.
func ParamsFromConfig(cfg config.PongConfig) Params {
	return Params{
		Surface:           Surface{Width: cfg.Surface.Width, Height: cfg.Surface.Height},
		PaddleWidth:       cfg.Paddles.Width,
		PaddleHeight:      cfg.Paddles.Height,
		BallRadius:        cfg.Ball.Radius,
		BaseSpeed:         cfg.Ball.BaseSpeed,
		BaseVerticalSpeed: cfg.Ball.BaseVerticalSpeed,
		SpeedIncrement:    cfg.Physics.SpeedIncrement,
		MaxDeflection:     cfg.Physics.MaxDeflectionDeg * math.Pi / 180,
		ClampCollidePoint: cfg.Physics.ClampCollidePoint,
		MaxSpeed:          cfg.Physics.MaxSpeed,
		Tracking:          cfg.AI.Tracking,
		NetSpacing:        cfg.Render.NetSpacing,
		NetDash:           cfg.Render.NetDash,
		NetWidth:          cfg.Render.NetWidth,
		PlayerColor:       core.Color(cfg.Colors.Player),
		AIColor:           core.Color(cfg.Colors.AI),
		BallColor:         core.Color(cfg.Colors.Ball),
		Palette: Palette{
			Background: core.Color(cfg.Colors.Background),
			Net:        core.Color(cfg.Colors.Net),
			Text:       core.Color(cfg.Colors.Text),
		},
	}
}

// MatchResult summarizes a match for history and logs.
type MatchResult struct {
	PlayerScore  int
	AIScore      int
	Winner       Side // SideNone when the match was abandoned or drawn
	Ticks        uint64
	Hits         int
	LongestRally int
}

// Game adapts the simulation to the platform's fixed-tick game interface.
type Game struct {
	cfg     config.PongConfig
	params  Params
	state   *State
	pointer Pointer
	runtime core.RuntimeConfig
	rng     *rand.Rand

	paused     bool
	gameOver   bool
	winner     Side
	showScores bool
	lastEvents StepEvents
}

// NewWithConfig creates a pong game. The parameters derived from cfg are
// checked here, so Reset cannot fail later.
func NewWithConfig(cfg config.PongConfig) (*Game, error) {
	params := ParamsFromConfig(cfg)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, params: params}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	state, _ := NewState(g.params) //nolint:errcheck // validated by NewWithConfig
	g.state = state

	g.paused = false
	g.gameOver = false
	g.winner = SideNone
	g.showScores = g.cfg.Render.ShowScores
	g.lastEvents = StepEvents{}
	g.pointer.Take() // Drop samples aimed at the previous match
}

// PointerMoved records a pointer sample. screenY is measured from the top of
// the displayed surface and displayedHeight is its on-screen height, in the
// same unit. Safe to call from an input goroutine; applied on the next Step.
func (g *Game) PointerMoved(screenY, displayedHeight float64) {
	if g.state == nil {
		return
	}
	if y, ok := PointerY(screenY, displayedHeight, g.state.Surface()); ok {
		g.pointer.Store(y)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.lastEvents = StepEvents{}

	if in.Has(core.ActionToggleScore) {
		g.showScores = !g.showScores
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		// Samples that arrive while paused are still the latest position.
		return core.StepResult{State: g.State()}
	}

	if y, ok := g.pointer.Take(); ok {
		g.state.MovePlayer(y)
	}
	step := g.cfg.Gameplay.NudgeStep
	if in.Has(core.ActionUp) {
		g.state.NudgePlayer(-step)
	}
	if in.Has(core.ActionDown) {
		g.state.NudgePlayer(step)
	}

	g.lastEvents = g.state.Step(g.rng)

	if win := g.cfg.Gameplay.WinScore; win > 0 {
		switch {
		case g.state.Scores.Player >= win:
			g.gameOver, g.winner = true, SidePlayer
		case g.state.Scores.AI >= win:
			g.gameOver, g.winner = true, SideAI
		}
	}

	return core.StepResult{State: g.State()}
}

// Events returns what happened during the last Step.
func (g *Game) Events() StepEvents {
	return g.lastEvents
}

// Draw renders the scene onto any canvas.
func (g *Game) Draw(c Canvas) {
	Render(g.state, c, RenderOptions{ShowScores: g.showScores})
}

// Render draws the current game state to the terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(NewScreenCanvas(dst, g.state.Surface()))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := "CPU WINS!"
		if g.winner == SidePlayer {
			msg = "YOU WIN!"
		}
		g.drawCenteredMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.state.Scores.Player, g.state.Scores.AI))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	text := g.palette().Text

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, text)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, text)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, text)
}

func (g *Game) palette() Palette {
	return g.state.Params.Palette
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:         g.state.Scores.Player,
		OpponentScore: g.state.Scores.AI,
		GameOver:      g.gameOver,
		Paused:        g.paused,
	}
}

// Surface returns the playable bounds of the current match.
func (g *Game) Surface() Surface {
	if g.state == nil {
		return Surface{}
	}
	return g.state.Surface()
}

// Result summarizes the current match.
func (g *Game) Result() MatchResult {
	if g.state == nil {
		return MatchResult{}
	}
	r := MatchResult{
		PlayerScore:  g.state.Scores.Player,
		AIScore:      g.state.Scores.AI,
		Winner:       g.winner,
		Ticks:        g.state.Tick,
		Hits:         g.state.Hits,
		LongestRally: g.state.LongestRally,
	}
	if r.Winner == SideNone {
		switch {
		case r.PlayerScore > r.AIScore:
			r.Winner = SidePlayer
		case r.AIScore > r.PlayerScore:
			r.Winner = SideAI
		}
	}
	return r
}

// Register the game with the registry
func init() {
	registry.Register("pong", func(cfg config.PongConfig) (registry.Game, error) {
		g, err := NewWithConfig(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
