// Package window runs the game in a desktop window through ebiten, with the
// left paddle following the real mouse cursor.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tracker"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures the window.
type Options struct {
	Scale    float64 // Initial window size relative to the surface
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// keyBindings maps keys to game actions. Keys fire once per press.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeySpace, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyTab, core.ActionToggleScore},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// holdBindings are applied every tick while held.
var holdBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
}

// Runner implements ebiten.Game around a pong match.
type Runner struct {
	game    *pong.Game
	canvas  *Canvas
	tracker *tracker.Tracker
	logger  *log.Logger
	runtime core.RuntimeConfig

	lastCursorY int
	hasCursor   bool
	gameOver    bool
}

// NewRunner prepares a runner; the match starts immediately.
func NewRunner(game *pong.Game, store *storage.Store, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	var saver tracker.Saver
	if store != nil {
		saver = store
	}

	r := &Runner{
		game:    game,
		canvas:  NewCanvas(),
		tracker: tracker.New(saver, logger, "window"),
		logger:  logger,
		runtime: core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed},
	}
	r.game.Reset(r.runtime)
	r.tracker.Start(r.runtime.Seed)
	return r
}

// Update samples input and advances the match by one tick.
func (r *Runner) Update() error {
	r.samplePointer()

	in := r.readKeys()
	if in.Has(core.ActionQuit) {
		r.tracker.Finish(r.game.Result(), storage.EndQuit)
		return ebiten.Termination
	}
	if in.Has(core.ActionRestart) {
		r.tracker.Finish(r.game.Result(), storage.EndQuit)
		r.runtime.Seed = time.Now().UnixNano()
		r.game.Reset(r.runtime)
		r.tracker.Start(r.runtime.Seed)
		r.gameOver = false
		r.hasCursor = false
		return nil
	}

	st := r.game.Step(in).State
	r.tracker.Observe(r.game.Events(), r.game.Result())
	if st.GameOver && !r.gameOver {
		r.gameOver = true
		r.tracker.Finish(r.game.Result(), storage.EndCompleted)
	}
	return nil
}

// samplePointer stores the cursor position when it moved. ebiten reports
// the cursor in logical pixels, so the displayed height is the surface height.
func (r *Runner) samplePointer() {
	_, y := ebiten.CursorPosition()
	if r.hasCursor && y == r.lastCursorY {
		return
	}
	r.lastCursorY, r.hasCursor = y, true
	r.game.PointerMoved(float64(y), r.game.Surface().Height)
}

func (r *Runner) readKeys() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Set(b.action)
		}
	}
	for _, b := range holdBindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}

// Draw renders the scene and any overlay.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.Target(screen)
	r.game.Draw(r.canvas)

	st := r.game.State()
	s := r.game.Surface()
	switch {
	case st.GameOver:
		msg := "CPU WINS!"
		if r.game.Result().Winner == pong.SidePlayer {
			msg = "YOU WIN!"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %d - %d  (R to restart)", msg, st.Score, st.OpponentScore),
			int(s.Width/2)-90, int(s.Height/2))
	case st.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED  (P to resume)", int(s.Width/2)-60, int(s.Height/2))
	}
}

// Layout keeps the logical screen at the surface size; ebiten scales it to
// the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	s := r.game.Surface()
	return int(s.Width), int(s.Height)
}

// Run opens a window and plays until it is closed or the player quits.
func Run(game *pong.Game, store *storage.Store, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	r := NewRunner(game, store, opts)
	s := game.Surface()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(s.Width*opts.Scale), int(s.Height*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	err := ebiten.RunGame(r)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	// Closing the window ends the match like quitting does.
	r.tracker.Finish(game.Result(), storage.EndQuit)
	return nil
}
