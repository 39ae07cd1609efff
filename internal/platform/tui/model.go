package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tracker"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// resultReporter is implemented by games that can summarize a match.
type resultReporter interface {
	Result() pong.MatchResult
}

// snapshotter is implemented by games that expose their simulation state.
type snapshotter interface {
	Snapshot() pong.Snapshot
}

// eventReporter is implemented by games that report per-tick events.
type eventReporter interface {
	resultReporter
	Events() pong.StepEvents
}

// Options configures a Model beyond the game and its runtime.
type Options struct {
	Host     string             // Recorded with saved matches ("terminal", "ssh")
	Player   string             // Shown in logs
	Logger   *log.Logger        // Nil discards
	Renderer *lipgloss.Renderer // Nil uses the local terminal
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	renderer   *ScreenRenderer
	keys       KeyMap
	help       help.Model
	tracker    *tracker.Tracker
	inputFrame core.InputFrame
	gameState  core.GameState
	tickID     int64
	width      int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var saver tracker.Saver
	if store != nil {
		saver = store
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		renderer:   NewScreenRenderer(opts.Renderer),
		keys:       DefaultKeyMap(),
		help:       h,
		tracker:    tracker.New(saver, logger.With("player", opts.Player), opts.Host),
		inputFrame: core.NewInputFrame(),
		tickID:     newTickID(),
		width:      cfg.ScreenW,
	}
}

// Init starts the match and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.tracker.Start(m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveMatch(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse forwards pointer rows to the game. The row center is used so
// that the first and last rows map inside the surface.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		return m, nil
	}
	if target, ok := m.game.(registry.PointerTarget); ok {
		target.PointerMoved(float64(msg.Y)+0.5, float64(m.screen.Height()))
	}
	return m, nil
}

// handleResize processes window resize events. The play surface has a fixed
// size, so the match continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.width = msg.Width
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the play field to the terminal minus the status rows.
func (m *Model) fitScreen() {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveMatch(storage.EndQuit)
		m.restart()
		return m, tickCmd(m.config.TickRate, m.tickID)
	}

	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State
	if reporter, ok := m.game.(eventReporter); ok {
		m.tracker.Observe(reporter.Events(), reporter.Result())
	}

	if m.gameState.GameOver && !wasOver {
		m.saveMatch(storage.EndCompleted)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// restart begins a new match with a fresh seed and id.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.tracker.Start(m.config.Seed)
	m.inputFrame.Clear()
}

// Finish records the running match with the given end reason. Hosts call it
// when the program is torn down without a key press. Saving happens once per
// match, so calling it after a quit or game over does nothing.
func (m Model) Finish(reason string) {
	m.saveMatch(reason)
}

// saveMatch records the current match once.
func (m *Model) saveMatch(reason string) {
	if reporter, ok := m.game.(resultReporter); ok {
		m.tracker.Finish(reporter.Result(), reason)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screenshot()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenshot returns the current frame as text. Games that expose their
// state get a footer with the tick and a state hash so that a frame can be
// matched against a replay with the same seed.
func (m *Model) screenshot() string {
	m.game.Render(m.screen)
	text := m.screen.String()
	if s, ok := m.game.(snapshotter); ok {
		snap := s.Snapshot()
		text += fmt.Sprintf("\nseed %d  tick %d  state %016x\n", m.config.Seed, snap.Tick, snap.Hash())
	}
	return text
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.statusLine()
}

// statusLine shows the score and the key help below the play field.
func (m Model) statusLine() string {
	scoreStyle := m.renderer.lg.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := m.renderer.lg.NewStyle().Foreground(lipgloss.Color("241"))

	score := scoreStyle.Render(fmt.Sprintf(" YOU %d : %d CPU ", m.gameState.Score, m.gameState.OpponentScore))
	return score + " " + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	if opts.Host == "" {
		opts.Host = "terminal"
	}
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a pressed button
	)

	_, err := p.Run()
	return err
}
