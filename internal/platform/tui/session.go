package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// sessionView is the screen a session is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewHistory
)

// activeMatch holds the finisher of the match a session is playing. It is
// shared by every copy of the session model so the host can reach it after
// the program has stopped.
type activeMatch struct {
	mu     sync.Mutex
	finish func(reason string)
}

func (a *activeMatch) set(finish func(reason string)) {
	a.mu.Lock()
	a.finish = finish
	a.mu.Unlock()
}

func (a *activeMatch) close(reason string) bool {
	a.mu.Lock()
	finish := a.finish
	a.finish = nil
	a.mu.Unlock()

	if finish == nil {
		return false
	}
	finish(reason)
	return true
}

// SessionModel manages the flow of one remote session:
// menu -> match or history -> menu. Each match gets its own game state.
type SessionModel struct {
	store    *storage.Store
	base     config.PongConfig
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     Model
	history  HistoryModel
	active   *activeMatch
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, base config.PongConfig, cfg core.RuntimeConfig, opts Options) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		base:   base,
		config: cfg,
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH, opts.Renderer),
		active: &activeMatch{},
	}
}

// Finish records the match in progress, if any, with the given end reason.
// It reports whether a match was open.
func (m SessionModel) Finish(reason string) bool {
	return m.active.close(reason)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	if selected.History {
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewHistory
		return m, m.history.Init()
	}

	cfg := m.base
	config.ApplyPongPreset(&cfg, selected.Difficulty)

	game, err := registry.Create("pong", cfg)
	if err != nil {
		m.logger.Error("could not start match", "preset", selected.Difficulty, "error", err)
		return m.backToMenu()
	}

	runtime := m.config
	runtime.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.store, runtime, m.opts)
	m.view = viewGame
	m.active.set(m.game.Finish)
	m.logger.Debug("difficulty selected", "preset", selected.Difficulty)

	return m, m.game.Init()
}

// updateGame forwards to the match. Quitting a match returns to the menu.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.quitting {
		return m.backToMenu()
	}
	return m, cmd
}

// updateHistory forwards to the history table. Quitting it returns to the menu.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if history, ok := next.(HistoryModel); ok {
		m.history = history
	}

	if m.history.quitting {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu shows a fresh menu. Pending commands of the left view are
// dropped, which includes its tea.Quit.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.active.set(nil)
	m.view = viewMenu
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.opts.Renderer)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
