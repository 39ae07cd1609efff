package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the current terminal.

The left paddle follows the mouse pointer when your terminal reports mouse
motion. Arrow keys nudge it otherwise.

Controls:
  Mouse       - Move paddle
  Up/Down     - Nudge paddle
  P/Esc/Space - Pause
  Tab         - Show/hide scores
  R           - Restart
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Examples:
  pong play
  pong play --difficulty easy
  pong play --config ./my-pong.yaml --log-file pong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	game, err := registry.Create("pong", gameCfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		logger.Warn("playing without history", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.Options{Host: "terminal", Player: os.Getenv("USER"), Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
