package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window sized to the play surface and follow the real mouse
cursor with the left paddle.

Controls:
  Mouse      - Move paddle
  Up/Down    - Nudge paddle
  P/Space    - Pause
  Tab        - Show/hide scores
  R          - Restart
  Q/Esc      - Quit

Examples:
  pong window
  pong window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to the play surface")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database, playing without history", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game, err := pong.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	opts := window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}
	if err := window.Run(game, store, opts); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
