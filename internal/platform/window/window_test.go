package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       core.Color
		expected color.Color
	}{
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#111", color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}},
		{"#00ff99", color.RGBA{R: 0x00, G: 0xff, B: 0x99, A: 0xff}},
		{"#ff5050", color.RGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xff}},
		{"", color.White},
		{"chartreuse", color.White},
	}

	for _, tc := range tests {
		if got := ParseColor(tc.in); got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestCanvasCachesColors(t *testing.T) {
	c := NewCanvas()
	first := c.color("#ff5050")
	if len(c.colors) != 1 {
		t.Fatalf("cache has %d entries", len(c.colors))
	}
	if c.color("#ff5050") != first {
		t.Error("cached color differs")
	}
}

func TestRunnerLayoutUsesSurface(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Surface.Width, cfg.Surface.Height = 640, 360
	game, err := pong.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	r := NewRunner(game, nil, Options{Seed: 1})

	w, h := r.Layout(1920, 1080)
	if w != 640 || h != 360 {
		t.Errorf("Layout() = %dx%d, expected 640x360", w, h)
	}
	if r.tracker.MatchID() == "" {
		t.Error("runner should start tracking a match")
	}
}
