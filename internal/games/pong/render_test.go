package pong

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderOrder(t *testing.T) {
	s := newTestState(t)
	var rec Recorder

	Render(s, &rec, RenderOptions{})

	// background + 17 net dashes (0, 24, ..., 384) + 2 paddles + ball
	if len(rec.Commands) != 21 {
		t.Fatalf("got %d commands, expected 21", len(rec.Commands))
	}

	bg := rec.Commands[0]
	want := DrawCommand{Op: OpFillRect, X: 0, Y: 0, W: 800, H: 400, Color: "#111"}
	if bg != want {
		t.Errorf("background = %+v, expected %+v", bg, want)
	}

	for i := 1; i <= 17; i++ {
		c := rec.Commands[i]
		y := float64((i - 1) * 24)
		want := DrawCommand{Op: OpFillRect, X: 399, Y: y, W: 2, H: 12, Color: "#fff"}
		if c != want {
			t.Errorf("net dash %d = %+v, expected %+v", i-1, c, want)
		}
	}

	player := rec.Commands[18]
	if player.Op != OpFillRect || player.X != s.Player.X || player.Y != s.Player.Y || player.Color != "#00ff99" {
		t.Errorf("player paddle = %+v", player)
	}
	cpu := rec.Commands[19]
	if cpu.Op != OpFillRect || cpu.X != 788 || cpu.Color != "#ff5050" {
		t.Errorf("cpu paddle = %+v", cpu)
	}
	ball := rec.Commands[20]
	if ball.Op != OpFillCircle || ball.X != s.Ball.X || ball.Y != s.Ball.Y || ball.R != 10 {
		t.Errorf("ball = %+v", ball)
	}
}

func TestRenderScoresOptional(t *testing.T) {
	s := newTestState(t)
	s.Scores = Scores{Player: 3, AI: 7}
	var rec Recorder

	Render(s, &rec, RenderOptions{ShowScores: true})

	if len(rec.Commands) != 23 {
		t.Fatalf("got %d commands, expected 23", len(rec.Commands))
	}
	left, right := rec.Commands[21], rec.Commands[22]
	if left.Op != OpFillText || left.X != 200 || left.Y != 40 || left.Text != "3" {
		t.Errorf("player score = %+v", left)
	}
	if right.Op != OpFillText || right.X != 600 || right.Y != 40 || right.Text != "7" {
		t.Errorf("cpu score = %+v", right)
	}
}

func TestRenderIsReadOnly(t *testing.T) {
	s := newTestState(t)
	s.Ball.X, s.Ball.Y = 321.5, 77.25
	before := *s

	var first, second Recorder
	Render(s, &first, RenderOptions{ShowScores: true})
	Render(s, &second, RenderOptions{ShowScores: true})

	if !reflect.DeepEqual(first.Commands, second.Commands) {
		t.Error("two renders of the same state differ")
	}
	if *s != before {
		t.Error("Render mutated the state")
	}
}

func TestScreenCanvas(t *testing.T) {
	s := newTestState(t)
	screen := core.NewScreen(80, 20)

	Render(s, NewScreenCanvas(screen, s.Surface()), RenderOptions{})

	tests := []struct {
		name string
		x, y int
		want core.Cell
	}{
		{"background", 20, 5, core.Cell{Rune: BlockChar, Color: "#111"}},
		{"net top dash", 40, 0, core.Cell{Rune: BlockChar, Color: "#fff"}},
		{"player paddle top", 0, 8, core.Cell{Rune: BlockChar, Color: "#00ff99"}},
		{"player paddle bottom", 0, 11, core.Cell{Rune: BlockChar, Color: "#00ff99"}},
		{"above player paddle", 0, 7, core.Cell{Rune: BlockChar, Color: "#111"}},
		{"cpu paddle", 79, 9, core.Cell{Rune: BlockChar, Color: "#ff5050"}},
		{"ball smaller than a cell", 40, 10, core.Cell{Rune: BallChar, Color: "#fff"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("cell (%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScreenCanvasLargeBall(t *testing.T) {
	screen := core.NewScreen(80, 40)
	c := NewScreenCanvas(screen, Surface{Width: 80, Height: 40})

	c.FillCircle(40, 20, 3, "#fff")

	if got := screen.GetCell(40, 20); got.Rune != BlockChar {
		t.Errorf("center cell = %q, expected a block", got.Rune)
	}
	if got := screen.GetCell(45, 20); got.Rune != ' ' {
		t.Errorf("cell outside the radius = %q, expected blank", got.Rune)
	}
}
