package pong

import (
	"math"
	"sync"
	"testing"
)

func TestPointerLastWriteWins(t *testing.T) {
	var p Pointer

	if _, ok := p.Take(); ok {
		t.Fatal("empty pointer should have no sample")
	}

	p.Store(10)
	p.Store(20)
	p.Store(30)

	y, ok := p.Take()
	if !ok || y != 30 {
		t.Errorf("Take() = (%v, %v), expected (30, true)", y, ok)
	}
	if _, ok := p.Take(); ok {
		t.Error("a sample should only be taken once")
	}
}

func TestPointerRejectsNonFinite(t *testing.T) {
	var p Pointer

	if p.Store(math.NaN()) {
		t.Error("NaN should be rejected")
	}
	if p.Store(math.Inf(1)) {
		t.Error("+Inf should be rejected")
	}
	if _, ok := p.Take(); ok {
		t.Error("rejected samples must not be stored")
	}
}

func TestPointerConcurrentStores(t *testing.T) {
	var p Pointer
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Store(v)
			}
		}(float64(i))
	}
	wg.Wait()

	y, ok := p.Take()
	if !ok || y < 0 || y > 7 {
		t.Errorf("Take() = (%v, %v), expected one of the stored values", y, ok)
	}
}

func TestPointerY(t *testing.T) {
	s := Surface{Width: 800, Height: 400}

	tests := []struct {
		name      string
		screenY   float64
		displayed float64
		want      float64
		ok        bool
	}{
		{"same size", 150, 400, 150, true},
		{"terminal rows", 5, 20, 100, true},
		{"window scaled up", 400, 800, 200, true},
		{"zero displayed height", 5, 0, 0, false},
		{"negative displayed height", 5, -20, 0, false},
		{"NaN sample", math.NaN(), 20, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PointerY(tc.screenY, tc.displayed, s)
			if ok != tc.ok || got != tc.want {
				t.Errorf("PointerY(%v, %v) = (%v, %v), expected (%v, %v)", tc.screenY, tc.displayed, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestMovePlayerCentersAndClamps(t *testing.T) {
	s := newTestState(t)

	s.MovePlayer(200)
	if s.Player.Y != 160 {
		t.Errorf("Y = %v, expected 160", s.Player.Y)
	}

	s.MovePlayer(5)
	if s.Player.Y != 0 {
		t.Errorf("Y = %v, expected clamp to 0", s.Player.Y)
	}

	s.MovePlayer(399)
	if s.Player.Y != 320 {
		t.Errorf("Y = %v, expected clamp to 320", s.Player.Y)
	}

	s.MovePlayer(math.NaN())
	if s.Player.Y != 320 {
		t.Errorf("NaN sample moved the paddle to %v", s.Player.Y)
	}

	s.NudgePlayer(-20)
	if s.Player.Y != 300 {
		t.Errorf("Y = %v after nudge, expected 300", s.Player.Y)
	}
}
