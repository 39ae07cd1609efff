package pong

import "testing"

func TestCollides(t *testing.T) {
	paddle := Paddle{X: 0, Y: 160, Width: 12, Height: 80}

	tests := []struct {
		name     string
		ball     Ball
		expected bool
	}{
		{"ball on paddle face", Ball{X: 15, Y: 200, Radius: 10}, true},
		{"ball inside paddle", Ball{X: 6, Y: 200, Radius: 10}, true},
		{"touching right edge only", Ball{X: 22, Y: 200, Radius: 10}, false},
		{"just overlapping right edge", Ball{X: 21.9, Y: 200, Radius: 10}, true},
		{"above paddle", Ball{X: 6, Y: 150, Radius: 10}, false},
		{"top corner overlap", Ball{X: 6, Y: 151, Radius: 10}, true},
		{"below paddle", Ball{X: 6, Y: 250, Radius: 10}, false},
		{"far away", Ball{X: 400, Y: 200, Radius: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.ball, paddle); got != tc.expected {
				t.Errorf("Collides(%+v) = %v, expected %v", tc.ball, got, tc.expected)
			}
		})
	}
}
