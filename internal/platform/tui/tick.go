// Package tui runs the game in a terminal through Bubble Tea, locally or
// over SSH. It owns the frame loop, maps keys and mouse motion to game input,
// and records finished matches.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick
// chain so that a model ignores ticks scheduled by an earlier model.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// newTickID returns a process-unique tick chain id.
func newTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
