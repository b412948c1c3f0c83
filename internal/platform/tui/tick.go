// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// input mapping, menus, the score board and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick. Gen identifies the game model that
// scheduled it, so a tick still in flight after leaving a game is dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextGen returns a fresh tick generation.
func nextGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick at tickRate ticks per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
