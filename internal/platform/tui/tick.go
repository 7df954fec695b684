// Package tui provides the Bubble Tea integration for the maze game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the game model whose chain
// produced it. Ticks from an older chain are dropped, so leaving a game and
// starting another never doubles the tick rate.
type TickMsg struct {
	Chain uint64
	Time  time.Time
}

var lastChain atomic.Uint64

// newTickChain returns an id no other model has used.
func newTickChain() uint64 {
	return lastChain.Add(1)
}

// tickCmd schedules the next tick of chain at the given rate.
func tickCmd(chain uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Chain: chain, Time: t}
	})
}
