// Package tui hosts FunClicker in the terminal with Bubble Tea. It maps
// mouse clicks to board cells, drives the round timer from a tick loop and
// renders every screen through a core.Screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the round timer.
type TickMsg time.Time

// tickCmd schedules the next timer tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
