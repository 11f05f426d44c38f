// Package tui runs the arcade in a terminal with Bubble Tea.
// It owns the tick clock, turns key messages into input frames and draws
// the session onto a cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval returns the period of one tick at fps ticks per second.
func tickInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(tickInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
