// Package tui runs the maze inside a Bubble Tea program. The frame loop is
// driven by tick messages; key messages are queued and handed to the loop
// on the next tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame of the game loop.
type TickMsg time.Time

// tickInterval returns the frame period for tickRate frames per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
