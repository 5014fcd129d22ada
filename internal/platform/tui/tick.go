// Package tui provides the Bubble Tea integration: the tick driver, input
// mapping, rendering, name entry, the scoreboard, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation step. Gen identifies the tick
// schedule that produced it: the model bumps its generation whenever the
// driver is cancelled (pause, game over, reset), so a message from a stale
// schedule is discarded instead of advancing the game. This makes
// cancellation explicit and idempotent.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next tick after the given interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
