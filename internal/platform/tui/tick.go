// Package tui provides the Bubble Tea frontend: the terminal game loop,
// key and mouse mapping, the start menu and the season scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maysday/internal/core"
)

// TickMsg advances the farm by one simulation step.
type TickMsg time.Time

// tickInterval converts a tick rate to the delay between ticks. A rate of
// zero or less falls back to the default.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
