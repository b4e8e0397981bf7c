// Package tui runs the game inside a terminal using Bubble Tea.
// It owns the tick loop, key handling and the score table screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickMsg advances the simulation by one step. At is when the timer fired;
// hold expiry is measured against it.
type TickMsg struct {
	At time.Time
}

// tickInterval is the time between steps at rate steps per second. A
// non-positive rate falls back to the default.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// nextTick schedules the step after this one.
func (m Model) nextTick() tea.Cmd {
	return tea.Tick(tickInterval(m.config.TickRate), func(at time.Time) tea.Msg {
		return TickMsg{At: at}
	})
}
