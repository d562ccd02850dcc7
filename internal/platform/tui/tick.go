// Package tui provides the Bubble Tea integration for wavetap. It handles
// the terminal UI loop, input mapping, rendering and SSH serving; all game
// rules live in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a presentation frame. Each frame advances the
// engine's logical clock by the wall-clock time elapsed since the previous
// frame, so the engine's own timers stay accurate at any frame rate.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
