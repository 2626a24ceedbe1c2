// Package tui provides the Bubble Tea host for the snowball mode.
// It handles the terminal loop, input mapping and character-cell rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxElapsed caps one simulation step so a stalled terminal does not teleport the ball.
const maxElapsed = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// stepSeconds returns the seconds between two ticks, clamped to [0, maxElapsed].
// A zero previous time means this is the first tick, which advances one nominal frame.
func stepSeconds(prev, now time.Time, nominal float32) float32 {
	if prev.IsZero() {
		return nominal
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > maxElapsed {
		d = maxElapsed
	}
	return float32(d.Seconds())
}
