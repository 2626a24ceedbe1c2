package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snowroll/internal/core"
)

// KeyMap defines the key bindings for the snowball host.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Ungrab key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Ungrab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Ungrab, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Arrow keys double as WASD.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w", "forward"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s", "back"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d", "right"),
		),
		Ungrab: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "ungrab mouse"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a mode key.
// Returns the key (may be KeyOther) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyOther, true
	case key.Matches(msg, k.Up):
		return core.KeyW, false
	case key.Matches(msg, k.Down):
		return core.KeyS, false
	case key.Matches(msg, k.Left):
		return core.KeyA, false
	case key.Matches(msg, k.Right):
		return core.KeyD, false
	case key.Matches(msg, k.Ungrab):
		return core.KeyEscape, false
	}
	return core.KeyOther, false
}

// holdKeys are the keys KeyHold tracks, in release order.
var holdKeys = [...]core.Key{core.KeyW, core.KeyA, core.KeyS, core.KeyD}

// KeyHold synthesizes key releases for terminals, which only report presses (and
// auto-repeats). A key counts as held until hold has passed since its last press.
type KeyHold struct {
	hold     time.Duration
	deadline [core.KeyEscape + 1]time.Time
}

// NewKeyHold creates a tracker with the given hold duration.
func NewKeyHold(hold time.Duration) *KeyHold {
	return &KeyHold{hold: hold}
}

// Press records a press (or repeat) of k at now.
func (h *KeyHold) Press(k core.Key, now time.Time) {
	if k <= core.KeyOther || k > core.KeyEscape {
		return
	}
	h.deadline[k] = now.Add(h.hold)
}

// Held reports whether k is currently held.
func (h *KeyHold) Held(k core.Key) bool {
	if k <= core.KeyOther || k > core.KeyEscape {
		return false
	}
	return !h.deadline[k].IsZero()
}

// Expire returns the held keys whose hold ran out by now, forgetting them.
func (h *KeyHold) Expire(now time.Time) []core.Key {
	var out []core.Key
	for _, k := range holdKeys {
		d := h.deadline[k]
		if d.IsZero() || now.Before(d) {
			continue
		}
		h.deadline[k] = time.Time{}
		out = append(out, k)
	}
	return out
}
