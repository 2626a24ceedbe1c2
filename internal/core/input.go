package core

// Key identifies a keyboard key, abstracted from the host's key codes.
// Only the keys the snowball mode reacts to have names; everything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	default:
		return "Other"
	}
}

// ParseKey maps a single letter (case-insensitive) or "esc"/"escape" to a Key.
func ParseKey(s string) Key {
	switch s {
	case "w", "W":
		return KeyW
	case "a", "A":
		return KeyA
	case "s", "S":
		return KeyS
	case "d", "D":
		return KeyD
	case "esc", "escape", "Escape":
		return KeyEscape
	default:
		return KeyOther
	}
}

// EventType is the kind of discrete input event delivered by a host.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseButtonDown
	EventMouseMotion
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseButtonDown:
		return "MouseButtonDown"
	case EventMouseMotion:
		return "MouseMotion"
	default:
		return "None"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// Event is one input event. Hosts translate their native events into this shape;
// RelX/RelY carry the pointer delta in host units for EventMouseMotion.
type Event struct {
	Type   EventType
	Key    Key
	Button MouseButton
	RelX   float32
	RelY   float32
}

// KeyDown builds a key-down event.
func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUp builds a key-up event.
func KeyUp(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// MouseDown builds a pointer-button-down event.
func MouseDown(b MouseButton) Event {
	return Event{Type: EventMouseButtonDown, Button: b}
}

// MouseMotion builds a pointer-motion event with a relative delta.
func MouseMotion(relX, relY float32) Event {
	return Event{Type: EventMouseMotion, RelX: relX, RelY: relY}
}

// ButtonState tracks one movement button across frames.
// Downs counts key-down events since the last frame (edge detection for collaborators);
// Pressed is the current level.
type ButtonState struct {
	Downs   uint8
	Pressed bool
}

// Press records a key-down. Repeated presses without a release are tolerated.
func (b *ButtonState) Press() {
	b.Downs++
	b.Pressed = true
}

// Release records a key-up.
func (b *ButtonState) Release() {
	b.Pressed = false
}

// EndFrame clears the per-frame edge counter.
func (b *ButtonState) EndFrame() {
	b.Downs = 0
}

// Buttons groups the four directional buttons.
type Buttons struct {
	Left, Right, Down, Up ButtonState
}

// ForKey returns the button bound to a movement key, or nil.
func (bs *Buttons) ForKey(k Key) *ButtonState {
	switch k {
	case KeyA:
		return &bs.Left
	case KeyD:
		return &bs.Right
	case KeyS:
		return &bs.Down
	case KeyW:
		return &bs.Up
	default:
		return nil
	}
}

// EndFrame clears all edge counters.
func (bs *Buttons) EndFrame() {
	bs.Left.EndFrame()
	bs.Right.EndFrame()
	bs.Down.EndFrame()
	bs.Up.EndFrame()
}

// Axes combines the buttons into a 2D input where left/right map to x and down/up to y.
// Opposing buttons held together cancel to zero on that axis.
func (bs Buttons) Axes() (x, y float32) {
	if bs.Left.Pressed && !bs.Right.Pressed {
		x = -1
	}
	if !bs.Left.Pressed && bs.Right.Pressed {
		x = 1
	}
	if bs.Down.Pressed && !bs.Up.Pressed {
		y = -1
	}
	if !bs.Down.Pressed && bs.Up.Pressed {
		y = 1
	}
	return x, y
}
