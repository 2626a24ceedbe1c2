package core

// RuntimeConfig contains configuration passed from the host to the mode loop.
type RuntimeConfig struct {
	ViewW    int // Viewport width in host units
	ViewH    int // Viewport height in host units
	TickRate int // Frames per second the host aims for (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    80,
		ViewH:    48,
		TickRate: 60,
	}
}

// FrameSeconds returns the nominal duration of one frame.
func (c RuntimeConfig) FrameSeconds() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float32(c.TickRate)
}
