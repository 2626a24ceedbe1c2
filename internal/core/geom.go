// Package core provides fundamental value types shared by the snowball mode and its hosts.
// It contains no host library dependencies (no Bubble Tea, no Ebiten) to keep the
// simulation pure and testable.
package core

// Size is a viewport or window size in host units (pixels, or terminal cells scaled to
// square units).
type Size struct {
	W, H int
}

// NewSize creates a size with the given dimensions.
func NewSize(w, h int) Size {
	return Size{W: w, H: h}
}

// Aspect returns W/H. A zero height yields 1 so callers never divide by zero.
func (s Size) Aspect() float32 {
	if s.H == 0 {
		return 1
	}
	return float32(s.W) / float32(s.H)
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
