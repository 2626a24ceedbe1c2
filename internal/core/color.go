package core

import "fmt"

// RGBA is an 8-bit-per-channel color, matching the u8vec4 colors hosts accept for
// overlay text.
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors used by the mode and renderers.
var (
	ColorBlack  = RGBA{0x00, 0x00, 0x00, 0x00}
	ColorWhite  = RGBA{0xff, 0xff, 0xff, 0xff}
	ColorGray   = RGBA{0x80, 0x80, 0x80, 0xff}
	ColorSnow   = RGBA{0xf0, 0xf6, 0xff, 0xff}
	ColorGold   = RGBA{0xff, 0xc8, 0x20, 0xff}
	ColorStone  = RGBA{0x6a, 0x5a, 0x4e, 0xff}
	ColorGround = RGBA{0x9a, 0xb0, 0x9a, 0xff}
)

// FromUnit converts [0,1] float channels to an 8-bit color, clamping out-of-range values.
func FromUnit(r, g, b, a float32) RGBA {
	ch := func(v float32) uint8 {
		return uint8(ClampF(v, 0, 1)*255 + 0.5)
	}
	return RGBA{ch(r), ch(g), ch(b), ch(a)}
}

// Hex returns the color as a #rrggbb string (alpha is dropped).
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale multiplies the color channels by k (clamped), leaving alpha alone.
func (c RGBA) Scale(k float32) RGBA {
	scale := func(v uint8) uint8 {
		return uint8(ClampF(float32(v)*k, 0, 255))
	}
	return RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
