package window

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/core"
)

// debugGlyphHeight is the line height of ebitenutil's debug font in pixels.
const debugGlyphHeight = 16

// viewport maps NDC to pixels for a drawable of the given size.
type viewport struct {
	w, h float32
}

func newViewport(s core.Size) viewport {
	return viewport{w: float32(s.W), h: float32(s.H)}
}

// toPixel maps NDC (x in [-1,1]) to pixel coordinates.
func (v viewport) toPixel(ndc mgl32.Vec2) (float32, float32) {
	return (ndc.X() + 1) / 2 * v.w, (1 - ndc.Y()) / 2 * v.h
}

// radius converts an NDC half-height radius to pixels.
func (v viewport) radius(r float32) float32 {
	return r * v.h / 2
}

// textOrigin returns the top-left pixel for a debug-font line whose baseline starts at
// anchor, with anchor x in [-aspect, aspect].
func (v viewport) textOrigin(anchor mgl32.Vec2) (int, int) {
	aspect := float32(1)
	if v.h > 0 {
		aspect = v.w / v.h
	}
	x, y := v.toPixel(mgl32.Vec2{anchor.X() / aspect, anchor.Y()})
	return int(x), int(y) - debugGlyphHeight
}

// toColor converts a core color into an image color.
func toColor(c core.RGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
