package snowball

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/scene"
)

// Renderer is the drawing boundary a host implements. Draw calls it in a fixed order:
// SetLight, Clear, DrawScene, then DrawText for each overlay line.
type Renderer interface {
	// SetLight configures the single shading light for this frame.
	SetLight(l scene.Light)
	// Clear fills the color buffer and resets depth.
	Clear(c core.RGBA)
	// DrawScene renders every visible node of g as seen from cam.
	DrawScene(g *scene.Graph, cam *scene.Camera)
	// DrawText draws a line whose baseline starts at anchor, in NDC units where the
	// screen spans [-aspect, aspect] horizontally and [-1, 1] vertically.
	DrawText(text string, anchor mgl32.Vec2, height float32, c core.RGBA)
}

// Draw renders one frame. It writes nothing but the camera aspect.
func (m *Mode) Draw(drawable core.Size, r Renderer) {
	cam := m.Camera()
	aspect := drawable.Aspect()
	cam.Aspect = aspect

	r.SetLight(m.Light())
	r.Clear(m.ClearColor())
	r.DrawScene(m.graph, cam)

	h := m.cfg.Overlay.LineHeight
	o := m.cfg.Overlay
	r.DrawText(o.Hint, mgl32.Vec2{-aspect + 0.1*h, -1 + 0.1*h}, h, core.ColorBlack)
	r.DrawText(o.Goal, mgl32.Vec2{-aspect + 1.2*h, -1 + 1.2*h}, h, core.ColorBlack)
	if m.won {
		r.DrawText(o.Win, mgl32.Vec2{-aspect + 1.2*h, -1 + 2.3*h}, h, core.ColorBlack)
	}
}

// Light returns the configured light.
func (m *Mode) Light() scene.Light {
	l := m.cfg.Light
	return scene.Light{
		Type:      scene.LightType(l.Type),
		Direction: vec3(l.Direction),
		Energy:    vec3(l.Energy),
	}
}

// ClearColor returns the configured clear color as 8-bit RGBA.
func (m *Mode) ClearColor() core.RGBA {
	c := m.cfg.Light.ClearColor
	return core.FromUnit(c[0], c[1], c[2], c[3])
}
