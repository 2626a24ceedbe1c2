package snowball

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/core"
)

// HandleEvent applies one input event and reports whether the mode consumed it.
// window is the host window size, used to normalize pointer motion.
func (m *Mode) HandleEvent(ev core.Event, window core.Size) bool {
	switch ev.Type {
	case core.EventKeyDown:
		if ev.Key == core.KeyEscape {
			m.mouseCaptured = false
			return true
		}
		if b := m.buttons.ForKey(ev.Key); b != nil {
			b.Press()
			return true
		}

	case core.EventKeyUp:
		if b := m.buttons.ForKey(ev.Key); b != nil {
			b.Release()
			return true
		}

	case core.EventMouseButtonDown:
		if !m.mouseCaptured {
			m.mouseCaptured = true
			return true
		}

	case core.EventMouseMotion:
		if m.mouseCaptured {
			h := float32(window.H)
			if h <= 0 {
				h = 1
			}
			m.mouseMotion = mgl32.Vec2{ev.RelX / h, -ev.RelY / h}
			if m.cfg.Features.MouseLook {
				m.look(m.mouseMotion)
			}
			return true
		}
	}

	return false
}

// look turns the camera by a normalized motion delta, scaled by the field of view.
// The chase camera still snaps its position every frame; only rotation is affected.
func (m *Mode) look(motion mgl32.Vec2) {
	cam := m.Camera()
	t := m.graph.At(cam.Transform)
	yaw := mgl32.QuatRotate(-motion.X()*cam.FovY, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(motion.Y()*cam.FovY, mgl32.Vec3{1, 0, 0})
	t.Rotation = t.Rotation.Mul(yaw).Mul(pitch).Normalize()
}
