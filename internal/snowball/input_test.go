package snowball

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/config"
	"github.com/vovakirdan/snowroll/internal/core"
)

var window = core.NewSize(800, 600)

func TestHandleEventKeys(t *testing.T) {
	m := newMode(t, testGraph(nil, nil, 1))

	tests := []struct {
		ev       core.Event
		consumed bool
	}{
		{core.KeyDown(core.KeyW), true},
		{core.KeyDown(core.KeyA), true},
		{core.KeyUp(core.KeyA), true},
		{core.KeyDown(core.KeyOther), false},
		{core.KeyUp(core.KeyEscape), false},
	}
	for _, tt := range tests {
		if got := m.HandleEvent(tt.ev, window); got != tt.consumed {
			t.Errorf("HandleEvent(%v %v) = %v, expected %v", tt.ev.Type, tt.ev.Key, got, tt.consumed)
		}
	}

	b := m.Buttons()
	if !b.Up.Pressed || b.Up.Downs != 1 {
		t.Errorf("Up = %+v, expected pressed with 1 down", b.Up)
	}
	if b.Left.Pressed || b.Left.Downs != 1 {
		t.Errorf("Left = %+v, expected released with 1 down", b.Left)
	}
}

func TestHandleEventDuplicateKeyDown(t *testing.T) {
	m := newMode(t, testGraph(nil, nil, 1))
	m.HandleEvent(core.KeyDown(core.KeyD), window)
	m.HandleEvent(core.KeyDown(core.KeyD), window)

	b := m.Buttons()
	if !b.Right.Pressed || b.Right.Downs != 2 {
		t.Errorf("Right = %+v, expected pressed with 2 downs", b.Right)
	}

	m.Update(0.016)
	if got := m.Buttons().Right.Downs; got != 0 {
		t.Errorf("Right.Downs after update = %d, expected 0", got)
	}
	if !m.Buttons().Right.Pressed {
		t.Error("Right should stay pressed across frames")
	}
}

func TestHandleEventMouseCapture(t *testing.T) {
	m := newMode(t, testGraph(nil, nil, 1))

	if m.HandleEvent(core.MouseMotion(10, 10), window) {
		t.Error("motion before capture should not be consumed")
	}
	if m.MouseMotion() != (mgl32.Vec2{}) {
		t.Errorf("MouseMotion() = %v, expected zero before capture", m.MouseMotion())
	}

	if !m.HandleEvent(core.MouseDown(core.MouseLeft), window) {
		t.Error("first mouse down should be consumed")
	}
	if !m.MouseCaptured() {
		t.Error("mouse should be captured")
	}
	if m.HandleEvent(core.MouseDown(core.MouseLeft), window) {
		t.Error("mouse down while captured should not be consumed")
	}

	if !m.HandleEvent(core.MouseMotion(60, -30), window) {
		t.Error("motion while captured should be consumed")
	}
	want := mgl32.Vec2{0.1, 0.05}
	if !vec2Near(m.MouseMotion(), want) {
		t.Errorf("MouseMotion() = %v, expected %v", m.MouseMotion(), want)
	}

	if !m.HandleEvent(core.KeyDown(core.KeyEscape), window) {
		t.Error("escape should be consumed")
	}
	if m.MouseCaptured() {
		t.Error("escape should release capture")
	}
}

func TestMouseLookFlag(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"disabled", false},
		{"enabled", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSnowballConfig()
			cfg.Features.MouseLook = tt.enabled
			m, err := New(testGraph(nil, nil, 1), cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			cam := m.Graph().At(m.Camera().Transform)
			before := cam.Rotation

			m.HandleEvent(core.MouseDown(core.MouseLeft), window)
			m.HandleEvent(core.MouseMotion(120, 0), window)

			rotated := !cam.Rotation.OrientationEqualThreshold(before, eps)
			if rotated != tt.enabled {
				t.Errorf("camera rotated = %v, expected %v", rotated, tt.enabled)
			}
			if l := cam.Rotation.Len(); mgl32.Abs(l-1) > eps {
				t.Errorf("camera rotation length = %v, expected 1", l)
			}
		})
	}
}
