package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjectorCentersLookTarget(t *testing.T) {
	asset, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	g := asset.Graph
	cam := &g.Cameras[0]
	cam.Aspect = 16.0 / 9.0

	ball, _ := g.Find("Sphere")
	p := NewProjector(g, cam)

	ndc, w, ok := p.Project(g.WorldPosition(ball))
	if !ok {
		t.Fatal("ball should be in front of the camera")
	}
	if mgl32.Abs(ndc.X()) > 1e-2 || mgl32.Abs(ndc.Y()) > 1e-2 {
		t.Errorf("ball NDC = %v, expected near the screen center", ndc)
	}
	if d := Depth(ndc); d <= 0 || d >= 1 {
		t.Errorf("Depth = %v, expected within (0, 1)", d)
	}

	if r := p.Radius(1, w); r <= 0 || r >= 1 {
		t.Errorf("Radius = %v, expected a small positive NDC size", r)
	}
}

func TestProjectorRejectsBehindCamera(t *testing.T) {
	g := NewGraph()
	h := g.Add(NewTransform("Camera"))
	cam := Camera{Transform: h, FovY: mgl32.DegToRad(60), Aspect: 1, Near: 0.1, Far: 100}
	p := NewProjector(g, &cam)

	// Identity camera looks down -z.
	if _, _, ok := p.Project(mgl32.Vec3{0, 0, -5}); !ok {
		t.Error("point at -z should be visible")
	}
	if _, _, ok := p.Project(mgl32.Vec3{0, 0, 5}); ok {
		t.Error("point at +z is behind the camera")
	}
	if p.Radius(1, 0) != 0 {
		t.Error("Radius at w=0 should be 0")
	}
}
