package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/core"
)

func spriteGraph() (*Graph, *Camera) {
	g := NewGraph()
	ground := NewTransform("Ground")
	ground.Mesh = MeshPlane
	ground.Position = mgl32.Vec3{0, 0, -10}
	g.Add(ground)

	near := NewTransform("Near")
	near.Mesh = MeshSphere
	near.Position = mgl32.Vec3{0, 0, -5}
	g.Add(near)

	far := NewTransform("Far")
	far.Mesh = MeshCoin
	far.Position = mgl32.Vec3{1, 0, -20}
	g.Add(far)

	hidden := NewTransform("Hidden")
	hidden.Mesh = MeshCoin
	hidden.Position = mgl32.Vec3{0, 1, -8}
	hidden.Hidden = true
	g.Add(hidden)

	behind := NewTransform("Behind")
	behind.Mesh = MeshRock
	behind.Position = mgl32.Vec3{0, 0, 5}
	g.Add(behind)

	h := g.Add(NewTransform("Camera"))
	cam := Camera{Transform: h, FovY: mgl32.DegToRad(60), Aspect: 1, Near: 0.1, Far: 100}
	return g, &cam
}

func TestSpritesOrderAndFilter(t *testing.T) {
	g, cam := spriteGraph()
	sprites := NewProjector(g, cam).Sprites(g)

	if len(sprites) != 2 {
		t.Fatalf("len(Sprites) = %d, expected 2", len(sprites))
	}
	if got := g.At(sprites[0].Node).Name; got != "Far" {
		t.Errorf("first sprite = %q, expected Far (painter's order)", got)
	}
	if got := g.At(sprites[1].Node).Name; got != "Near" {
		t.Errorf("second sprite = %q, expected Near", got)
	}
	if sprites[1].Radius <= sprites[0].Radius*0.5 {
		t.Errorf("near radius %v should be larger than far radius %v", sprites[1].Radius, sprites[0].Radius)
	}
}

func TestPlaneDots(t *testing.T) {
	g, cam := spriteGraph()
	planes := g.Planes()
	if len(planes) != 1 {
		t.Fatalf("len(Planes) = %d, expected 1", len(planes))
	}
	dots := NewProjector(g, cam).PlaneDots(g, planes[0], 5)
	if len(dots) != 25 {
		t.Errorf("len(PlaneDots) = %d, expected 25", len(dots))
	}
}

func TestLambert(t *testing.T) {
	g, cam := spriteGraph()
	p := NewProjector(g, cam)
	l := Light{Type: LightDirectional, Direction: mgl32.Vec3{0, 0, -1}, Energy: mgl32.Vec3{1, 1, 1}}

	if got := p.Lambert(l, mgl32.Vec3{0, 0, 1}); !mgl32.FloatEqualThreshold(got, 1, 1e-4) {
		t.Errorf("Lambert(facing) = %v, expected 1", got)
	}
	if got := p.Lambert(l, mgl32.Vec3{0, 0, -1}); got != 0 {
		t.Errorf("Lambert(away) = %v, expected 0", got)
	}
}

func TestMeshColor(t *testing.T) {
	tests := []struct {
		mesh     string
		expected core.RGBA
	}{
		{MeshPlane, core.ColorGround},
		{MeshSphere, core.ColorSnow},
		{MeshCoin, core.ColorGold},
		{MeshRock, core.ColorStone},
		{"teapot", core.ColorWhite},
		{"", core.ColorWhite},
	}
	for _, tt := range tests {
		if got := MeshColor(tt.mesh); got != tt.expected {
			t.Errorf("MeshColor(%q) = %v, expected %v", tt.mesh, got, tt.expected)
		}
	}
}
