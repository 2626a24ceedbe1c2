package scene

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/core"
)

// Mesh names the renderers know how to draw.
const (
	MeshPlane  = "plane"
	MeshSphere = "sphere"
	MeshCoin   = "coin"
	MeshRock   = "rock"
)

var meshColors = map[string]core.RGBA{
	MeshPlane:  core.ColorGround,
	MeshSphere: core.ColorSnow,
	MeshCoin:   core.ColorGold,
	MeshRock:   core.ColorStone,
}

// MeshColor returns the base color renderers use for a mesh. Unknown meshes are white.
func MeshColor(mesh string) core.RGBA {
	if c, ok := meshColors[mesh]; ok {
		return c
	}
	return core.ColorWhite
}

// Sprite is a node reduced to a screen-facing disc.
type Sprite struct {
	Node   Handle
	Mesh   string
	Center mgl32.Vec3 // NDC
	Radius float32    // NDC half-height units
	Depth  float32    // [0,1], larger is farther
}

// Sprites projects every visible, non-plane mesh node and returns them far to near,
// ready for painter's-order drawing. Nodes behind the camera are dropped.
func (p Projector) Sprites(g *Graph) []Sprite {
	var out []Sprite
	for i := range g.Transforms {
		t := &g.Transforms[i]
		if t.Hidden || t.Mesh == "" || t.Mesh == MeshPlane {
			continue
		}
		world := g.LocalToWorld(Handle(i))
		ndc, w, ok := p.Project(world.Col(3).Vec3())
		if !ok {
			continue
		}
		out = append(out, Sprite{
			Node:   Handle(i),
			Mesh:   t.Mesh,
			Center: ndc,
			Radius: p.Radius(maxScale(world), w),
			Depth:  Depth(ndc),
		})
	}
	slices.SortStableFunc(out, func(a, b Sprite) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return out
}

// PlaneDots projects an n×n grid spanning the plane node's local [-1,1] square.
// Points behind the camera are dropped.
func (p Projector) PlaneDots(g *Graph, h Handle, n int) []mgl32.Vec3 {
	if n < 2 {
		n = 2
	}
	world := g.LocalToWorld(h)
	out := make([]mgl32.Vec3, 0, n*n)
	for i := range n {
		for j := range n {
			local := mgl32.Vec4{
				-1 + 2*float32(i)/float32(n-1),
				-1 + 2*float32(j)/float32(n-1),
				0,
				1,
			}
			if ndc, _, ok := p.Project(world.Mul4x1(local).Vec3()); ok {
				out = append(out, ndc)
			}
		}
	}
	return out
}

// Planes returns the visible plane nodes.
func (g *Graph) Planes() []Handle {
	var out []Handle
	for i := range g.Transforms {
		if t := &g.Transforms[i]; t.Mesh == MeshPlane && !t.Hidden {
			out = append(out, Handle(i))
		}
	}
	return out
}

// Lambert returns the diffuse intensity of a view-space normal under l, scaled by the
// mean light energy. Every light type is treated as directional.
func (p Projector) Lambert(l Light, normal mgl32.Vec3) float32 {
	toLight := p.ToView(l.Direction.Mul(-1))
	if toLight.Len() == 0 {
		return 0
	}
	d := normal.Dot(toLight.Normalize())
	if d < 0 {
		d = 0
	}
	return d * (l.Energy.X() + l.Energy.Y() + l.Energy.Z()) / 3
}

func maxScale(m mgl32.Mat4) float32 {
	s := m.Col(0).Vec3().Len()
	if y := m.Col(1).Vec3().Len(); y > s {
		s = y
	}
	if z := m.Col(2).Vec3().Len(); z > s {
		s = z
	}
	return s
}
