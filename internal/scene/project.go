package scene

import "github.com/go-gl/mathgl/mgl32"

// Projector maps world-space points through a camera into normalized device coordinates.
// Renderers build one per frame after the mode has set the camera aspect.
type Projector struct {
	view     mgl32.Mat4
	proj     mgl32.Mat4
	viewProj mgl32.Mat4
	focal    float32 // proj[1][1], scales world size to NDC height at depth 1
}

// NewProjector builds a projector for camera c of graph g.
func NewProjector(g *Graph, c *Camera) Projector {
	view := g.LocalToWorld(c.Transform).Inv()
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	proj := mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
	return Projector{
		view:     view,
		proj:     proj,
		viewProj: proj.Mul4(view),
		focal:    proj.At(1, 1),
	}
}

// Project returns the NDC position of a world point and its clip w.
// ok is false when the point is behind the camera.
func (p Projector) Project(world mgl32.Vec3) (ndc mgl32.Vec3, w float32, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	w = clip.W()
	if w <= 1e-6 {
		return mgl32.Vec3{}, w, false
	}
	return clip.Vec3().Mul(1 / w), w, true
}

// Radius returns the NDC half-height covered by a sphere of the given world radius at clip
// depth w.
func (p Projector) Radius(worldRadius, w float32) float32 {
	if w <= 1e-6 {
		return 0
	}
	return worldRadius * p.focal / w
}

// ToView transforms a world direction into camera space.
func (p Projector) ToView(dir mgl32.Vec3) mgl32.Vec3 {
	return p.view.Mul4x1(dir.Vec4(0)).Vec3()
}

// Depth maps NDC z from [-1,1] into [0,1].
func Depth(ndc mgl32.Vec3) float32 {
	return ndc.Z()*0.5 + 0.5
}
