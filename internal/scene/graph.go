// Package scene provides the host-side scene graph: an arena of named transforms addressed
// by index handles, cameras and a light, plus a YAML scene-asset reader.
// The snowball mode resolves handles once at construction and never holds pointers into
// the arena across frames.
package scene

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Handle addresses a transform in a Graph.
type Handle int

// NoHandle marks an absent parent or an unresolved lookup.
const NoHandle Handle = -1

// Valid reports whether the handle refers to some slot (it is not checked against a graph).
func (h Handle) Valid() bool {
	return h >= 0
}

// Transform is a named node with a local position, rotation and scale.
type Transform struct {
	Name     string
	Parent   Handle
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Mesh     string // Drawable shape for renderers; empty means not drawn
	Hidden   bool   // Renderers skip hidden nodes
}

// NewTransform creates an identity transform with the given name and no parent.
func NewTransform(name string) Transform {
	return Transform{
		Name:     name,
		Parent:   NoHandle,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// MakeLocalToParent returns T * R * S for this node.
func (t *Transform) MakeLocalToParent() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}

// Camera is a perspective camera attached to a transform.
type Camera struct {
	Transform Handle
	FovY      float32 // Vertical field of view in radians
	Aspect    float32
	Near      float32
	Far       float32
}

// LightType selects how a renderer interprets Light.
type LightType int

const (
	LightPoint       LightType = 0
	LightDirectional LightType = 1
	LightSpot        LightType = 2
	LightHemisphere  LightType = 3
)

// Light is the single shading light renderers apply.
type Light struct {
	Type      LightType
	Direction mgl32.Vec3 // Direction light travels, world space
	Energy    mgl32.Vec3
}

// Graph is the scene arena.
type Graph struct {
	Transforms []Transform
	Cameras    []Camera
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a transform and returns its handle.
func (g *Graph) Add(t Transform) Handle {
	g.Transforms = append(g.Transforms, t)
	return Handle(len(g.Transforms) - 1)
}

// AddCamera attaches a camera to an existing transform.
func (g *Graph) AddCamera(c Camera) {
	g.Cameras = append(g.Cameras, c)
}

// Len returns the number of transforms.
func (g *Graph) Len() int {
	return len(g.Transforms)
}

// At returns the transform behind a handle.
// Panics on an invalid handle, like an out-of-range slice index.
func (g *Graph) At(h Handle) *Transform {
	return &g.Transforms[h]
}

// Find returns the first transform with exactly this name.
func (g *Graph) Find(name string) (Handle, bool) {
	for i := range g.Transforms {
		if g.Transforms[i].Name == name {
			return Handle(i), true
		}
	}
	return NoHandle, false
}

// FindPrefix returns every transform whose name starts with prefix, in arena order.
func (g *Graph) FindPrefix(prefix string) []Handle {
	var out []Handle
	for i := range g.Transforms {
		if strings.HasPrefix(g.Transforms[i].Name, prefix) {
			out = append(out, Handle(i))
		}
	}
	return out
}

// LocalToWorld composes the node's transform with all its ancestors.
func (g *Graph) LocalToWorld(h Handle) mgl32.Mat4 {
	m := g.Transforms[h].MakeLocalToParent()
	// Bounded by Len so a malformed cycle cannot spin forever.
	for p, n := g.Transforms[h].Parent, 0; p.Valid() && n < len(g.Transforms); p, n = g.Transforms[p].Parent, n+1 {
		m = g.Transforms[p].MakeLocalToParent().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (g *Graph) WorldPosition(h Handle) mgl32.Vec3 {
	return g.LocalToWorld(h).Col(3).Vec3()
}

// Clone returns a deep copy, so a mode can mutate its scene without touching the asset.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Transforms: make([]Transform, len(g.Transforms)),
		Cameras:    make([]Camera, len(g.Cameras)),
	}
	copy(c.Transforms, g.Transforms)
	copy(c.Cameras, g.Cameras)
	return c
}
