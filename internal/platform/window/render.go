package window

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/scene"
)

const (
	groundDots = 41
	ambient    = 0.3
)

// Renderer draws the mode onto an ebiten image with flat shaded discs, far to near.
type Renderer struct {
	target *ebiten.Image
	light  scene.Light
}

// SetTarget sets the image the next frame draws into.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) size() core.Size {
	b := r.target.Bounds()
	return core.NewSize(b.Dx(), b.Dy())
}

// SetLight stores the light for shading.
func (r *Renderer) SetLight(l scene.Light) {
	r.light = l
}

// Clear fills the target.
func (r *Renderer) Clear(c core.RGBA) {
	r.target.Fill(toColor(c))
}

// DrawScene draws the ground as a dot grid, then every visible node as a disc with a
// highlight toward the light.
func (r *Renderer) DrawScene(g *scene.Graph, cam *scene.Camera) {
	size := r.size()
	if size.Empty() {
		return
	}
	vp := newViewport(size)
	p := scene.NewProjector(g, cam)

	for _, h := range g.Planes() {
		shade := ambient + (1-ambient)*p.Lambert(r.light, p.ToView(mgl32.Vec3{0, 0, 1}).Normalize())
		c := toColor(scene.MeshColor(scene.MeshPlane).Scale(shade))
		for _, ndc := range p.PlaneDots(g, h, groundDots) {
			x, y := vp.toPixel(mgl32.Vec2{ndc.X(), ndc.Y()})
			vector.DrawFilledCircle(r.target, x, y, 1.5, c, false)
		}
	}

	toLight := p.ToView(r.light.Direction.Mul(-1))
	if toLight.Len() > 0 {
		toLight = toLight.Normalize()
	}

	for _, s := range p.Sprites(g) {
		base := scene.MeshColor(s.Mesh)
		x, y := vp.toPixel(mgl32.Vec2{s.Center.X(), s.Center.Y()})
		rad := vp.radius(s.Radius)
		if rad < 1 {
			rad = 1
		}

		body := ambient + (1-ambient)*p.Lambert(r.light, mgl32.Vec3{0, 0, 1})
		vector.DrawFilledCircle(r.target, x, y, rad, toColor(base.Scale(body)), true)

		// Highlight shifted toward the light; screen y grows downward.
		hx := x + toLight.X()*rad*0.35
		hy := y - toLight.Y()*rad*0.35
		vector.DrawFilledCircle(r.target, hx, hy, rad*0.5, toColor(base.Scale(body+0.25)), true)
	}
}

// DrawText prints an overlay line with the debug font. The font has a fixed color, so c
// is not applied.
func (r *Renderer) DrawText(text string, anchor mgl32.Vec2, height float32, c core.RGBA) {
	x, y := newViewport(r.size()).textOrigin(anchor)
	ebitenutil.DebugPrintAt(r.target, text, x, y)
}
