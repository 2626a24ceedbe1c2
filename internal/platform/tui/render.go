package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/scene"
)

// CellAspect is the height of a terminal cell over its width.
const CellAspect = 2

const (
	groundDots = 25
	ambient    = 0.3
)

// shadeRamp goes from dim to bright.
var shadeRamp = []rune(".:-=+*#%@")

// TerminalRenderer draws the mode into a character Screen. Cells are treated as
// CellAspect units tall, so DrawableSize reports square units.
type TerminalRenderer struct {
	screen *core.Screen
	light  scene.Light
}

// NewTerminalRenderer creates a renderer drawing into s.
func NewTerminalRenderer(s *core.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: s}
}

// DrawableSize returns the screen size in square units.
func (r *TerminalRenderer) DrawableSize() core.Size {
	return core.NewSize(r.screen.Width(), r.screen.Height()*CellAspect)
}

// SetLight stores the light for shading.
func (r *TerminalRenderer) SetLight(l scene.Light) {
	r.light = l
}

// Clear fills the screen with the background color.
func (r *TerminalRenderer) Clear(c core.RGBA) {
	r.screen.ClearWith(c)
}

// DrawScene draws the ground as a dot grid and every other visible node as a shaded disc.
func (r *TerminalRenderer) DrawScene(g *scene.Graph, cam *scene.Camera) {
	if r.DrawableSize().Empty() {
		return
	}
	p := scene.NewProjector(g, cam)

	for _, h := range g.Planes() {
		shade := ambient + (1-ambient)*p.Lambert(r.light, p.ToView(mgl32.Vec3{0, 0, 1}).Normalize())
		c := scene.MeshColor(scene.MeshPlane).Scale(shade)
		for _, ndc := range p.PlaneDots(g, h, groundDots) {
			x, y := r.toCell(ndc.X(), ndc.Y())
			r.screen.Plot(x, y, scene.Depth(ndc), '.', c)
		}
	}

	for _, s := range p.Sprites(g) {
		r.drawDisc(p, s)
	}
}

// drawDisc fills every cell whose center falls inside the sprite disc, shading it as a
// sphere facing the camera.
func (r *TerminalRenderer) drawDisc(p scene.Projector, s scene.Sprite) {
	if s.Radius <= 0 {
		return
	}
	base := scene.MeshColor(s.Mesh)
	aspect := r.DrawableSize().Aspect()

	x0, y0 := r.toCell(s.Center.X()-s.Radius/aspect, s.Center.Y()+s.Radius)
	x1, y1 := r.toCell(s.Center.X()+s.Radius/aspect, s.Center.Y()-s.Radius)
	x0 = core.Clamp(x0, 0, r.screen.Width()-1)
	x1 = core.Clamp(x1, 0, r.screen.Width()-1)
	y0 = core.Clamp(y0, 0, r.screen.Height()-1)
	y1 = core.Clamp(y1, 0, r.screen.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cx, cy := r.toNDC(x, y)
			dx := (cx - s.Center.X()) * aspect / s.Radius
			dy := (cy - s.Center.Y()) / s.Radius
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			normal := mgl32.Vec3{dx, dy, float32(math.Sqrt(float64(1 - d2)))}
			light := ambient + (1-ambient)*p.Lambert(r.light, normal)
			ch := shadeRamp[core.Clamp(int(light*float32(len(shadeRamp))), 0, len(shadeRamp)-1)]
			r.screen.Plot(x, y, s.Depth, ch, base.Scale(light))
		}
	}
}

// DrawText writes an overlay line. The anchor is the baseline start in NDC, with x in
// [-aspect, aspect].
func (r *TerminalRenderer) DrawText(text string, anchor mgl32.Vec2, height float32, c core.RGBA) {
	aspect := r.DrawableSize().Aspect()
	x, y := r.toCell(anchor.X()/aspect, anchor.Y())
	y = core.Clamp(y, 0, r.screen.Height()-1)
	r.screen.DrawText(core.Clamp(x, 0, r.screen.Width()-1), y, text, c)
}

// toCell maps NDC to a cell column and row.
func (r *TerminalRenderer) toCell(nx, ny float32) (int, int) {
	w, h := float32(r.screen.Width()), float32(r.screen.Height())
	x := int(math.Floor(float64((nx + 1) / 2 * w)))
	y := int(math.Floor(float64((1 - ny) / 2 * h)))
	return x, y
}

// toNDC returns the NDC of a cell center.
func (r *TerminalRenderer) toNDC(x, y int) (float32, float32) {
	w, h := float32(r.screen.Width()), float32(r.screen.Height())
	return (float32(x)+0.5)/w*2 - 1, 1 - (float32(y)+0.5)/h*2
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	bg := lipgloss.Color(s.Background().Hex())
	styles := make(map[core.RGBA]lipgloss.Style)
	styleFor := func(c core.RGBA) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Background(bg)
			styles[c] = st
		}
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
