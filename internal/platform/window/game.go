// Package window provides the Ebiten desktop host for the snowball mode.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/snowball"
)

// Options configures the window host.
type Options struct {
	Width, Height int
	TPS           int
	Title         string
	Logger        *log.Logger
}

// keyBindings maps ebiten keys to mode keys.
var keyBindings = []struct {
	key ebiten.Key
	to  core.Key
}{
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeyEscape, core.KeyEscape},
}

// Game adapts a snowball mode to ebiten.Game.
type Game struct {
	mode     *snowball.Mode
	renderer *Renderer
	logger   *log.Logger
	tps      int

	width, height int
	cursor        cursorTracker
	captured      bool
	wasWon        bool
}

// cursorTracker turns absolute cursor positions into relative deltas.
type cursorTracker struct {
	x, y int
	seen bool
}

func (t *cursorTracker) delta(x, y int) (float32, float32) {
	if !t.seen {
		t.x, t.y, t.seen = x, y, true
		return 0, 0
	}
	dx, dy := x-t.x, y-t.y
	t.x, t.y = x, y
	return float32(dx), float32(dy)
}

// NewGame creates an ebiten game driving mode.
func NewGame(mode *snowball.Mode, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		mode:     mode,
		renderer: &Renderer{},
		logger:   logger,
		tps:      tps,
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Update polls input, forwards it to the mode and steps one fixed frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	window := core.NewSize(g.width, g.height)
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.mode.HandleEvent(core.KeyDown(b.to), window)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			g.mode.HandleEvent(core.KeyUp(b.to), window)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.mode.HandleEvent(core.MouseDown(core.MouseLeft), window)
	}
	if dx, dy := g.cursor.delta(ebiten.CursorPosition()); dx != 0 || dy != 0 {
		g.mode.HandleEvent(core.MouseMotion(dx, dy), window)
	}
	g.syncCursor()

	g.mode.Update(1 / float32(g.tps))

	if g.mode.Won() && !g.wasWon {
		g.wasWon = true
		g.logger.Info("won", "frame", g.mode.Frame(), "weight", g.mode.Weight())
	}
	return nil
}

// syncCursor mirrors the mode's capture flag onto the OS cursor.
func (g *Game) syncCursor() {
	captured := g.mode.MouseCaptured()
	if captured == g.captured {
		return
	}
	g.captured = captured
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	g.logger.Debug("cursor mode changed", "captured", captured)
}

// Draw renders the mode.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	b := screen.Bounds()
	g.mode.Draw(core.NewSize(b.Dx(), b.Dy()), g.renderer)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it closes.
func Run(mode *snowball.Mode, opts Options) error {
	g := NewGame(mode, opts)

	title := opts.Title
	if title == "" {
		title = "snowroll"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)
	return ebiten.RunGame(g)
}
