package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/snowball"
)

// Options configures the terminal host.
type Options struct {
	Runtime core.RuntimeConfig
	KeyHold time.Duration // How long a key stays down after its last press
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving a snowball mode.
type Model struct {
	mode     *snowball.Mode
	screen   *core.Screen
	renderer *TerminalRenderer
	keys     KeyMap
	help     help.Model
	holds    *KeyHold
	config   core.RuntimeConfig
	logger   *log.Logger

	lastTick time.Time
	mouse    mouseTracker
	wasWon   bool
	quitting bool
	showHelp bool
}

// mouseTracker turns absolute terminal mouse positions into relative deltas.
type mouseTracker struct {
	x, y int
	seen bool
}

// delta returns the motion since the previous position, in square units.
func (t *mouseTracker) delta(x, y int) (float32, float32) {
	if !t.seen {
		t.x, t.y, t.seen = x, y, true
		return 0, 0
	}
	dx, dy := x-t.x, y-t.y
	t.x, t.y = x, y
	return float32(dx), float32(dy * CellAspect)
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(mode *snowball.Mode, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ViewW, cfg.ViewH)
	return Model{
		mode:     mode,
		screen:   screen,
		renderer: NewTerminalRenderer(screen),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		holds:    NewKeyHold(opts.KeyHold),
		config:   cfg,
		logger:   logger,
		showHelp: true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards presses to the mode and arms the synthetic release.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	k, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if k == core.KeyOther {
		return m, nil
	}

	m.mode.HandleEvent(core.KeyDown(k), m.renderer.DrawableSize())
	if k != core.KeyEscape {
		m.holds.Press(k, now)
	}
	return m, nil
}

// handleMouse maps presses to pointer-down events and movement to relative motion.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	window := m.renderer.DrawableSize()
	switch msg.Action {
	case tea.MouseActionPress:
		m.mouse.delta(msg.X, msg.Y)
		if btn, ok := mouseButton(msg.Button); ok {
			if m.mode.HandleEvent(core.MouseDown(btn), window) {
				m.logger.Debug("mouse captured")
			}
		}
	case tea.MouseActionMotion:
		dx, dy := m.mouse.delta(msg.X, msg.Y)
		if dx != 0 || dy != 0 {
			m.mode.HandleEvent(core.MouseMotion(dx, dy), window)
		}
	}
	return m, nil
}

func mouseButton(b tea.MouseButton) (core.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft, true
	case tea.MouseButtonMiddle:
		return core.MouseMiddle, true
	case tea.MouseButtonRight:
		return core.MouseRight, true
	}
	return 0, false
}

// handleResize processes window resize events. The help line takes the last row.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := msg.Height
	if m.showHelp && rows > 1 {
		rows--
	}
	m.config.ViewW = msg.Width
	m.config.ViewH = rows
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired keys and steps the simulation by real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	window := m.renderer.DrawableSize()
	for _, k := range m.holds.Expire(now) {
		m.mode.HandleEvent(core.KeyUp(k), window)
	}

	m.mode.Update(stepSeconds(m.lastTick, now, m.config.FrameSeconds()))
	m.lastTick = now

	if m.mode.Won() && !m.wasWon {
		m.wasWon = true
		m.logger.Info("won", "frame", m.mode.Frame(), "weight", m.mode.Weight())
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.mode.Draw(m.renderer.DrawableSize(), m.renderer)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return out
}

// Screen returns the character buffer the model renders into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program for the given mode.
func Run(mode *snowball.Mode, opts Options) error {
	model := NewModel(mode, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Motion without a held button drives mouse look
	)

	_, err := p.Run()
	return err
}
