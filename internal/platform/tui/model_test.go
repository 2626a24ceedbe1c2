package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snowroll/internal/config"
	"github.com/vovakirdan/snowroll/internal/core"
	"github.com/vovakirdan/snowroll/internal/scene"
	"github.com/vovakirdan/snowroll/internal/snowball"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	asset, err := scene.Default()
	if err != nil {
		t.Fatalf("scene.Default() failed: %v", err)
	}
	mode, err := snowball.New(asset.Graph, config.DefaultSnowballConfig())
	if err != nil {
		t.Fatalf("snowball.New() failed: %v", err)
	}
	return NewModel(mode, Options{
		Runtime: core.RuntimeConfig{ViewW: 80, ViewH: 24, TickRate: 60},
		KeyHold: 450 * time.Millisecond,
	})
}

func TestModelKeyHoldDrivesButtons(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	next, _ := m.handleKey(runeKey('d'), t0)
	m = next.(Model)
	if !m.mode.Buttons().Right.Pressed {
		t.Fatal("Right should be pressed after d")
	}

	next, _ = m.handleTick(t0.Add(16 * time.Millisecond))
	m = next.(Model)
	if !m.mode.Buttons().Right.Pressed {
		t.Error("Right should stay pressed within the hold")
	}
	if m.mode.Speed().X() <= 0 {
		t.Errorf("Speed().X() = %v, expected positive", m.mode.Speed().X())
	}

	next, _ = m.handleTick(t0.Add(time.Second))
	m = next.(Model)
	if m.mode.Buttons().Right.Pressed {
		t.Error("Right should be released after the hold")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelMouseCapture(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if !m.mode.MouseCaptured() {
		t.Fatal("mouse press should capture")
	}

	next, _ = m.Update(tea.MouseMsg{X: 14, Y: 6, Action: tea.MouseActionMotion})
	m = next.(Model)
	motion := m.mode.MouseMotion()
	// 24 rows * 2 = 48 square units tall.
	if motion.X() != 4.0/48 || motion.Y() != -2.0/48 {
		t.Errorf("MouseMotion() = %v, expected (%v, %v)", motion, 4.0/48, -2.0/48)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.mode.MouseCaptured() {
		t.Error("esc should release capture")
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.Screen().Width() != 100 || m.Screen().Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.Screen().Width(), m.Screen().Height())
	}
}

func TestModelViewDrawsOverlay(t *testing.T) {
	m := newTestModel(t)
	m.View()

	plain := m.Screen().String()
	if !strings.Contains(plain, "WASD moves the ball") {
		t.Error("view should contain the hint line")
	}
	if strings.Contains(plain, "Eat Other snow ball") {
		t.Error("view should not contain the win line before winning")
	}
}
