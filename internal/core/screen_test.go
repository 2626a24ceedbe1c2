package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorWhite)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorWhite {
		t.Errorf("GetCell(5, 5).Color = %v, expected white", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorWhite)
	s.Set(100, 0, 'A', ColorWhite)
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPlotDepth(t *testing.T) {
	s := NewScreen(4, 4)

	if !s.Plot(1, 1, 0.5, 'a', ColorWhite) {
		t.Error("Plot into empty cell should succeed")
	}
	if s.Plot(1, 1, 0.7, 'b', ColorWhite) {
		t.Error("Plot behind an existing cell should fail")
	}
	if !s.Plot(1, 1, 0.2, 'c', ColorWhite) {
		t.Error("Plot in front of an existing cell should succeed")
	}
	if s.Get(1, 1) != 'c' {
		t.Errorf("Get(1, 1) = %q, expected 'c'", s.Get(1, 1))
	}

	s.Clear()
	if !s.Plot(1, 1, 0.9, 'd', ColorWhite) {
		t.Error("Clear should reset depth")
	}
}

func TestScreenClearWith(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(0, 0, 'X', ColorWhite)
	s.ClearWith(ColorGray)

	if s.Background() != ColorGray {
		t.Errorf("Background() = %v, expected gray", s.Background())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("ClearWith should blank the screen")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("Row(1) = %q, expected Hello at column 2", s.Row(1))
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorWhite)
	s.DrawText(0, 1, "BBBBB", ColorWhite)
	s.DrawText(0, 2, "CCCCC", ColorWhite)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(3)) != 8 {
		t.Errorf("Row length should be 8, got %d", len(s.Row(3)))
	}
	if s.Row(-1) != "        " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
