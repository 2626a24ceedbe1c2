package core

import (
	"strings"
)

// Cell is one terminal character with its foreground color.
type Cell struct {
	Rune  rune
	Color RGBA
	Depth float32
}

// Screen is a 2D character buffer the terminal renderer draws into.
// It decouples projection and overlay drawing from the terminal, allowing the platform
// to handle actual display.
type Screen struct {
	width      int
	height     int
	cells      [][]Cell
	background RGBA
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:      width,
		height:     height,
		background: ColorBlack,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the color the screen was last cleared with.
func (s *Screen) Background() RGBA {
	return s.background
}

// Resize changes the screen dimensions. Content is discarded; every frame redraws.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the screen with spaces and resets the depth buffer.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: s.background, Depth: 1}
		}
	}
}

// ClearWith sets the background color and clears.
func (s *Screen) ClearWith(bg RGBA) {
	s.background = bg
	s.Clear()
}

// Set places a rune at the given position, ignoring depth.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Depth: s.cells[y][x].Depth}
}

// Plot places a rune if depth is nearer than what the cell already holds.
func (s *Screen) Plot(x, y int, depth float32, r rune, c RGBA) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	if depth >= s.cells[y][x].Depth {
		return false
	}
	s.cells[y][x] = Cell{Rune: r, Color: c, Depth: depth}
	return true
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: s.background, Depth: 1}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), on top of everything.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c RGBA) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
