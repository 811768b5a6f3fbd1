package core

import (
	"strings"
)

// Screen is a fixed-size character buffer standing in for the small
// monochrome panel. Programs draw into it with text and line primitives and
// a Display implementation decides how a committed frame reaches the player.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
	s.Clear()
	return s
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.set(x+i, y, r)
		i++
	}
}

// DrawLine draws a straight line between two cells (inclusive) using
// Bresenham's algorithm. Horizontal and vertical runs pick the box-drawing
// rune the caller passes; any rune works for diagonals.
func (s *Screen) DrawLine(x0, y0, x1, y1 int, r rune) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.set(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(s.cells[y]))
	}
	return sb.String()
}

// Lines returns every row with trailing spaces trimmed. Blank tail rows are
// dropped so console output stays compact.
func (s *Screen) Lines() []string {
	lines := make([]string, 0, s.height)
	for y := 0; y < s.height; y++ {
		lines = append(lines, strings.TrimRight(string(s.cells[y]), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
