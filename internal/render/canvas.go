// Package render draws terminal charts and status badges.
package render

import (
	"fmt"
	"strings"
)

// RGB represents an RGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// String returns a string representation of the RGB color.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Cell is one character position on a canvas.
type Cell struct {
	Glyph rune
	Color *RGB // nil renders in the terminal's default color
}

// Canvas is a fixed grid of cells addressed from the top-left corner.
type Canvas struct {
	Width  int
	Height int
	cells  []Cell
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	c.Clear()
	return c
}

// Set places a glyph. Out of bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, glyph rune, color *RGB) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = Cell{Glyph: glyph, Color: color}
}

// Get returns the cell at the coordinates, or false if out of bounds.
func (c *Canvas) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return Cell{}, false
	}
	return c.cells[y*c.Width+x], true
}

// Fill sets every cell to glyph.
func (c *Canvas) Fill(glyph rune, color *RGB) {
	for i := range c.cells {
		c.cells[i] = Cell{Glyph: glyph, Color: color}
	}
}

// Clear resets the canvas to blanks.
func (c *Canvas) Clear() {
	c.Fill(' ', nil)
}

// DrawHLine draws a horizontal run, leaving cells that already hold a
// non-blank glyph untouched.
func (c *Canvas) DrawHLine(y int, glyph rune, color *RGB) {
	for x := 0; x < c.Width; x++ {
		if cell, ok := c.Get(x, y); ok && cell.Glyph == ' ' {
			c.Set(x, y, glyph, color)
		}
	}
}

// ColorFunc picks the color of a cell from its position.
type ColorFunc func(x, y int) *RGB

// DrawLine draws a line using Bresenham's algorithm, coloring each cell with
// colorAt (nil draws uncolored). The endpoints are not drawn so markers
// placed there survive.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, glyph rune, colorAt ColorFunc) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			break
		}
		if x != x0 || y != y0 {
			var color *RGB
			if colorAt != nil {
				color = colorAt(x, y)
			}
			c.Set(x, y, glyph, color)
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Lines returns each row as a string. With color set, colored cells are
// wrapped in 24-bit ANSI escapes.
func (c *Canvas) Lines(color bool) []string {
	lines := make([]string, c.Height)
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		b.Reset()
		for x := 0; x < c.Width; x++ {
			cell := c.cells[y*c.Width+x]
			if color && cell.Color != nil {
				b.WriteString(Paint(string(cell.Glyph), *cell.Color))
				continue
			}
			b.WriteRune(cell.Glyph)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(false), "\n")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
