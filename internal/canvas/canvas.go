// Package canvas provides a colored character buffer for rendering
// spirals and rectangle figures. It decouples drawing from the terminal:
// callers plot in world coordinates through a Viewport while the CLI and
// TUI layers handle actual display.
package canvas

import "strings"

// Cell is a single canvas position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D cell buffer.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a canvas with the given dimensions, cleared to spaces.
func New(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, discarding previous content.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.Clear()
}

// Clear fills the canvas with spaces in the default color.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune in the default color. Out-of-bounds coordinates are
// silently ignored.
func (c *Canvas) Set(x, y int, r rune) {
	c.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a foreground color. Out-of-bounds
// coordinates are silently ignored.
func (c *Canvas) SetColored(x, y int, r rune, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: col}
}

// Get returns the rune at the given position, space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position. Out-of-bounds
// coordinates yield a default space cell.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped at
// the canvas edge.
func (c *Canvas) DrawText(x, y int, text string, col Color) {
	for i, r := range text {
		c.SetColored(x+i, y, r, col)
	}
}

// DrawBox draws a box outline with box-drawing characters. Boxes thinner
// than 2 cells in either dimension are skipped.
func (c *Canvas) DrawBox(x, y, w, h int, col Color) {
	if w < 2 || h < 2 {
		return
	}

	c.SetColored(x, y, '┌', col)
	c.SetColored(x+w-1, y, '┐', col)
	c.SetColored(x, y+h-1, '└', col)
	c.SetColored(x+w-1, y+h-1, '┘', col)

	for i := x + 1; i < x+w-1; i++ {
		c.SetColored(i, y, '─', col)
		c.SetColored(i, y+h-1, '─', col)
	}
	for j := y + 1; j < y+h-1; j++ {
		c.SetColored(x, j, '│', col)
		c.SetColored(x+w-1, j, '│', col)
	}
}

// String converts the buffer to a plain string, rows joined by newlines.
// Colors are dropped; the TUI layer renders cells with styling instead.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	runes := make([]rune, c.width)
	for x := range runes {
		runes[x] = c.cells[y][x].Rune
	}
	return string(runes)
}
