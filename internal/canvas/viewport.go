package canvas

import "math"

// CellAspect is the assumed width:height ratio of a terminal cell. Cells
// are roughly twice as tall as they are wide, so a square world region
// needs twice as many columns as rows to look square on screen.
const CellAspect = 0.5

// Viewport maps world coordinates onto canvas cells. The world region is
// centered on the origin and extends Radius in every direction, with the
// horizontal scale corrected for the cell aspect ratio.
type Viewport struct {
	Radius float64
	width  int
	height int
}

// NewViewport creates a viewport covering [-radius, radius] in world
// space for a canvas of the given dimensions.
func NewViewport(width, height int, radius float64) Viewport {
	if radius <= 0 {
		radius = 1
	}
	return Viewport{Radius: radius, width: width, height: height}
}

// Fit returns a viewport for the canvas sized so the given world radius
// fills the smaller screen dimension.
func Fit(c *Canvas, radius float64) Viewport {
	return NewViewport(c.Width(), c.Height(), radius)
}

// ToCell projects a world point to cell coordinates. The second return is
// false when the point falls outside the canvas.
func (v Viewport) ToCell(x, y float64) (int, int, bool) {
	// Scale so the world circle fits the limiting dimension.
	scaleY := float64(v.height-1) / (2 * v.Radius)
	scaleX := scaleY / CellAspect
	if maxX := float64(v.width-1) / (2 * v.Radius); scaleX > maxX {
		scaleX = maxX
		scaleY = scaleX * CellAspect
	}

	// World y grows upward, cell y grows downward. The origin lands on
	// the center cell, so odd dimensions center exactly.
	cx := int(math.Round(float64(v.width-1)/2 + x*scaleX))
	cy := int(math.Round(float64(v.height-1)/2 - y*scaleY))

	if cx < 0 || cx >= v.width || cy < 0 || cy >= v.height {
		return 0, 0, false
	}
	return cx, cy, true
}

// Plot projects a world point and places a colored rune there. Points
// outside the viewport are dropped.
func (v Viewport) Plot(c *Canvas, x, y float64, r rune, col Color) bool {
	cx, cy, ok := v.ToCell(x, y)
	if !ok {
		return false
	}
	c.SetColored(cx, cy, r, col)
	return true
}
