package phyllotaxis

import (
	"github.com/podratz/leonardo/internal/canvas"
	"github.com/podratz/leonardo/metals"
)

// ringColors cycles outward from the center of the spiral.
var ringColors = []canvas.Color{
	canvas.ColorBrightYellow,
	canvas.ColorYellow,
	canvas.ColorOrange,
	canvas.ColorGreen,
	canvas.ColorCyan,
	canvas.ColorBlue,
	canvas.ColorMagenta,
	canvas.ColorGray,
}

// Draw plots the layout onto the canvas. Glyphs cycle per seed index so
// consecutive parastichy arms stay distinguishable; colors band by
// radius.
func Draw(c *canvas.Canvas, l Layout, glyphs []rune) {
	if len(glyphs) == 0 {
		glyphs = []rune{'•'}
	}

	view := canvas.Fit(c, l.Radius()+l.Spacing)
	outer := l.Radius()
	if outer <= 0 {
		outer = 1
	}

	for _, seed := range l.Seeds {
		band := int(float64(len(ringColors)) * seed.R / (outer * 1.0001))
		if band >= len(ringColors) {
			band = len(ringColors) - 1
		}
		glyph := glyphs[seed.Index%len(glyphs)]
		view.Plot(c, seed.X, seed.Y, glyph, ringColors[band])
	}
}

// DrawRectangles plots the first depth metallic rectangles of the metal,
// nested from a shared lower-left corner. Widths follow the metal's
// sequence, so each outline is one ratio step wider than the last.
func DrawRectangles(c *canvas.Canvas, m metals.Metal, depth int) {
	if depth <= 0 {
		return
	}

	// Scale the widest rectangle to the canvas, leaving a margin.
	widest := m.At(depth - 1)
	if widest == 0 {
		return
	}
	height := m.Magnitude
	scaleX := float64(c.Width()-2) / widest
	scaleY := float64(c.Height()-2) / height
	if scaleY < 0 {
		scaleY = -scaleY
	}
	if scaleX < 0 {
		scaleX = -scaleX
	}

	i := 0
	for rect := range m.Rectangles() {
		if i >= depth {
			break
		}
		w := int(rect.Width * scaleX)
		h := int(rect.Height * scaleY)
		if w < 0 {
			w = -w
		}
		if h < 0 {
			h = -h
		}
		col := ringColors[i%len(ringColors)]
		c.DrawBox(1, c.Height()-1-h, w, h, col)
		i++
	}
}
