package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/podratz/leonardo/internal/canvas"
)

// colorStyles maps canvas colors to lipgloss styles.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:      lipgloss.NewStyle(),
	canvas.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	canvas.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	canvas.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	canvas.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	canvas.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	canvas.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	canvas.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	canvas.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	canvas.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderCanvas converts a canvas to a styled string for display. Adjacent
// cells with the same color are grouped to minimize ANSI escape
// sequences.
func RenderCanvas(c *canvas.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := c.GetCell(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
