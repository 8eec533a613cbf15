package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/podratz/leonardo/geometry"
	"github.com/podratz/leonardo/internal/canvas"
	"github.com/podratz/leonardo/internal/config"
	"github.com/podratz/leonardo/internal/phyllotaxis"
	"github.com/podratz/leonardo/internal/storage"
	"github.com/podratz/leonardo/metals"
)

// viewMode selects what the explorer draws.
type viewMode int

const (
	viewSpiral viewMode = iota
	viewRects
)

// tickRate is the rotation frame rate. The spiral advances one sixtieth
// of the metallic angle per frame, completing a canonical step per second.
const tickRate = 30

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// ExplorerOptions configure a new explorer session.
type ExplorerOptions struct {
	Width   int
	Height  int
	Render  config.Render
	Variant metals.Variant
	Store   *storage.Store // May be nil; history is then not recorded
}

// Explorer is the Bubble Tea model for interactively exploring metallic
// spirals and rectangles.
type Explorer struct {
	metal    metals.Metal
	render   config.Render
	canvas   *canvas.Canvas
	store    *storage.Store
	keys     KeyMap
	help     help.Model
	phase    geometry.Angle
	mode     viewMode
	spinning bool
	width    int
	height   int
	quitting bool
	saved    bool
}

// NewExplorer creates an explorer model for the given options.
func NewExplorer(opts ExplorerOptions) Explorer {
	if !opts.Variant.Valid() {
		opts.Variant = metals.Golden
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	return Explorer{
		metal:    metals.Unit(opts.Variant),
		render:   opts.Render.Normalize(),
		canvas:   canvas.New(width, canvasHeight(height)),
		store:    opts.Store,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinning: true,
		width:    width,
		height:   height,
	}
}

// canvasHeight leaves room for the status line and the help footer.
func canvasHeight(total int) int {
	h := total - 3
	if h < 1 {
		h = 1
	}
	return h
}

// Init starts the rotation ticker.
func (m Explorer) Init() tea.Cmd {
	return tickCmd(tickRate)
}

// Update handles messages.
func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Resize(msg.Width, canvasHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.spinning {
			step := m.metal.Variant.Angle().Scale(1.0 / float64(tickRate))
			m.phase = m.phase.Add(step).Canonical()
		}
		return m, tickCmd(tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveHistory()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevVariant):
		m.metal = metals.New(prevVariant(m.metal.Variant), m.metal.Magnitude)

	case key.Matches(msg, m.keys.NextVariant):
		m.metal = metals.New(nextVariant(m.metal.Variant), m.metal.Magnitude)

	case key.Matches(msg, m.keys.Grow):
		m.metal = m.metal.Next()

	case key.Matches(msg, m.keys.Shrink):
		m.metal = metals.New(m.metal.Variant, m.metal.At(-1))

	case key.Matches(msg, m.keys.Spin):
		m.spinning = !m.spinning

	case key.Matches(msg, m.keys.ToggleView):
		if m.mode == viewSpiral {
			m.mode = viewRects
		} else {
			m.mode = viewSpiral
		}

	case key.Matches(msg, m.keys.Reset):
		m.metal = metals.Unit(m.metal.Variant)
		m.phase = geometry.Zero()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func nextVariant(v metals.Variant) metals.Variant {
	if v >= metals.Platinum {
		return metals.Golden
	}
	return v + 1
}

func prevVariant(v metals.Variant) metals.Variant {
	if v <= metals.Golden {
		return metals.Platinum
	}
	return v - 1
}

// saveHistory records the session in the render history, once.
func (m *Explorer) saveHistory() {
	if m.store == nil || m.saved {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveRender(storage.RenderEntry{
		Variant:   m.metal.Variant.Name(),
		Magnitude: m.metal.Magnitude,
		Kind:      "explore",
		Detail:    m.render.Spiral.Seeds,
	})
	m.saved = true
}

// View renders the explorer.
func (m Explorer) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	switch m.mode {
	case viewSpiral:
		layout := phyllotaxis.Place(m.metal, m.render.Spiral.Seeds, m.render.Spiral.Spacing, m.phase)
		phyllotaxis.Draw(m.canvas, layout, []rune(m.render.Spiral.Glyphs))
	case viewRects:
		phyllotaxis.DrawRectangles(m.canvas, m.metal, m.render.Rects.Depth)
	}

	status := fmt.Sprintf("%s  %s",
		titleStyle.Render(m.metal.Variant.String()),
		statusStyle.Render(fmt.Sprintf("magnitude %s", m.metal)),
	)
	detail := detailStyle.Render(fmt.Sprintf(
		"ratio %.10f  angle %s  phase %s",
		m.metal.Ratio(),
		m.metal.Variant.Angle(),
		m.phase,
	))

	return RenderCanvas(m.canvas) + "\n" +
		status + "  " + detail + "\n" +
		m.help.View(m.keys)
}
