package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	trailDots       = 1000

	DefaultFrameRate     = 30
	DefaultStepsPerFrame = 1
)

type TickMsg time.Time

// Options configures the live view. Zero values take the defaults.
type Options struct {
	Title         string
	Width, Height int
	FrameRate     int
	StepsPerFrame int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = width
	}
	if o.Height <= 0 {
		o.Height = height
	}
	if o.FrameRate <= 0 {
		o.FrameRate = DefaultFrameRate
	}
	if o.StepsPerFrame <= 0 {
		o.StepsPerFrame = DefaultStepsPerFrame
	}
	if o.Title == "" {
		o.Title = "orbits"
	}
	return o
}

// Model drives a body collection from bubbletea ticks and renders it.
type Model struct {
	stepper   *sim.Stepper
	bodies    []*dynamo.Body
	opts      Options
	canvas    *Canvas
	proj      Projector
	styles    styles
	ticks     int
	running   bool
	selected  int
	distances []float64
	err       error
	showHelp  bool
}

func NewModel(stepper *sim.Stepper, bodies []*dynamo.Body, opts Options) Model {
	opts = opts.withDefaults()
	canvas := NewCanvas(opts.Width, opts.Height)
	proj := NewProjector(float64(canvas.Width*2), float64(canvas.Height*4)).Fit(bodies)

	selected := 0
	for i, b := range bodies {
		if !b.Reference {
			selected = i
			break
		}
	}

	return Model{
		stepper:   stepper,
		bodies:    bodies,
		opts:      opts,
		canvas:    canvas,
		proj:      proj,
		styles:    newStyles(CurrentTheme),
		running:   true,
		selected:  selected,
		distances: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Ticks() int             { return m.ticks }
func (m Model) Running() bool          { return m.running }
func (m Model) Err() error             { return m.err }
func (m Model) Projector() Projector   { return m.proj }
func (m Model) Bodies() []*dynamo.Body { return m.bodies }

func (m Model) Selected() *dynamo.Body {
	if len(m.bodies) == 0 {
		return nil
	}
	return m.bodies[m.selected]
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FrameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.frame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			if m.err == nil {
				m.running = !m.running
			}
		case "tab":
			m.selectNext()
		case "+", "=":
			m.proj = m.proj.Zoom(1.25)
		case "-", "_":
			m.proj = m.proj.Zoom(0.8)
		case "f":
			m.proj = m.proj.Fit(m.bodies)
		case "t":
			m.styles = newStyles(NextTheme())
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.frame()
	}
	return m, nil
}

func (m *Model) selectNext() {
	if len(m.bodies) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.bodies)
	m.distances = m.distances[:0]
}

// step advances StepsPerFrame ticks. Any failure stops the run for good.
func (m *Model) step() {
	dt := m.stepper.Params().Dt
	for i := 0; i < m.opts.StepsPerFrame; i++ {
		if err := m.stepper.Advance(m.bodies); err != nil {
			m.fail(&dynamo.SimulationError{Tick: m.ticks, Time: float64(m.ticks) * dt, Wrapped: err})
			return
		}
		tick := m.ticks
		m.ticks++
		// Same indexing as sim.Simulator.Run: the failing tick, the time after it.
		if b := sim.FirstInvalid(m.bodies); b != nil {
			m.fail(&dynamo.SimulationError{
				Tick:    tick,
				Time:    float64(m.ticks) * dt,
				Wrapped: fmt.Errorf("body %s: %w", b, dynamo.ErrInvalidState),
			})
			return
		}
	}

	if b := m.Selected(); b != nil {
		m.distances = append(m.distances, b.DistanceToReference/1000)
		if len(m.distances) > historyCapacity {
			m.distances = m.distances[1:]
		}
	}
}

func (m *Model) fail(err error) {
	m.err = err
	m.running = false
}

func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.opts.Title)) + "\n")
	status := "RUNNING"
	switch {
	case m.err != nil:
		status = "STOPPED"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	days := float64(m.ticks) * m.stepper.Params().Dt / dynamo.Day
	s.WriteString(m.styles.label.Render("Tick") + m.styles.value.Render(fmt.Sprintf("%d", m.ticks)) + "\n")
	s.WriteString(m.styles.label.Render("Days") + m.styles.value.Render(fmt.Sprintf("%.1f", days)) + "\n")
	s.WriteString(m.styles.label.Render("Mode") + m.styles.value.Render(m.stepper.Mode().String()) + "\n\n")

	for i, b := range m.bodies {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		line := marker + BodyStyle(b.Color).Render(fmt.Sprintf("%-10s", b.Name))
		if !b.Reference {
			line += " " + m.styles.value.Render(FormatDistance(b.DistanceToReference))
		}
		s.WriteString(line + "\n")
	}

	if len(m.distances) > 1 {
		chart := asciigraph.Plot(m.distances,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption(m.Selected().Name+" distance (km)"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + m.styles.err.Render(m.err.Error()) + "\n")
	}

	s.WriteString(m.styles.help.Render(Separator(21) + "\nSP:Pause TAB:Select Q:Quit\n+/-:Zoom F:Fit T:Theme ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.stats.Render(s.String()))
	if m.showHelp {
		return `
  Space/P  pause or resume
  Tab      select next body
  +/-      zoom in or out
  F        fit all bodies
  T        cycle themes
  Q        quit
` + "\n" + mainView
	}
	return mainView
}

// draw renders trails first so bodies stay on top.
func (m *Model) draw() {
	m.canvas.Clear()
	for _, b := range m.bodies {
		if b.Orbit == nil {
			continue
		}
		color := b.Color.Clamped().Hex()
		n := b.Orbit.Len()
		start := 0
		if n > trailDots {
			start = n - trailDots
		}
		for i := start + 1; i < n; i++ {
			x0, y0 := m.proj.Project(b.Orbit.At(i - 1))
			x1, y1 := m.proj.Project(b.Orbit.At(i))
			if !m.near(x0, y0) || !m.near(x1, y1) {
				continue
			}
			m.canvas.DrawLine(int(x0), int(y0), int(x1), int(y1), color)
		}
	}
	for _, b := range m.bodies {
		x, y := m.proj.Project(b.Pos)
		if !m.near(x, y) {
			continue
		}
		m.canvas.Disc(int(x), int(y), dotRadius(b.Radius), b.Color.Clamped().Hex())
	}
}

// near reports whether a point is within one screen of the canvas. Segments
// further out are skipped to keep line drawing bounded when zoomed in.
func (m *Model) near(x, y float64) bool {
	return x >= -m.proj.Width && x <= 2*m.proj.Width && y >= -m.proj.Height && y <= 2*m.proj.Height
}

// dotRadius maps a display radius to braille dots.
func dotRadius(r float64) int {
	d := int(math.Round(r / 8))
	return max(1, min(d, 4))
}
