package viz

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

func newBody(t *testing.T, spec dynamo.BodySpec) *dynamo.Body {
	t.Helper()
	b, err := dynamo.NewBody(spec)
	if err != nil {
		t.Fatalf("new body %s: %v", spec.Name, err)
	}
	return b
}

func sunEarth(t *testing.T) []*dynamo.Body {
	return []*dynamo.Body{
		newBody(t, dynamo.BodySpec{Name: "Sun", Mass: 1.98891e30, Reference: true, Radius: 30}),
		newBody(t, dynamo.BodySpec{Name: "Earth", Mass: 5.9722e24, Pos: r2.Vec{X: dynamo.AU}, Vel: r2.Vec{Y: 29783}, Radius: 16}),
	}
}

func newModel(t *testing.T, bodies []*dynamo.Body, opts Options) Model {
	t.Helper()
	s, err := sim.NewStepper(dynamo.DefaultParams(), sim.Synchronous)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s, bodies, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelSelectsFirstOrbitingBody(t *testing.T) {
	m := newModel(t, sunEarth(t), Options{})
	if m.Selected().Name != "Earth" {
		t.Errorf("selected %s, want Earth", m.Selected().Name)
	}
	m, _ = update(t, m, key("tab"))
	if m.Selected().Name != "Sun" {
		t.Errorf("after tab selected %s, want Sun", m.Selected().Name)
	}
}

func TestModelTickAdvances(t *testing.T) {
	bodies := sunEarth(t)
	m := newModel(t, bodies, Options{StepsPerFrame: 5})

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next frame")
	}
	if m.Ticks() != 5 {
		t.Errorf("ticks = %d, want 5", m.Ticks())
	}
	if got := bodies[1].Orbit.Len(); got != 5 {
		t.Errorf("orbit history = %d, want 5", got)
	}
	if bodies[1].DistanceToReference == 0 {
		t.Error("distance to reference not updated")
	}
	if !strings.Contains(m.View(), "Earth") {
		t.Error("view does not list Earth")
	}
}

func TestModelPause(t *testing.T) {
	m := newModel(t, sunEarth(t), Options{})
	m, _ = update(t, m, key("p"))
	if m.Running() {
		t.Fatal("still running after pause")
	}
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Ticks() != 0 {
		t.Errorf("paused model advanced %d ticks", m.Ticks())
	}
	m, _ = update(t, m, key("p"))
	if !m.Running() {
		t.Error("not resumed")
	}
}

func TestModelZoom(t *testing.T) {
	m := newModel(t, sunEarth(t), Options{})
	scale := m.Projector().Scale
	m, _ = update(t, m, key("+"))
	if m.Projector().Scale <= scale {
		t.Error("zoom in did not grow the scale")
	}
	m, _ = update(t, m, key("-"))
	m, _ = update(t, m, key("-"))
	if m.Projector().Scale >= scale {
		t.Error("zoom out did not shrink the scale")
	}
}

func TestModelStopsOnSingularity(t *testing.T) {
	bodies := []*dynamo.Body{
		newBody(t, dynamo.BodySpec{Name: "a", Mass: 1e20}),
		newBody(t, dynamo.BodySpec{Name: "b", Mass: 1e20}),
	}
	m := newModel(t, bodies, Options{StepsPerFrame: 3})

	m, _ = update(t, m, TickMsg(time.Now()))
	if m.Running() {
		t.Error("model still running after a singular tick")
	}
	if !errors.Is(m.Err(), dynamo.ErrSingularConfiguration) {
		t.Errorf("err = %v, want ErrSingularConfiguration", m.Err())
	}
	var simErr *dynamo.SimulationError
	if !errors.As(m.Err(), &simErr) || simErr.Tick != 0 {
		t.Errorf("err = %v, want SimulationError at tick 0", m.Err())
	}
	if m.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", m.Ticks())
	}

	m, _ = update(t, m, key(" "))
	if m.Running() {
		t.Error("pause toggle restarted a failed run")
	}
	if !strings.Contains(m.View(), "STOPPED") {
		t.Error("view does not show the stopped state")
	}
}

func TestModelStopsOnInvalidState(t *testing.T) {
	huge := newBody(t, dynamo.BodySpec{Name: "huge", Mass: 1, Vel: r2.Vec{X: math.MaxFloat64}})
	m := newModel(t, []*dynamo.Body{huge}, Options{StepsPerFrame: 3})

	m, _ = update(t, m, TickMsg(time.Now()))
	if !errors.Is(m.Err(), dynamo.ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", m.Err())
	}
	var simErr *dynamo.SimulationError
	if !errors.As(m.Err(), &simErr) {
		t.Fatalf("err = %T, want *dynamo.SimulationError", m.Err())
	}
	if simErr.Tick != 0 || simErr.Time != dynamo.Day {
		t.Errorf("failure at tick %d t=%v, want tick 0 t=%v", simErr.Tick, simErr.Time, dynamo.Day)
	}
	if m.Ticks() != 1 || m.Running() {
		t.Errorf("ticks = %d running = %v, want 1 and stopped", m.Ticks(), m.Running())
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, sunEarth(t), Options{})
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModelThemeCycle(t *testing.T) {
	defer SetTheme(CurrentTheme.Name)
	m := newModel(t, sunEarth(t), Options{})
	before := CurrentTheme.Name
	update(t, m, key("t"))
	if CurrentTheme.Name == before {
		t.Error("theme did not change")
	}
}

func TestDotRadius(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{0, 1},
		{8, 1},
		{16, 2},
		{30, 4},
		{100, 4},
	}
	for _, tt := range tests {
		if got := dotRadius(tt.radius); got != tt.want {
			t.Errorf("dotRadius(%v) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}
