package viz

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestDisplayScale(t *testing.T) {
	if got := dynamo.AU * DisplayScale; math.Abs(got-PixelsPerAU) > 1e-9 {
		t.Errorf("1 AU = %v display units, want %v", got, PixelsPerAU)
	}
}

func TestProjector(t *testing.T) {
	p := NewProjector(800, 600)

	tests := []struct {
		name  string
		pos   r2.Vec
		wantX float64
		wantY float64
	}{
		{"origin", r2.Vec{}, 400, 300},
		{"one AU right", r2.Vec{X: dynamo.AU}, 500, 300},
		{"one AU down", r2.Vec{Y: dynamo.AU}, 400, 400},
		{"half AU left", r2.Vec{X: -dynamo.AU / 2}, 350, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := p.Project(tt.pos)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Project(%v) = (%v, %v), want (%v, %v)", tt.pos, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProjectorZoom(t *testing.T) {
	p := NewProjector(100, 100).Zoom(2)
	x, _ := p.Project(r2.Vec{X: dynamo.AU})
	if math.Abs(x-250) > 1e-9 {
		t.Errorf("zoomed x = %v, want 250", x)
	}
}

func TestProjectorFit(t *testing.T) {
	far, err := dynamo.NewBody(dynamo.BodySpec{Name: "far", Mass: 1, Pos: r2.Vec{X: -30 * dynamo.AU}})
	if err != nil {
		t.Fatal(err)
	}
	p := NewProjector(200, 100).Fit([]*dynamo.Body{far})
	x, _ := p.Project(far.Pos)
	if x < 0 || x > 200 {
		t.Errorf("fitted body at x = %v, outside the screen", x)
	}

	still := NewProjector(200, 100)
	if got := still.Fit(nil); got != still {
		t.Errorf("Fit of no bodies changed the projector: %+v", got)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0.0km"},
		{1234, "1.2km"},
		{1250, "1.3km"},
		{dynamo.AU, "149600000.0km"},
	}
	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}
