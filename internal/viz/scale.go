package viz

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// PixelsPerAU is the display scale of the reference renderer.
	PixelsPerAU = 100

	// DisplayScale converts meters to display units.
	DisplayScale = PixelsPerAU / dynamo.AU
)

// Projector maps simulation meters to screen coordinates with the origin in
// the centre and y growing downwards.
type Projector struct {
	Scale  float64
	Width  float64
	Height float64
}

func NewProjector(width, height float64) Projector {
	return Projector{Scale: DisplayScale, Width: width, Height: height}
}

func (p Projector) Project(pos r2.Vec) (x, y float64) {
	return pos.X*p.Scale + p.Width/2, pos.Y*p.Scale + p.Height/2
}

func (p Projector) Zoom(factor float64) Projector {
	p.Scale *= factor
	return p
}

// Fit returns p rescaled so every body, plus a 10% margin, fits on screen.
func (p Projector) Fit(bodies []*dynamo.Body) Projector {
	extent := 0.0
	for _, b := range bodies {
		extent = math.Max(extent, math.Max(math.Abs(b.Pos.X), math.Abs(b.Pos.Y)))
	}
	if extent == 0 {
		return p
	}
	half := math.Min(p.Width, p.Height) / 2
	p.Scale = half / (extent * 1.1)
	return p
}

// FormatDistance renders meters as kilometres rounded to 0.1 km.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.1fkm", math.Round(meters/100)/10)
}
