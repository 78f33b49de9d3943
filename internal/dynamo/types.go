package dynamo

import (
	"fmt"
	"math"
)

const (
	// G is the gravitational constant in N·m²/kg².
	G = 6.67428e-11

	// Day is one simulated day in seconds, the default timestep.
	Day = 3600 * 24

	// AU is the mean Earth-Sun distance in meters.
	AU = 149.6e6 * 1000
)

// Params holds the shared simulation parameters handed to the engine and the
// stepper. It replaces process-wide constants so runs with different units can
// coexist.
type Params struct {
	G  float64
	Dt float64
}

func DefaultParams() Params {
	return Params{G: G, Dt: Day}
}

func (p Params) Validate() error {
	if !(p.G > 0) || math.IsInf(p.G, 0) {
		return fmt.Errorf("%w: g must be positive, got %g", ErrParameterBounds, p.G)
	}
	if !(p.Dt > 0) || math.IsInf(p.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrParameterBounds, p.Dt)
	}
	return nil
}

type Metric interface {
	Name() string
	Observe(bodies []*Body, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(tick int, bodies []*Body, t float64)
}
