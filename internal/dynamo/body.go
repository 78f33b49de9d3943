package dynamo

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// BodySpec describes a body before construction. Velocity, the reference flag
// and the display attributes are optional.
type BodySpec struct {
	Name      string
	Mass      float64
	Pos       r2.Vec
	Vel       r2.Vec
	Reference bool

	// DistanceToReference seeds the derived distance. It only changes once
	// a reference body is seen during force computation.
	DistanceToReference float64

	// TrailCapacity bounds the orbit history; zero keeps every position.
	TrailCapacity int

	Color  colorful.Color
	Radius float64
}

// Body is a point mass. The engine mutates Pos, Vel, DistanceToReference and
// Orbit in place; Name, Color and Radius are carried for renderers only.
type Body struct {
	Name      string
	Pos       r2.Vec
	Vel       r2.Vec
	Reference bool

	DistanceToReference float64
	Orbit               *Trail

	Color  colorful.Color
	Radius float64

	mass float64
}

// NewBody validates spec and returns a body with an empty orbit history.
func NewBody(spec BodySpec) (*Body, error) {
	if !(spec.Mass > 0) || math.IsInf(spec.Mass, 0) {
		return nil, fmt.Errorf("%w: body %q has mass %g", ErrInvalidMass, spec.Name, spec.Mass)
	}
	if !finite(spec.Pos) || !finite(spec.Vel) {
		return nil, fmt.Errorf("%w: body %q", ErrInvalidState, spec.Name)
	}
	return &Body{
		Name:                spec.Name,
		Pos:                 spec.Pos,
		Vel:                 spec.Vel,
		Reference:           spec.Reference,
		DistanceToReference: spec.DistanceToReference,
		Orbit:               NewTrail(spec.TrailCapacity),
		Color:               spec.Color,
		Radius:              spec.Radius,
		mass:                spec.Mass,
	}, nil
}

func (b *Body) Mass() float64 { return b.mass }

// IsValid reports whether position and velocity are finite.
func (b *Body) IsValid() bool {
	return finite(b.Pos) && finite(b.Vel)
}

func (b *Body) String() string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("body@(%g, %g)", b.Pos.X, b.Pos.Y)
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
