package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

var ErrNoOrigin = errors.New("analysis: trail starts at the origin")

// OrbitalPeriod estimates how long body takes to circle reference from the
// x offset between their trails. Both trails must have been appended on the
// same ticks; the most recent common points are used.
func OrbitalPeriod(body, reference *dynamo.Body, dt float64) (float64, error) {
	n := min(body.Orbit.Len(), reference.Orbit.Len())
	if n < 4 {
		return 0, fmt.Errorf("%w: %s has %d common points", ErrTooShort, body, n)
	}

	offB := body.Orbit.Len() - n
	offR := reference.Orbit.Len() - n
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = body.Orbit.At(offB+i).X - reference.Orbit.At(offR+i).X
	}

	period, err := DominantPeriod(xs, dt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", body, err)
	}
	return period, nil
}

// Closure is the gap between the first and last retained trail points
// relative to the first point's distance from the origin.
func Closure(t *dynamo.Trail) (float64, error) {
	if t.Len() < 2 {
		return 0, ErrTooShort
	}
	first := t.At(0)
	last, _ := t.Last()

	r := r2.Norm(first)
	if r == 0 {
		return 0, ErrNoOrigin
	}
	return r2.Norm(r2.Sub(last, first)) / r, nil
}
