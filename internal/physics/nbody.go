package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

// Attraction returns the gravitational force self experiences due to other.
// When other is the reference body, self's distance to the reference is
// refreshed. other is never modified.
func Attraction(self, other *dynamo.Body, p dynamo.Params) (r2.Vec, error) {
	if self == other {
		return r2.Vec{}, fmt.Errorf("%w: %s", dynamo.ErrSelfInteraction, self)
	}

	dx := other.Pos.X - self.Pos.X
	dy := other.Pos.Y - self.Pos.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	if other.Reference {
		self.DistanceToReference = distance
	}

	// The square underflows long before distance reaches zero.
	force := p.G * self.Mass() * other.Mass() / (distance * distance)
	if distance == 0 || math.IsInf(force, 0) || math.IsNaN(force) {
		return r2.Vec{}, fmt.Errorf("%w: %s and %s at (%g, %g)",
			dynamo.ErrSingularConfiguration, self, other, self.Pos.X, self.Pos.Y)
	}

	theta := math.Atan2(dy, dx)
	return r2.Vec{X: math.Cos(theta) * force, Y: math.Sin(theta) * force}, nil
}

// NetForce sums the attraction of every body in bodies except self. Bodies are
// compared by identity, so a distinct body with equal fields still counts.
func NetForce(self *dynamo.Body, bodies []*dynamo.Body, p dynamo.Params) (r2.Vec, error) {
	var total r2.Vec
	for _, other := range bodies {
		if other == self {
			continue
		}
		f, err := Attraction(self, other, p)
		if err != nil {
			return r2.Vec{}, err
		}
		total = r2.Add(total, f)
	}
	return total, nil
}

// Energy returns kinetic plus potential energy. Coincident pairs contribute no
// potential energy.
func Energy(bodies []*dynamo.Body, g float64) float64 {
	ke := 0.0
	pe := 0.0

	for i, a := range bodies {
		ke += 0.5 * a.Mass() * r2.Norm2(a.Vel)

		for _, b := range bodies[i+1:] {
			r := r2.Norm(r2.Sub(b.Pos, a.Pos))
			if r == 0 {
				continue
			}
			pe -= g * a.Mass() * b.Mass() / r
		}
	}

	return ke + pe
}

func Momentum(bodies []*dynamo.Body) r2.Vec {
	var p r2.Vec
	for _, b := range bodies {
		p = r2.Add(p, r2.Scale(b.Mass(), b.Vel))
	}
	return p
}

func AngularMomentum(bodies []*dynamo.Body) float64 {
	L := 0.0
	for _, b := range bodies {
		L += b.Mass() * r2.Cross(b.Pos, b.Vel)
	}
	return L
}
