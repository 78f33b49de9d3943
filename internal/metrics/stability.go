package metrics

import (
	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

// Bound is the fraction of ticks in which every body stayed within radius
// meters of the origin.
type Bound struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewBound(radius float64) *Bound {
	return &Bound{
		name:   "bound",
		radius: radius,
	}
}

func (b *Bound) Name() string {
	return b.name
}

func (b *Bound) Observe(bodies []*dynamo.Body, t float64) {
	b.samples++
	for _, body := range bodies {
		if r2.Norm(body.Pos) > b.radius {
			b.violations++
			break
		}
	}
}

func (b *Bound) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bound) Reset() {
	b.violations = 0
	b.samples = 0
}
