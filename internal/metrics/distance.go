package metrics

import (
	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// DistanceSeries samples one body's distance to the reference every tick.
// Value reports the latest sample.
type DistanceSeries struct {
	body    string
	samples []float64
}

func NewDistanceSeries(body string) *DistanceSeries {
	return &DistanceSeries{body: body}
}

func (d *DistanceSeries) Name() string { return "distance_" + d.body }

func (d *DistanceSeries) Observe(bodies []*dynamo.Body, t float64) {
	for _, b := range bodies {
		if b.Name == d.body {
			d.samples = append(d.samples, b.DistanceToReference)
			return
		}
	}
}

func (d *DistanceSeries) Value() float64 {
	if len(d.samples) == 0 {
		return 0
	}
	return d.samples[len(d.samples)-1]
}

// Values returns the recorded samples; the slice must not be modified.
func (d *DistanceSeries) Values() []float64 { return d.samples }

// Range returns the smallest and largest sample, i.e. perihelion and aphelion
// for a body orbiting the reference.
func (d *DistanceSeries) Range() (lo, hi float64) {
	if len(d.samples) == 0 {
		return 0, 0
	}
	return floats.Min(d.samples), floats.Max(d.samples)
}

func (d *DistanceSeries) Reset() { d.samples = d.samples[:0] }
