package dynamo

import "gonum.org/v1/gonum/spatial/r2"

// Trail records past positions, oldest first. A positive capacity turns it
// into a ring buffer that evicts the oldest point; Total keeps counting every
// append either way.
type Trail struct {
	points   []r2.Vec
	start    int
	capacity int
	total    int
}

func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	t := &Trail{capacity: capacity}
	if capacity > 0 {
		t.points = make([]r2.Vec, 0, capacity)
	}
	return t
}

func (t *Trail) Append(p r2.Vec) {
	t.total++
	if t.capacity == 0 || len(t.points) < t.capacity {
		t.points = append(t.points, p)
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % t.capacity
}

// Len is the number of retained points.
func (t *Trail) Len() int { return len(t.points) }

// Cap is the retention bound, 0 when unbounded.
func (t *Trail) Cap() int { return t.capacity }

// Total is the number of points ever appended.
func (t *Trail) Total() int { return t.total }

// At returns the i-th retained point, 0 being the oldest.
func (t *Trail) At(i int) r2.Vec {
	if i < 0 || i >= len(t.points) {
		panic("dynamo: trail index out of range")
	}
	if t.capacity == 0 {
		return t.points[i]
	}
	return t.points[(t.start+i)%len(t.points)]
}

func (t *Trail) Last() (r2.Vec, bool) {
	if len(t.points) == 0 {
		return r2.Vec{}, false
	}
	return t.At(len(t.points) - 1), true
}

// Points returns a copy of the retained points, oldest first.
func (t *Trail) Points() []r2.Vec {
	out := make([]r2.Vec, len(t.points))
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) Reset() {
	t.points = t.points[:0]
	t.start = 0
	t.total = 0
}
