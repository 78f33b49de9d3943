package sim

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// ForcePool recycles the per-tick force snapshots of synchronous stepping.
type ForcePool struct {
	pool sync.Pool
}

func NewForcePool() *ForcePool {
	return &ForcePool{
		pool: sync.Pool{
			New: func() interface{} {
				s := make([]r2.Vec, 0, 16)
				return &s
			},
		},
	}
}

// Get returns a zeroed slice of length n.
func (p *ForcePool) Get(n int) *[]r2.Vec {
	s := p.pool.Get().(*[]r2.Vec)
	if cap(*s) < n {
		*s = make([]r2.Vec, n)
	} else {
		*s = (*s)[:n]
		for i := range *s {
			(*s)[i] = r2.Vec{}
		}
	}
	return s
}

func (p *ForcePool) Put(s *[]r2.Vec) {
	*s = (*s)[:0]
	p.pool.Put(s)
}
