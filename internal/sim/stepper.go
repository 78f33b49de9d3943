package sim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/physics"
)

// Stepper advances a caller-owned collection of bodies by one tick at a time.
// It keeps no per-collection state between calls.
type Stepper struct {
	params dynamo.Params
	mode   Mode
	forces *ForcePool
}

func NewStepper(p dynamo.Params, mode Mode) (*Stepper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if mode != Synchronous && mode != Sequential {
		return nil, fmt.Errorf("unknown step mode: %v", mode)
	}
	return &Stepper{params: p, mode: mode, forces: NewForcePool()}, nil
}

func (s *Stepper) Params() dynamo.Params { return s.params }
func (s *Stepper) Mode() Mode            { return s.mode }

// Advance moves every body in bodies forward by one timestep. The first
// domain error aborts the rest of the tick.
func (s *Stepper) Advance(bodies []*dynamo.Body) error {
	if s.mode == Sequential {
		return s.advanceSequential(bodies)
	}
	return s.advanceSynchronous(bodies)
}

func (s *Stepper) advanceSequential(bodies []*dynamo.Body) error {
	for _, b := range bodies {
		if err := physics.Integrate(b, bodies, s.params); err != nil {
			return fmt.Errorf("body %s: %w", b, err)
		}
	}
	return nil
}

func (s *Stepper) advanceSynchronous(bodies []*dynamo.Body) error {
	buf := s.forces.Get(len(bodies))
	defer s.forces.Put(buf)
	forces := *buf

	for i, b := range bodies {
		f, err := physics.NetForce(b, bodies, s.params)
		if err != nil {
			return fmt.Errorf("body %s: %w", b, err)
		}
		forces[i] = f
	}

	for i, b := range bodies {
		physics.Advance(b, forces[i], s.params)
	}
	return nil
}
