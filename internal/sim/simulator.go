package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/physics"
)

type Simulator struct {
	stepper   *Stepper
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(stepper *Stepper) *Simulator {
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Stepper() *Stepper { return s.stepper }

// Run advances bodies for cfg.Ticks ticks. On error the partial result is
// returned together with a *dynamo.SimulationError.
func (s *Simulator) Run(ctx context.Context, bodies []*dynamo.Body, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	dt := s.stepper.Params().Dt
	g := s.stepper.Params().G
	initialEnergy := physics.Energy(bodies, g)

	var runErr error
	t := 0.0
	for i := 0; i < cfg.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		if err := s.stepper.Advance(bodies); err != nil {
			runErr = &dynamo.SimulationError{Tick: i, Time: t, Wrapped: err}
			break
		}

		t += dt
		result.TicksTaken++

		if cfg.ValidateState {
			if b := FirstInvalid(bodies); b != nil {
				runErr = &dynamo.SimulationError{
					Tick:    i,
					Time:    t,
					Wrapped: fmt.Errorf("body %s: %w", b, dynamo.ErrInvalidState),
				}
				break
			}
		}

		for _, m := range s.metrics {
			m.Observe(bodies, t)
		}
		for _, obs := range s.observers {
			obs.OnTick(i, bodies, t)
		}
	}

	result.SimulatedTime = t

	finalEnergy := physics.Energy(bodies, g)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", cfg.Ticks)
	}
	return nil
}

// RunWithCallback advances bodies until cfg.Ticks is reached or callback
// returns false. A zero cfg.Ticks runs until the callback stops it.
func (s *Simulator) RunWithCallback(ctx context.Context, bodies []*dynamo.Body, cfg Config, callback func(tick int, bodies []*dynamo.Body) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	dt := s.stepper.Params().Dt
	t := 0.0
	for i := 0; cfg.Ticks == 0 || i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(i, bodies) {
			return nil
		}

		if err := s.stepper.Advance(bodies); err != nil {
			return &dynamo.SimulationError{Tick: i, Time: t, Wrapped: err}
		}
		t += dt

		if cfg.ValidateState {
			if b := FirstInvalid(bodies); b != nil {
				return &dynamo.SimulationError{
					Tick:    i,
					Time:    t,
					Wrapped: fmt.Errorf("body %s: %w", b, dynamo.ErrInvalidState),
				}
			}
		}
	}

	return nil
}

// FirstInvalid returns the first body with a non-finite position or velocity,
// or nil when every body is finite.
func FirstInvalid(bodies []*dynamo.Body) *dynamo.Body {
	for _, b := range bodies {
		if !b.IsValid() {
			return b
		}
	}
	return nil
}
