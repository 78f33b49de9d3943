package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrSingularConfiguration indicates two distinct bodies share a position,
	// so their mutual force is undefined.
	ErrSingularConfiguration = errors.New("dynamo: singular configuration (coincident bodies)")

	// ErrInvalidMass indicates a body was constructed with a non-positive or
	// non-finite mass.
	ErrInvalidMass = errors.New("dynamo: mass must be positive and finite")

	// ErrSelfInteraction indicates a body was asked for its attraction to itself.
	ErrSelfInteraction = errors.New("dynamo: body cannot attract itself")

	// ErrInvalidState indicates a position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Tick    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("tick %d (t=%.0fs): %v", e.Tick, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
