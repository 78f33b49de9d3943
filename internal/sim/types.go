package sim

import (
	"fmt"
	"strings"
)

// Mode selects how a tick couples the bodies of a collection.
type Mode int

const (
	// Synchronous computes every net force from the start-of-tick positions
	// before any body moves.
	Synchronous Mode = iota

	// Sequential integrates body by body over the live collection, so later
	// bodies feel the already-updated positions of earlier ones.
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Synchronous:
		return "synchronous"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "synchronous", "sync":
		return Synchronous, nil
	case "sequential", "seq", "gauss-seidel":
		return Sequential, nil
	default:
		return 0, fmt.Errorf("unknown step mode: %s", s)
	}
}

type Config struct {
	Ticks         int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Ticks:         365,
		ValidateState: true,
	}
}

type Result struct {
	TicksTaken    int
	SimulatedTime float64
	Metrics       map[string]float64
	EnergyDrift   float64
}
