package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTicks         = 365
	DefaultMode          = "synchronous"
	DefaultTrailCapacity = 0
	DefaultColor         = "#c8c8ff"
	DefaultRadius        = 8.0
)

var ErrInvalidConfig = errors.New("config: invalid scenario")

type Config struct {
	Name          string       `yaml:"name"`
	G             float64      `yaml:"g"`
	Dt            float64      `yaml:"dt"`
	Ticks         int          `yaml:"ticks"`
	Mode          string       `yaml:"mode"`
	TrailCapacity int          `yaml:"trail_capacity"`
	AutoOrbit     bool         `yaml:"auto_orbit"`
	Bodies        []BodyConfig `yaml:"bodies"`
}

// BodyConfig describes one body in meters, m/s and kg.
type BodyConfig struct {
	Name      string     `yaml:"name"`
	Mass      float64    `yaml:"mass"`
	Pos       [2]float64 `yaml:"pos"`
	Vel       [2]float64 `yaml:"vel"`
	Reference bool       `yaml:"reference,omitempty"`
	Color     string     `yaml:"color,omitempty"`
	Radius    float64    `yaml:"radius,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:          "custom",
		G:             dynamo.G,
		Dt:            dynamo.Day,
		Ticks:         DefaultTicks,
		Mode:          DefaultMode,
		TrailCapacity: DefaultTrailCapacity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{G: c.G, Dt: c.Dt}
}

// Validate checks the scenario as a whole. Mass is checked again by
// dynamo.NewBody.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := sim.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("%w: ticks must be non-negative, got %d", ErrInvalidConfig, c.Ticks)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(c.Bodies))
	refs := 0
	for i, b := range c.Bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalidConfig, i)
		}
		if names[b.Name] {
			return fmt.Errorf("%w: duplicate body name %q", ErrInvalidConfig, b.Name)
		}
		names[b.Name] = true
		if b.Reference {
			refs++
		}
	}
	if refs > 1 {
		return fmt.Errorf("%w: %d reference bodies, at most one allowed", ErrInvalidConfig, refs)
	}
	return nil
}

// Build validates the scenario and constructs its bodies in file order.
func (c *Config) Build() ([]*dynamo.Body, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	specs := make([]BodyConfig, len(c.Bodies))
	copy(specs, c.Bodies)
	if c.AutoOrbit {
		SetOrbitalVelocities(specs, c.G)
	}

	bodies := make([]*dynamo.Body, 0, len(specs))
	for _, b := range specs {
		radius := b.Radius
		if radius <= 0 {
			radius = DefaultRadius
		}
		body, err := dynamo.NewBody(dynamo.BodySpec{
			Name:          b.Name,
			Mass:          b.Mass,
			Pos:           r2.Vec{X: b.Pos[0], Y: b.Pos[1]},
			Vel:           r2.Vec{X: b.Vel[0], Y: b.Vel[1]},
			Reference:     b.Reference,
			TrailCapacity: c.TrailCapacity,
			Color:         ParseColor(b.Color),
			Radius:        radius,
		})
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

// SetOrbitalVelocities gives every body at rest the circular orbit speed
// around the reference body, or around the first body when none is marked.
func SetOrbitalVelocities(bodies []BodyConfig, g float64) {
	if len(bodies) == 0 {
		return
	}
	central := 0
	for i, b := range bodies {
		if b.Reference {
			central = i
			break
		}
	}

	c := bodies[central]
	for i := range bodies {
		if i == central || bodies[i].Vel != [2]float64{} {
			continue
		}

		dx := bodies[i].Pos[0] - c.Pos[0]
		dy := bodies[i].Pos[1] - c.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(g * c.Mass / r)
		bodies[i].Vel[0] = -dy/r*v + c.Vel[0]
		bodies[i].Vel[1] = dx/r*v + c.Vel[1]
	}
}

// ParseColor reads a #rrggbb colour, falling back to DefaultColor.
func ParseColor(hex string) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	c, _ := colorful.Hex(DefaultColor)
	return c
}
