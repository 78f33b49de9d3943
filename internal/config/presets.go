package config

import (
	"math"
	"sort"

	"github.com/san-kum/orbitsim/internal/dynamo"
)

const (
	sunMass     = 1.98891e30
	binaryMass  = 1e30
	binaryHalfD = 0.5 * dynamo.AU
)

var Presets = map[string]*Config{
	"solar": {
		Name: "solar", G: dynamo.G, Dt: dynamo.Day, Ticks: 4 * 365, Mode: DefaultMode, TrailCapacity: 2000,
		Bodies: []BodyConfig{
			{Name: "Sun", Mass: sunMass, Reference: true, Color: "#ffff00", Radius: 15},
			{Name: "Earth", Mass: 5.9722e24, Pos: [2]float64{1 * dynamo.AU, 0}, Vel: [2]float64{0, 29.783e3}, Color: "#1e90ff", Radius: 16},
			{Name: "Mars", Mass: 6.39e23, Pos: [2]float64{1.524 * dynamo.AU, 0}, Vel: [2]float64{0, 24.077e3}, Color: "#bc2732", Radius: 12},
			{Name: "Mercury", Mass: 3.30e23, Pos: [2]float64{0.387 * dynamo.AU, 0}, Vel: [2]float64{0, 47.4e3}, Color: "#808080", Radius: 9},
			{Name: "Venus", Mass: 4.865e24, Pos: [2]float64{0.723 * dynamo.AU, 0}, Vel: [2]float64{0, -35.02e3}, Color: "#ffa500", Radius: 14},
			{Name: "Jupiter", Mass: 1.89813e27, Pos: [2]float64{5.204 * dynamo.AU, 0}, Vel: [2]float64{0, 13.1e3}, Color: "#964b00", Radius: 20},
		},
	},
	"earth": {
		Name: "earth", G: dynamo.G, Dt: dynamo.Day, Ticks: 365, Mode: DefaultMode,
		Bodies: []BodyConfig{
			{Name: "Sun", Mass: sunMass, Reference: true, Color: "#ffff00", Radius: 15},
			{Name: "Earth", Mass: 5.9722e24, Pos: [2]float64{1.496e11, 0}, Vel: [2]float64{0, 29783}, Color: "#1e90ff", Radius: 16},
		},
	},
	"binary": {
		Name: "binary", G: dynamo.G, Dt: dynamo.Day / 4, Ticks: 4 * 365, Mode: DefaultMode, TrailCapacity: 2000,
		Bodies: []BodyConfig{
			{Name: "Alpha", Mass: binaryMass, Pos: [2]float64{-binaryHalfD, 0}, Vel: [2]float64{0, -binarySpeed}, Color: "#ffd27f", Radius: 12},
			{Name: "Beta", Mass: binaryMass, Pos: [2]float64{binaryHalfD, 0}, Vel: [2]float64{0, binarySpeed}, Color: "#9bb0ff", Radius: 12},
		},
	},
}

// binarySpeed puts two equal masses on a circular orbit around their barycentre.
var binarySpeed = math.Sqrt(dynamo.G * binaryMass / (4 * binaryHalfD))

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Bodies = make([]BodyConfig, len(p.Bodies))
	copy(cfg.Bodies, p.Bodies)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
