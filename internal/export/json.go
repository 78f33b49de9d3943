package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/sim"
)

type TrailData struct {
	Name      string       `json:"name"`
	Mass      float64      `json:"mass"`
	Reference bool         `json:"reference,omitempty"`
	Color     string       `json:"color"`
	Distance  float64      `json:"distance_to_reference"`
	Appended  int          `json:"appended"`
	Points    [][2]float64 `json:"points"`
}

type ExportData struct {
	Scenario      string             `json:"scenario"`
	Mode          string             `json:"mode"`
	G             float64            `json:"g"`
	Dt            float64            `json:"dt"`
	Ticks         int                `json:"ticks"`
	SimulatedTime float64            `json:"simulated_time"`
	EnergyDrift   float64            `json:"energy_drift"`
	Metrics       map[string]float64 `json:"metrics"`
	Bodies        []TrailData        `json:"bodies"`
}

// NewExportData collects the retained orbit history of every body after a
// run. Points are in meters, oldest first.
func NewExportData(scenario string, stepper *sim.Stepper, result *sim.Result, bodies []*dynamo.Body) ExportData {
	data := ExportData{
		Scenario: scenario,
		Mode:     stepper.Mode().String(),
		G:        stepper.Params().G,
		Dt:       stepper.Params().Dt,
		Bodies:   make([]TrailData, len(bodies)),
	}
	if result != nil {
		data.Ticks = result.TicksTaken
		data.SimulatedTime = result.SimulatedTime
		data.EnergyDrift = result.EnergyDrift
		data.Metrics = result.Metrics
	}

	for i, b := range bodies {
		td := TrailData{
			Name:      b.Name,
			Mass:      b.Mass(),
			Reference: b.Reference,
			Color:     b.Color.Clamped().Hex(),
			Distance:  b.DistanceToReference,
		}
		if b.Orbit != nil {
			td.Appended = b.Orbit.Total()
			td.Points = make([][2]float64, b.Orbit.Len())
			for j := range td.Points {
				p := b.Orbit.At(j)
				td.Points[j] = [2]float64{p.X, p.Y}
			}
		}
		data.Bodies[i] = td
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSON writes data to path, or to stdout when path is "-".
func ExportJSON(path string, data ExportData) error {
	if path == "-" {
		return WriteJSON(os.Stdout, data)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}
