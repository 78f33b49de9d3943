package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/viz"
)

const minRadius = 2.0

// OrbitsToSVG draws each body's orbit history as a polyline in its colour,
// the body as a circle of its display radius, and a name and distance label
// for every body that is not a reference. scale is display units per meter;
// zero means viz.DisplayScale.
func OrbitsToSVG(bodies []*dynamo.Body, width, height int, scale float64) string {
	proj := viz.NewProjector(float64(width), float64(height))
	if scale > 0 {
		proj.Scale = scale
	}

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for _, b := range bodies {
		if b.Orbit == nil || b.Orbit.Len() < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1" points="`, b.Color.Clamped().Hex()))
		for i := 0; i < b.Orbit.Len(); i++ {
			x, y := proj.Project(b.Orbit.At(i))
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString("\"/>\n")
	}

	for _, b := range bodies {
		x, y := proj.Project(b.Pos)
		r := max(b.Radius, minRadius)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, r, b.Color.Clamped().Hex()))
		if b.Reference {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ffffff" font-family="monospace" font-size="12">%s</text>
`, x, y-r-16, html.EscapeString(b.Name)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ffffff" font-family="monospace" font-size="12">%s</text>
`, x, y-r-2, viz.FormatDistance(b.DistanceToReference)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
