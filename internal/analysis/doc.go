// Package analysis extracts orbital characteristics from simulated trails.
//
//   - [DominantPeriod]: strongest oscillation period of a sampled series
//   - [OrbitalPeriod]: period of a body around the reference body
//   - [Closure]: how far an orbit is from returning to its start
//
// # Orbital Period
//
//	period, err := analysis.OrbitalPeriod(earth, sun, dynamo.Day)
//	// period is ~3.15e7 s after two simulated years
package analysis
