// Package viz renders body collections in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: advances a [sim.Stepper] every frame and draws orbits
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - [Projector]: maps meters to screen space, [PixelsPerAU] by default
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	Tab   - Select the body whose distance is graphed
//	+/-   - Zoom in/out
//	F     - Fit all bodies on screen
//	T     - Cycle color themes
//	?     - Show help overlay
//
// A failed tick stops the simulation for good; the error stays on screen.
package viz
