// Package dynamo provides the shared data model for gravitational simulation.
//
// The package defines the types every other package operates on:
//
//   - [Body]: one point mass with position, velocity and orbit history
//   - [Trail]: bounded or unbounded record of past positions
//   - [Params]: gravitational constant and fixed timestep
//   - [Metric], [Observer]: per-tick hooks used by the simulator
//
// # Example
//
//	sun, _ := dynamo.NewBody(dynamo.BodySpec{Name: "Sun", Mass: 1.98891e30, Reference: true})
//	earth, _ := dynamo.NewBody(dynamo.BodySpec{
//	    Name: "Earth",
//	    Mass: 5.9722e24,
//	    Pos:  r2.Vec{X: dynamo.AU},
//	    Vel:  r2.Vec{Y: 29783},
//	})
//	stepper, _ := sim.NewStepper(dynamo.DefaultParams(), sim.Synchronous)
//	err := stepper.Advance([]*dynamo.Body{sun, earth})
//
// # Thread Safety
//
// Bodies carry no locks. A collection must only be advanced by one goroutine
// at a time.
package dynamo
