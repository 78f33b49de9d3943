// Package physics implements the Newtonian gravity engine.
//
// All functions are stateless and operate on [dynamo.Body] values in place:
//
//   - [Attraction]: force one body feels from another
//   - [NetForce]: sum of attractions over a collection
//   - [Advance]: semi-implicit (symplectic) Euler step under a given force
//   - [Integrate]: NetForce followed by Advance
//   - [Energy], [Momentum], [AngularMomentum]: conserved quantities
//
// Force computation is O(n²) per tick and meant for a handful of bodies.
//
// # Errors
//
// Coincident bodies yield [dynamo.ErrSingularConfiguration] instead of an
// infinite force:
//
//	if _, err := physics.Attraction(a, b, p); errors.Is(err, dynamo.ErrSingularConfiguration) {
//	    // abort the tick
//	}
package physics
