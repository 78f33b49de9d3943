package physics

import (
	"github.com/san-kum/orbitsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r2"
)

// Advance applies one semi-implicit Euler step to self under force: velocity
// first, then position from the new velocity, then the new position is
// recorded in the orbit history.
func Advance(self *dynamo.Body, force r2.Vec, p dynamo.Params) {
	m := self.Mass()
	self.Vel.X += force.X / m * p.Dt
	self.Vel.Y += force.Y / m * p.Dt

	self.Pos.X += self.Vel.X * p.Dt
	self.Pos.Y += self.Vel.Y * p.Dt

	self.Orbit.Append(self.Pos)
}

// Integrate advances self by one timestep against the current state of
// bodies. Called body by body over one shared collection, later bodies see
// the already-moved positions of earlier ones.
func Integrate(self *dynamo.Body, bodies []*dynamo.Body, p dynamo.Params) error {
	force, err := NetForce(self, bodies, p)
	if err != nil {
		return err
	}
	Advance(self, force, p)
	return nil
}
