package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/physics"
)

var _ = Describe("Advance", func() {
	p := dynamo.DefaultParams()

	It("updates velocity before position", func() {
		b := mustBody(dynamo.BodySpec{Mass: 2, Vel: r2.Vec{X: 1}})
		physics.Advance(b, r2.Vec{X: 4, Y: -2}, p)

		vx := 1 + 4.0/2*p.Dt
		vy := -2.0 / 2 * p.Dt
		Expect(b.Vel).To(Equal(r2.Vec{X: vx, Y: vy}))
		Expect(b.Pos).To(Equal(r2.Vec{X: vx * p.Dt, Y: vy * p.Dt}))
	})

	It("appends exactly the new position to the orbit", func() {
		b := mustBody(dynamo.BodySpec{Mass: 1, Vel: r2.Vec{Y: 10}})
		physics.Advance(b, r2.Vec{}, p)

		Expect(b.Orbit.Len()).To(Equal(1))
		last, _ := b.Orbit.Last()
		Expect(last).To(Equal(b.Pos))
	})
})

var _ = Describe("Integrate", func() {
	p := dynamo.DefaultParams()

	It("moves a lone body along its velocity", func() {
		solo := mustBody(dynamo.BodySpec{Mass: 1e24, Pos: r2.Vec{X: 5}, Vel: r2.Vec{X: 100, Y: -50}})
		bodies := []*dynamo.Body{solo}

		for i := 0; i < 10; i++ {
			Expect(physics.Integrate(solo, bodies, p)).To(Succeed())
		}

		Expect(solo.Vel).To(Equal(r2.Vec{X: 100, Y: -50}))
		Expect(solo.Pos.X).To(BeNumerically("~", 5+100*10*p.Dt, 1e-3))
		Expect(solo.Pos.Y).To(BeNumerically("~", -50*10*p.Dt, 1e-3))
	})

	It("closes the Earth's orbit after one simulated year", func() {
		sun := mustBody(dynamo.BodySpec{Name: "Sun", Mass: sunMass, Reference: true})
		earth := mustBody(dynamo.BodySpec{
			Name: "Earth",
			Mass: earthMass,
			Pos:  r2.Vec{X: 1.496e11},
			Vel:  r2.Vec{Y: 29783},
		})
		bodies := []*dynamo.Body{sun, earth}

		for tick := 0; tick < 365; tick++ {
			for _, b := range bodies {
				Expect(physics.Integrate(b, bodies, p)).To(Succeed())
			}
		}

		Expect(earth.DistanceToReference).To(BeNumerically("~", 1.496e11, 0.05*1.496e11))
		Expect(earth.Orbit.Len()).To(Equal(365))

		closing := r2.Norm(r2.Sub(earth.Pos, r2.Vec{X: 1.496e11}))
		Expect(closing / 1.496e11).To(BeNumerically("<", 0.05))
	})

	It("stops on a singular configuration without touching the body", func() {
		a := mustBody(dynamo.BodySpec{Name: "a", Mass: 1e20, Vel: r2.Vec{X: 1}})
		b := mustBody(dynamo.BodySpec{Name: "b", Mass: 1e20})

		err := physics.Integrate(a, []*dynamo.Body{a, b}, p)
		Expect(err).To(MatchError(dynamo.ErrSingularConfiguration))
		Expect(a.Pos).To(Equal(r2.Vec{}))
		Expect(a.Orbit.Len()).To(BeZero())
		Expect(math.IsNaN(a.Vel.X)).To(BeFalse())
	})
})
