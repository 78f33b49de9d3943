package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/dynamo"
	"github.com/san-kum/orbitsim/internal/physics"
)

const (
	sunMass   = 1.98891e30
	earthMass = 5.9722e24
)

func mustBody(spec dynamo.BodySpec) *dynamo.Body {
	b, err := dynamo.NewBody(spec)
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("Attraction", func() {
	var (
		p     dynamo.Params
		sun   *dynamo.Body
		earth *dynamo.Body
	)

	BeforeEach(func() {
		p = dynamo.DefaultParams()
		sun = mustBody(dynamo.BodySpec{Name: "Sun", Mass: sunMass, Reference: true})
		earth = mustBody(dynamo.BodySpec{Name: "Earth", Mass: earthMass, Pos: r2.Vec{X: dynamo.AU}})
	})

	It("follows the inverse square law along the separation", func() {
		f, err := physics.Attraction(earth, sun, p)
		Expect(err).NotTo(HaveOccurred())

		want := dynamo.G * sunMass * earthMass / (dynamo.AU * dynamo.AU)
		Expect(f.X).To(BeNumerically("~", -want, want*1e-12))
		Expect(f.Y).To(BeNumerically("~", 0, want*1e-12))
	})

	It("obeys Newton's third law for both orderings", func() {
		a := mustBody(dynamo.BodySpec{Name: "a", Mass: 3e24, Pos: r2.Vec{X: -2e10, Y: 7e10}})
		b := mustBody(dynamo.BodySpec{Name: "b", Mass: 8e26, Pos: r2.Vec{X: 5e11, Y: -1e11}})

		fab, err := physics.Attraction(a, b, p)
		Expect(err).NotTo(HaveOccurred())
		fba, err := physics.Attraction(b, a, p)
		Expect(err).NotTo(HaveOccurred())

		mag := r2.Norm(fab)
		Expect(r2.Norm(fba)).To(BeNumerically("~", mag, mag*1e-12))
		Expect(fab.X + fba.X).To(BeNumerically("~", 0, mag*1e-12))
		Expect(fab.Y + fba.Y).To(BeNumerically("~", 0, mag*1e-12))
	})

	It("records the distance to the reference body only", func() {
		_, err := physics.Attraction(earth, sun, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(earth.DistanceToReference).To(Equal(dynamo.AU))

		sun.DistanceToReference = -1
		_, err = physics.Attraction(sun, earth, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(sun.DistanceToReference).To(Equal(-1.0))
	})

	It("leaves the other body untouched", func() {
		before := *sun
		_, err := physics.Attraction(earth, sun, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(sun.Pos).To(Equal(before.Pos))
		Expect(sun.Vel).To(Equal(before.Vel))
		Expect(sun.DistanceToReference).To(Equal(before.DistanceToReference))
	})

	It("rejects a body attracting itself", func() {
		_, err := physics.Attraction(earth, earth, p)
		Expect(err).To(MatchError(dynamo.ErrSelfInteraction))
	})

	It("reports coincident bodies as a singular configuration", func() {
		twin := mustBody(dynamo.BodySpec{Name: "twin", Mass: earthMass, Pos: earth.Pos})

		f, err := physics.Attraction(earth, twin, p)
		Expect(err).To(MatchError(dynamo.ErrSingularConfiguration))
		Expect(math.IsNaN(f.X) || math.IsInf(f.X, 0)).To(BeFalse())
	})

	It("reports bodies too close for a finite force as a singular configuration", func() {
		a := mustBody(dynamo.BodySpec{Name: "a", Mass: 1e30})
		b := mustBody(dynamo.BodySpec{Name: "b", Mass: 1e30, Pos: r2.Vec{X: 1e-160}})

		f, err := physics.Attraction(a, b, p)
		Expect(err).To(MatchError(dynamo.ErrSingularConfiguration))
		Expect(f).To(Equal(r2.Vec{}))
	})
})

var _ = Describe("NetForce", func() {
	p := dynamo.DefaultParams()

	It("is zero for a lone body", func() {
		solo := mustBody(dynamo.BodySpec{Name: "solo", Mass: 1e20, Pos: r2.Vec{X: 1, Y: 2}})
		f, err := physics.NetForce(solo, []*dynamo.Body{solo}, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(r2.Vec{}))
	})

	It("cancels for a body midway between equal masses", func() {
		mid := mustBody(dynamo.BodySpec{Name: "mid", Mass: 1e20})
		left := mustBody(dynamo.BodySpec{Name: "left", Mass: 1e25, Pos: r2.Vec{X: -1e9}})
		right := mustBody(dynamo.BodySpec{Name: "right", Mass: 1e25, Pos: r2.Vec{X: 1e9}})

		f, err := physics.NetForce(mid, []*dynamo.Body{left, mid, right}, p)
		Expect(err).NotTo(HaveOccurred())

		single, _ := physics.Attraction(mid, right, p)
		Expect(f.X).To(BeNumerically("~", 0, single.X*1e-12))
	})

	It("counts a distinct body with equal fields", func() {
		a := mustBody(dynamo.BodySpec{Name: "a", Mass: 1e20})
		b := mustBody(dynamo.BodySpec{Name: "a", Mass: 1e20})

		_, err := physics.NetForce(a, []*dynamo.Body{a, b}, p)
		Expect(err).To(MatchError(dynamo.ErrSingularConfiguration))
	})
})

var _ = Describe("conserved quantities", func() {
	It("sums momentum and energy over a pair", func() {
		a := mustBody(dynamo.BodySpec{Mass: 2, Vel: r2.Vec{X: 3}})
		b := mustBody(dynamo.BodySpec{Mass: 1, Pos: r2.Vec{X: 4}, Vel: r2.Vec{Y: -2}})
		bodies := []*dynamo.Body{a, b}

		Expect(physics.Momentum(bodies)).To(Equal(r2.Vec{X: 6, Y: -2}))
		Expect(physics.AngularMomentum(bodies)).To(BeNumerically("~", -8, 1e-12))

		ke := 0.5*2*9 + 0.5*1*4
		pe := -1.0 * 2 * 1 / 4
		Expect(physics.Energy(bodies, 1)).To(BeNumerically("~", ke+pe, 1e-12))
	})
})
