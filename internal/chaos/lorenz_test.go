package chaos_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chaoscope/internal/chaos"
)

var _ = Describe("Trajectory", func() {
	var prm chaos.Params

	BeforeEach(func() {
		prm = chaos.DefaultParams()
	})

	It("emits exactly NumPoints states", func() {
		for _, n := range []int{0, 1, 17, 2000} {
			prm.NumPoints = n
			Expect(chaos.Trajectory(chaos.Point{X: 1, Y: 1, Z: 1}, prm)).To(HaveLen(n))
		}
	})

	It("returns an empty sequence for zero or negative counts", func() {
		start := chaos.Point{X: 1, Y: 1, Z: 1}
		for _, n := range []int{0, -1, -100} {
			prm.NumPoints = n
			Expect(chaos.Trajectory(start, prm)).To(BeEmpty())

			pts, d := chaos.TrajectoryWithDerivative(start, prm)
			Expect(pts).To(BeEmpty())
			Expect(d).To(Equal(chaos.Point{}))

			pts, derivs := chaos.TrajectoryDerivatives(start, prm)
			Expect(pts).To(BeEmpty())
			Expect(derivs).To(BeEmpty())
		}
	})

	It("computes a single Euler step exactly", func() {
		prm.NumPoints = 1
		pts := chaos.Trajectory(chaos.Point{X: 1, Y: 1, Z: 1}, prm)
		Expect(pts).To(HaveLen(1))

		// dx = 10*(1-1) = 0, dy = 1*(28-1)-1 = 26, dz = 1*1 - (8/3)*1
		Expect(pts[0].X).To(Equal(1.0))
		Expect(pts[0].Y).To(Equal(1.0 + 26.0*0.01))
		Expect(pts[0].Z).To(Equal(1.0 + (1.0-8.0/3.0)*0.01))
	})

	It("is deterministic down to the bit", func() {
		start := chaos.Point{X: 3.7, Y: -1.2, Z: 19.0}
		a := chaos.Trajectory(start, prm)
		b := chaos.Trajectory(start, prm)
		Expect(a).To(Equal(b))
	})

	It("does not mutate or emit the starting point", func() {
		start := chaos.Point{X: 1, Y: 1, Z: 1}
		pts := chaos.Trajectory(start, prm)
		Expect(pts[0]).NotTo(Equal(start))
		Expect(start).To(Equal(chaos.Point{X: 1, Y: 1, Z: 1}))
	})

	It("amplifies a small initial offset (butterfly effect)", func() {
		a := chaos.Trajectory(chaos.Point{X: 10, Y: 10, Z: 10}, prm)
		b := chaos.Trajectory(chaos.Point{X: 10.01, Y: 10, Z: 10}, prm)

		first := a[0].Dist(b[0])
		last := a[len(a)-1].Dist(b[len(b)-1])
		Expect(last).To(BeNumerically(">", first*10))
	})
})

var _ = Describe("TrajectoryWithDerivative", func() {
	It("matches Trajectory and reports the final derivative", func() {
		prm := chaos.DefaultParams()
		prm.NumPoints = 500
		start := chaos.Point{X: 1, Y: 1, Z: 1}

		pts, d := chaos.TrajectoryWithDerivative(start, prm)
		Expect(pts).To(Equal(chaos.Trajectory(start, prm)))

		// The last emitted point is the pre-step state plus d*dt.
		prev := pts[len(pts)-2]
		Expect(chaos.Derive(prev, prm)).To(Equal(d))
		Expect(prev.Add(d.Scale(prm.Dt))).To(Equal(pts[len(pts)-1]))
	})
})

var _ = Describe("TrajectoryDerivatives", func() {
	It("aligns each derivative with the state it was evaluated at", func() {
		prm := chaos.DefaultParams()
		prm.NumPoints = 100
		start := chaos.Point{X: 2, Y: 1, Z: 1}

		pts, derivs := chaos.TrajectoryDerivatives(start, prm)
		Expect(derivs).To(HaveLen(len(pts)))

		Expect(derivs[0]).To(Equal(chaos.Derive(start, prm)))
		for i := 1; i < len(pts); i++ {
			Expect(derivs[i]).To(Equal(chaos.Derive(pts[i-1], prm)))
		}
	})
})
