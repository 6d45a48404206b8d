// Package motion provides the parametric curves of the complex-plane scene:
// an epicycle z(t) = e^it + e^3it/2, a tightening spiral, and a ring of
// satellite circles that rotate as a group.
package motion

import (
	"math"
	"math/cmplx"
)

const Tau = 2 * math.Pi

// Point2 is a point in the plane.
type Point2 struct {
	X, Y float64
}

// Curve maps a parameter to a plane point.
type Curve func(t float64) Point2

// Epicycle evaluates z(t) = e^{it} + (1/2)e^{3it} on the complex plane.
func Epicycle(t float64) Point2 {
	z := cmplx.Exp(complex(0, t)) + 0.5*cmplx.Exp(complex(0, 3*t))
	return Point2{real(z), imag(z)}
}

// Spiral evaluates the 0.25-scaled spiral r(t) = t at angle 3t.
func Spiral(t float64) Point2 {
	return Point2{0.25 * t * math.Cos(3*t), 0.25 * t * math.Sin(3*t)}
}

// Circle returns a curve tracing a circle of the given radius about center.
func Circle(center Point2, radius float64) Curve {
	return func(t float64) Point2 {
		return Point2{center.X + radius*math.Cos(t), center.Y + radius*math.Sin(t)}
	}
}

// Sample evaluates the curve at n evenly spaced parameters over [t0, t1],
// endpoint included.
func Sample(c Curve, t0, t1 float64, n int) []Point2 {
	if n <= 0 {
		return nil
	}
	pts := make([]Point2, n)
	if n == 1 {
		pts[0] = c(t0)
		return pts
	}
	step := (t1 - t0) / float64(n-1)
	for i := range pts {
		pts[i] = c(t0 + float64(i)*step)
	}
	return pts
}

// Ring returns n points evenly spaced on a circle of the given radius,
// the centers of the satellite circles.
func Ring(n int, radius float64) []Point2 {
	pts := make([]Point2, n)
	for i := range pts {
		a := float64(i) * Tau / float64(n)
		pts[i] = Point2{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return pts
}

// Rotate rotates points about the origin by angle, returning a new slice.
func Rotate(pts []Point2, angle float64) []Point2 {
	c, s := math.Cos(angle), math.Sin(angle)
	out := make([]Point2, len(pts))
	for i, p := range pts {
		out[i] = Point2{p.X*c - p.Y*s, p.X*s + p.Y*c}
	}
	return out
}
