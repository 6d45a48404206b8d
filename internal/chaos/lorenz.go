package chaos

import "math"

// Point is a position in Lorenz phase space.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(o Point) Point     { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point) Sub(o Point) Point     { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s, p.Z * s} }
func (p Point) Norm() float64         { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }
func (p Point) Dist(o Point) float64  { return p.Sub(o).Norm() }

// Params holds the Lorenz system coefficients and integration settings.
// The zero value is not useful; start from DefaultParams.
type Params struct {
	Sigma     float64
	Rho       float64
	Beta      float64
	Dt        float64
	NumPoints int
}

// DefaultParams returns the classic chaotic parameter set.
func DefaultParams() Params {
	return Params{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0, Dt: 0.01, NumPoints: 2000}
}

// Derive evaluates the Lorenz derivatives at p.
func Derive(p Point, prm Params) Point {
	return Point{
		X: prm.Sigma * (p.Y - p.X),
		Y: p.X*(prm.Rho-p.Z) - p.Y,
		Z: p.X*p.Y - prm.Beta*p.Z,
	}
}

// Step advances p by one explicit Euler step of size prm.Dt.
func Step(p Point, prm Params) Point {
	return p.Add(Derive(p, prm).Scale(prm.Dt))
}

// stepCount treats any negative NumPoints as zero.
func (p Params) stepCount() int {
	if p.NumPoints < 0 {
		return 0
	}
	return p.NumPoints
}

// Trajectory integrates the Lorenz system from start using explicit Euler
// and returns the NumPoints post-step states. The starting point itself is
// not included; non-positive counts yield an empty sequence. Identical
// inputs always yield an identical sequence; no other parameter is validated
// and divergent combinations simply produce divergent trajectories.
func Trajectory(start Point, prm Params) []Point {
	n := prm.stepCount()
	points := make([]Point, 0, n)
	p := start
	for i := 0; i < n; i++ {
		p = Step(p, prm)
		points = append(points, p)
	}
	return points
}

// TrajectoryWithDerivative is Trajectory augmented with the derivative at the
// last pre-step state, for callers that annotate the trajectory tip.
func TrajectoryWithDerivative(start Point, prm Params) ([]Point, Point) {
	n := prm.stepCount()
	points := make([]Point, 0, n)
	p := start
	var d Point
	for i := 0; i < n; i++ {
		d = Derive(p, prm)
		p = p.Add(d.Scale(prm.Dt))
		points = append(points, p)
	}
	return points, d
}

// TrajectoryDerivatives returns both the point sequence and the derivative
// evaluated before each step, index-aligned with the points.
func TrajectoryDerivatives(start Point, prm Params) ([]Point, []Point) {
	n := prm.stepCount()
	points := make([]Point, 0, n)
	derivs := make([]Point, 0, n)
	p := start
	for i := 0; i < n; i++ {
		d := Derive(p, prm)
		derivs = append(derivs, d)
		p = p.Add(d.Scale(prm.Dt))
		points = append(points, p)
	}
	return points, derivs
}
