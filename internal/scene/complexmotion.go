package scene

import (
	"github.com/san-kum/chaoscope/internal/motion"
	"github.com/san-kum/chaoscope/internal/render"
	"github.com/san-kum/chaoscope/internal/trail"
)

const (
	epicycleDuration = 4.0 // seconds for one full traversal
	spiralDuration   = 3.0 // seconds for the spiral to unwind
	spiralTurns      = 4.0 // spiral parameter runs to 4*tau
)

// Complex is the complex-plane motion scene: a dot tracing
// z(t) = e^it + e^3it/2 inside a unit circle, five satellite circles
// rotating as a group, then a spiral flourish.
type Complex struct {
	RingCount  int
	RingRadius float64 // satellite circle radius
	TrailCap   int
}

func NewComplex() Complex {
	return Complex{RingCount: 5, RingRadius: 0.2, TrailCap: trail.DefaultCap}
}

// ComplexFrame is the explicit per-frame state of the animated scene.
type ComplexFrame struct {
	T         float64
	Dot       motion.Point2
	RingAngle float64
	SpiralT   float64 // spiral parameter reached so far, 0 until the traversal ends
	DotTrail  *trail.Ring[motion.Point2]
}

func (s Complex) NewFrame() ComplexFrame {
	f := ComplexFrame{DotTrail: trail.New[motion.Point2](s.TrailCap)}
	return s.eval(f)
}

// Advance steps the animation: the dot completes the epicycle while the ring
// rotates one turn, then the spiral grows.
func (s Complex) Advance(f ComplexFrame, dt float64) ComplexFrame {
	f.T += dt
	return s.eval(f)
}

func (s Complex) eval(f ComplexFrame) ComplexFrame {
	param := f.T / epicycleDuration * motion.Tau
	if param > motion.Tau {
		param = motion.Tau
	}
	f.Dot = motion.Epicycle(param)
	f.DotTrail.Push(f.Dot)
	f.RingAngle = param

	if f.T > epicycleDuration {
		progress := (f.T - epicycleDuration) / spiralDuration
		if progress > 1 {
			progress = 1
		}
		f.SpiralT = progress * spiralTurns * motion.Tau
	}
	return f
}

// RingCenters returns the satellite circle centers at the frame's rotation.
func (s Complex) RingCenters(f ComplexFrame) []motion.Point2 {
	return motion.Rotate(motion.Ring(s.RingCount, 1.0), f.RingAngle)
}

// Strokes renders the still composition: unit circle, epicycle path, ring
// of satellite circles, and the full spiral.
func (s Complex) Strokes() []render.Stroke {
	strokes := []render.Stroke{
		{Color: "#58c4dd", Points: motion.Sample(motion.Circle(motion.Point2{}, 1), 0, motion.Tau, 128)},
		{Color: "#fff1b6", Points: motion.Sample(motion.Epicycle, 0, motion.Tau, 400)},
		{Color: "#fc6255", Points: motion.Sample(motion.Spiral, 0, spiralTurns*motion.Tau, 600)},
	}
	for _, c := range motion.Ring(s.RingCount, 1.0) {
		strokes = append(strokes, render.Stroke{
			Color:  "#c7e9f1",
			Points: motion.Sample(motion.Circle(c, s.RingRadius), 0, motion.Tau, 48),
		})
	}
	return strokes
}

// Done reports whether the scene has played out.
func (s Complex) Done(f ComplexFrame) bool {
	return f.T >= epicycleDuration+spiralDuration
}
