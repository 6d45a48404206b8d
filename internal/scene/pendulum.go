package scene

import (
	"github.com/san-kum/chaoscope/internal/motion"
	"github.com/san-kum/chaoscope/internal/pendulum"
	"github.com/san-kum/chaoscope/internal/render"
	"github.com/san-kum/chaoscope/internal/trail"
)

// Pendulum is the damped harmonic oscillator scene: a swinging bob with a
// trailing path, energy bars, and a phase-space portrait.
type Pendulum struct {
	Params   pendulum.Params
	TrailCap int
}

func NewPendulum() Pendulum {
	return Pendulum{Params: pendulum.NewParams(), TrailCap: trail.DefaultCap}
}

// PendulumFrame is the complete per-frame state. Advance consumes one frame
// and produces the next; the trails ride along inside the frame.
type PendulumFrame struct {
	T          float64
	Theta      float64
	ThetaDot   float64
	Bob        motion.Point2
	PE, KE     float64
	BobTrail   *trail.Ring[motion.Point2]
	PhaseTrail *trail.Ring[motion.Point2]
}

// NewFrame returns the initial frame at t=0.
func (s Pendulum) NewFrame() PendulumFrame {
	f := PendulumFrame{
		BobTrail:   trail.New[motion.Point2](s.TrailCap),
		PhaseTrail: trail.New[motion.Point2](s.TrailCap),
	}
	return s.eval(f)
}

// Advance steps the frame forward by dt of animation time.
func (s Pendulum) Advance(f PendulumFrame, dt float64) PendulumFrame {
	f.T += dt
	return s.eval(f)
}

func (s Pendulum) eval(f PendulumFrame) PendulumFrame {
	p := s.Params
	omega := p.Omega()
	f.Theta, f.ThetaDot = pendulum.State(f.T, p.Theta0, p.Damping, omega)
	x, y := pendulum.BobPosition(f.Theta, p.Length)
	f.Bob = motion.Point2{X: x, Y: y}
	f.PE, f.KE = pendulum.Energies(f.Theta, f.ThetaDot, omega)
	f.BobTrail.Push(f.Bob)
	// Phase point: theta doubled for visibility, as staged originally.
	f.PhaseTrail.Push(motion.Point2{X: f.Theta * 2, Y: f.ThetaDot})
	return f
}

// Strokes samples the decaying swing for offline rendering: the bob path
// over the first 20 seconds and the matching phase portrait.
func (s Pendulum) Strokes() []render.Stroke {
	const duration, dt = 20.0, 0.01
	n := int(duration / dt)
	p := s.Params
	omega := p.Omega()

	bob := make([]motion.Point2, 0, n)
	phase := make([]motion.Point2, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		theta, thetaDot := pendulum.State(t, p.Theta0, p.Damping, omega)
		x, y := pendulum.BobPosition(theta, p.Length)
		bob = append(bob, motion.Point2{X: x, Y: y})
		phase = append(phase, motion.Point2{X: theta*2 + 2*p.Length, Y: thetaDot})
	}
	return []render.Stroke{
		{Color: "#4ecdc4", Points: bob},
		{Color: "#ffff00", Points: phase},
	}
}
