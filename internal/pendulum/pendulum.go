package pendulum

import "math"

// Params describes a damped pendulum in closed form. Omega is the natural
// frequency sqrt(g/L); Damping is the exponential decay coefficient.
type Params struct {
	Length  float64
	Gravity float64
	Theta0  float64
	Damping float64
}

func NewParams() Params {
	return Params{
		Length:  3.5,
		Gravity: 9.81,
		Theta0:  math.Pi / 3,
		Damping: 0.1,
	}
}

// Omega returns the natural angular frequency sqrt(g/L).
func (p Params) Omega() float64 {
	return math.Sqrt(p.Gravity / p.Length)
}

// State evaluates the damped oscillation analytically at time t:
//
//	theta(t)     = theta0 * exp(-damping*t) * cos(omega*t)
//	thetaDot(t)  = theta0 * exp(-damping*t) * (-damping*cos(omega*t) - omega*sin(omega*t))
//
// Stateless: the caller accumulates elapsed time.
func State(t, theta0, damping, omega float64) (theta, thetaDot float64) {
	envelope := theta0 * math.Exp(-damping*t)
	c, s := math.Cos(omega*t), math.Sin(omega*t)
	theta = envelope * c
	thetaDot = envelope * (-damping*c - omega*s)
	return
}

// BobPosition converts an angle to the Cartesian bob position with the pivot
// at the origin and theta measured from straight down.
func BobPosition(theta, length float64) (x, y float64) {
	return length * math.Sin(theta), -length * math.Cos(theta)
}

// Energies returns normalized potential and kinetic energy indicators for
// the on-screen bars. These are display quantities, not physical joules.
func Energies(theta, thetaDot, omega float64) (pe, ke float64) {
	pe = (1 - math.Cos(theta)) * 2
	r := thetaDot / omega
	ke = r * r * 2
	return
}
