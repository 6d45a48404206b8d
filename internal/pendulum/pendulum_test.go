package pendulum

import (
	"math"
	"testing"
)

func TestStateAtZero(t *testing.T) {
	theta0, damping, omega := 1.2, 0.1, 2.0

	theta, thetaDot := State(0, theta0, damping, omega)

	if theta != theta0 {
		t.Errorf("expected theta %f at t=0, got %f", theta0, theta)
	}

	expectedDot := -damping * theta0
	if math.Abs(thetaDot-expectedDot) > 1e-12 {
		t.Errorf("expected thetaDot %f at t=0, got %f", expectedDot, thetaDot)
	}
}

func TestStateEnvelope(t *testing.T) {
	theta0, damping := math.Pi/3, 0.1
	omega := NewParams().Omega()

	for ti := 0; ti <= 200; ti++ {
		tm := float64(ti) * 0.05
		theta, _ := State(tm, theta0, damping, omega)
		bound := theta0 * math.Exp(-damping*tm)
		if math.Abs(theta) > bound+1e-12 {
			t.Fatalf("theta %f exceeds envelope %f at t=%f", theta, bound, tm)
		}
	}
}

func TestStateUndamped(t *testing.T) {
	// With no damping the motion reduces to theta0*cos(omega*t).
	theta0, omega := 0.5, 1.5
	tm := 2.3

	theta, thetaDot := State(tm, theta0, 0, omega)

	if math.Abs(theta-theta0*math.Cos(omega*tm)) > 1e-12 {
		t.Errorf("undamped theta mismatch: %f", theta)
	}
	if math.Abs(thetaDot-(-theta0*omega*math.Sin(omega*tm))) > 1e-12 {
		t.Errorf("undamped thetaDot mismatch: %f", thetaDot)
	}
}

func TestBobPosition(t *testing.T) {
	x, y := BobPosition(0, 3.5)
	if x != 0 || y != -3.5 {
		t.Errorf("expected bob at rest position (0,-3.5), got (%f,%f)", x, y)
	}

	x, y = BobPosition(math.Pi/2, 2.0)
	if math.Abs(x-2.0) > 1e-12 || math.Abs(y) > 1e-12 {
		t.Errorf("expected bob at (2,0), got (%f,%f)", x, y)
	}
}

func TestOmega(t *testing.T) {
	p := NewParams()
	expected := math.Sqrt(p.Gravity / p.Length)
	if p.Omega() != expected {
		t.Errorf("expected omega %f, got %f", expected, p.Omega())
	}
}

func TestEnergiesAtRest(t *testing.T) {
	pe, ke := Energies(0, 0, 1.67)
	if pe != 0 {
		t.Errorf("expected zero potential energy at rest, got %f", pe)
	}
	if ke != 0 {
		t.Errorf("expected zero kinetic energy at rest, got %f", ke)
	}
}
