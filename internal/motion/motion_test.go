package motion

import (
	"math"
	"testing"
)

func TestEpicycle(t *testing.T) {
	// z(0) = 1 + 1/2
	p := Epicycle(0)
	if math.Abs(p.X-1.5) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("expected (1.5, 0) at t=0, got (%f, %f)", p.X, p.Y)
	}

	// z(pi) = -1 - 1/2
	p = Epicycle(math.Pi)
	if math.Abs(p.X+1.5) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("expected (-1.5, 0) at t=pi, got (%f, %f)", p.X, p.Y)
	}
}

func TestEpicycleMatchesTrig(t *testing.T) {
	for i := 0; i < 32; i++ {
		tm := float64(i) * Tau / 32
		p := Epicycle(tm)
		ex := math.Cos(tm) + 0.5*math.Cos(3*tm)
		ey := math.Sin(tm) + 0.5*math.Sin(3*tm)
		if math.Abs(p.X-ex) > 1e-12 || math.Abs(p.Y-ey) > 1e-12 {
			t.Fatalf("epicycle mismatch at t=%f", tm)
		}
	}
}

func TestSpiralGrows(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 8; i++ {
		tm := float64(i)
		p := Spiral(tm)
		r := math.Hypot(p.X, p.Y)
		if r <= prev {
			t.Fatalf("spiral radius not growing at t=%f: %f <= %f", tm, r, prev)
		}
		prev = r
	}
}

func TestSample(t *testing.T) {
	pts := Sample(Spiral, 0, 4*Tau, 100)
	if len(pts) != 100 {
		t.Fatalf("expected 100 points, got %d", len(pts))
	}
	if pts[0] != Spiral(0) {
		t.Error("first sample should be at t0")
	}
	if pts[99] != Spiral(4*Tau) {
		t.Error("last sample should be at t1")
	}

	if Sample(Spiral, 0, 1, 0) != nil {
		t.Error("expected nil for zero samples")
	}
}

func TestRing(t *testing.T) {
	pts := Ring(5, 1.0)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	for i, p := range pts {
		if math.Abs(math.Hypot(p.X, p.Y)-1.0) > 1e-12 {
			t.Errorf("point %d not on unit circle", i)
		}
	}
}

func TestRotate(t *testing.T) {
	pts := []Point2{{1, 0}}
	rot := Rotate(pts, math.Pi/2)
	if math.Abs(rot[0].X) > 1e-12 || math.Abs(rot[0].Y-1) > 1e-12 {
		t.Errorf("expected (0,1), got (%f,%f)", rot[0].X, rot[0].Y)
	}
	if pts[0].X != 1 {
		t.Error("input slice should not be mutated")
	}
}
