package scene

import (
	"math"
	"testing"

	"github.com/san-kum/chaoscope/internal/chaos"
)

func TestLorenzStarts(t *testing.T) {
	s := NewLorenz()
	starts := s.Starts()

	if len(starts) != 5 {
		t.Fatalf("expected 5 starts, got %d", len(starts))
	}
	if starts[0] != (chaos.Point{X: 10, Y: 10, Z: 10}) {
		t.Errorf("unexpected base start: %+v", starts[0])
	}
	if starts[1] != (chaos.Point{X: 10.01, Y: 10, Z: 10}) {
		t.Errorf("unexpected perturbed start: %+v", starts[1])
	}
}

func TestLorenzStrokes(t *testing.T) {
	s := NewLorenz()
	s.Params.NumPoints = 50

	strokes := s.Strokes()

	if len(strokes) != 5 {
		t.Fatalf("expected 5 strokes, got %d", len(strokes))
	}
	for i, stroke := range strokes {
		if len(stroke.Points) != 50 {
			t.Errorf("stroke %d: expected 50 points, got %d", i, len(stroke.Points))
		}
		if stroke.Color == "" {
			t.Errorf("stroke %d: missing color", i)
		}
	}

	// Projection: x scaled by 20, z scaled and shifted down 2.
	traj := chaos.Trajectory(s.Starts()[0], s.Params)
	if strokes[0].Points[0].X != traj[0].X/20 {
		t.Error("x projection mismatch")
	}
	if strokes[0].Points[0].Y != traj[0].Z/20-2 {
		t.Error("z projection mismatch")
	}
}

func TestPendulumFrameAdvance(t *testing.T) {
	s := NewPendulum()
	f := s.NewFrame()

	if f.Theta != s.Params.Theta0 {
		t.Errorf("expected initial theta %f, got %f", s.Params.Theta0, f.Theta)
	}

	f2 := s.Advance(f, 0.5)
	if f2.T != 0.5 {
		t.Errorf("expected t=0.5, got %f", f2.T)
	}
	if math.Abs(f2.Theta) >= math.Abs(f.Theta) {
		t.Error("damped swing should have lost amplitude within the first half second")
	}
	if f2.BobTrail.Len() != 2 {
		t.Errorf("expected 2 trail points, got %d", f2.BobTrail.Len())
	}
}

func TestPendulumTrailBounded(t *testing.T) {
	s := NewPendulum()
	s.TrailCap = 10
	f := s.NewFrame()

	for i := 0; i < 100; i++ {
		f = s.Advance(f, 1.0/60)
	}

	if f.BobTrail.Len() != 10 {
		t.Errorf("expected trail capped at 10, got %d", f.BobTrail.Len())
	}
	if f.PhaseTrail.Len() != 10 {
		t.Errorf("expected phase trail capped at 10, got %d", f.PhaseTrail.Len())
	}
}

func TestPendulumStrokes(t *testing.T) {
	strokes := NewPendulum().Strokes()
	if len(strokes) != 2 {
		t.Fatalf("expected bob path and phase portrait, got %d strokes", len(strokes))
	}
	if len(strokes[0].Points) != 2000 {
		t.Errorf("expected 2000 samples, got %d", len(strokes[0].Points))
	}
}

func TestComplexAdvance(t *testing.T) {
	s := NewComplex()
	f := s.NewFrame()

	if f.SpiralT != 0 {
		t.Error("spiral should not start before the traversal completes")
	}

	for f.T < epicycleDuration {
		f = s.Advance(f, 0.1)
	}
	mid := f
	if mid.SpiralT != 0 && mid.T == epicycleDuration {
		t.Error("spiral should start strictly after the epicycle finishes")
	}

	for !s.Done(f) {
		f = s.Advance(f, 0.1)
	}
	want := spiralTurns * 2 * math.Pi
	if math.Abs(f.SpiralT-want) > 1e-9 {
		t.Errorf("expected full spiral %f, got %f", want, f.SpiralT)
	}
}

func TestComplexRingCenters(t *testing.T) {
	s := NewComplex()
	f := s.NewFrame()

	centers := s.RingCenters(f)
	if len(centers) != 5 {
		t.Fatalf("expected 5 satellite circles, got %d", len(centers))
	}
	for i, c := range centers {
		if math.Abs(math.Hypot(c.X, c.Y)-1.0) > 1e-9 {
			t.Errorf("center %d drifted off the unit circle", i)
		}
	}
}

func TestComplexStrokes(t *testing.T) {
	strokes := NewComplex().Strokes()
	// circle + epicycle + spiral + 5 satellites
	if len(strokes) != 8 {
		t.Fatalf("expected 8 strokes, got %d", len(strokes))
	}
}
