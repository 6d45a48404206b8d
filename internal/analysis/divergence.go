// Package analysis quantifies the sensitivity the scenes visualize:
// separation growth between nearby trajectories and a largest-Lyapunov
// estimate for the Lorenz system.
package analysis

import (
	"math"

	"github.com/san-kum/chaoscope/internal/chaos"
)

// Separation returns the pointwise Euclidean distance between two
// trajectories, truncated to the shorter one.
func Separation(a, b []chaos.Point) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sep := make([]float64, n)
	for i := 0; i < n; i++ {
		sep[i] = a[i].Dist(b[i])
	}
	return sep
}

// DivergenceRatio reports how much the separation grew across the
// trajectory: final separation over initial. Returns 0 when fewer than two
// samples or a zero initial separation make the ratio meaningless.
func DivergenceRatio(sep []float64) float64 {
	if len(sep) < 2 || sep[0] == 0 {
		return 0
	}
	return sep[len(sep)-1] / sep[0]
}

// Lyapunov estimates the largest Lyapunov exponent by the trajectory
// separation method: integrate the start point and a perturbed neighbor
// side by side, accumulate log separation growth, and renormalize the
// neighbor whenever the pair drifts too far apart. A positive result
// indicates chaos.
func Lyapunov(start chaos.Point, prm chaos.Params, perturbation float64) float64 {
	if prm.NumPoints == 0 || perturbation == 0 {
		return 0
	}

	p := start
	q := start.Add(chaos.Point{X: perturbation})
	d0 := math.Abs(perturbation)

	sumLog := 0.0
	count := 0

	for i := 0; i < prm.NumPoints; i++ {
		p = chaos.Step(p, prm)
		q = chaos.Step(q, prm)

		sep := p.Dist(q)
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize so the pair keeps probing the local flow.
		if sep > 1.0 {
			q = p.Add(q.Sub(p).Scale(d0 / sep))
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * prm.Dt)
}
