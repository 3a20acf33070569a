package integrators

import (
	"math"

	"github.com/san-kum/nbody2d/internal/body"
)

// AdaptiveTimeStep computes the next step size per spec.md §4.5's adaptive
// rule, h = sqrt(softening / a_max), clamped to [minDt, maxDt]. a_max is
// the largest per-body acceleration magnitude currently in a.
func AdaptiveTimeStep(a *body.Arrays, softening, minDt, maxDt float64) float64 {
	n := a.Len()
	var aMax float64
	for i := 0; i < n; i++ {
		ax := a.FX[i] / a.Mass[i]
		ay := a.FY[i] / a.Mass[i]
		mag2 := ax*ax + ay*ay
		if mag2 > aMax {
			aMax = mag2
		}
	}
	if aMax <= 0 {
		return maxDt
	}

	h := math.Sqrt(softening / math.Sqrt(aMax))
	if h < minDt {
		return minDt
	}
	if h > maxDt {
		return maxDt
	}
	return h
}
