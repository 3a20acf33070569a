package forces

import (
	"math"

	"github.com/san-kum/nbody2d/internal/body"
)

// naive computes every pairwise gravitational force directly (O(n^2)),
// adapted from internal/compute's CPUBackend.NBodyForces pairwise loop
// but accumulating actual force (scaled by both masses) rather than
// force-per-unit-target-mass, and clamping each pair's contribution to
// maxForce per spec.md §4.4/§9 (direct kernels only; Barnes-Hut is never
// clamped). Fixed bodies still act as sources but never accumulate an
// incoming force.
func naive(a *body.Arrays, g, softening, maxForce float64) int64 {
	n := a.Len()
	eps2 := softening * softening
	var ops int64

	for i := 0; i < n; i++ {
		xi, yi := a.PosX[i], a.PosY[i]
		for j := i + 1; j < n; j++ {
			fx, fy := pairForce(xi, yi, a.PosX[j], a.PosY[j], a.Mass[i], a.Mass[j], g, eps2, maxForce)
			if !a.Fixed[i] {
				a.FX[i] += fx
				a.FY[i] += fy
			}
			if !a.Fixed[j] {
				a.FX[j] -= fx
				a.FY[j] -= fy
			}
			ops++
		}
	}
	return ops
}

// blocked is a cache-blocked variant of naive: the i-range is processed in
// chunks of blockSize so that each block's positions stay resident while
// the inner j loop runs, reducing cache pressure for larger populations.
// Same accumulation and clamp semantics as naive.
func blocked(a *body.Arrays, g, softening, maxForce float64, blockSize int) int64 {
	n := a.Len()
	eps2 := softening * softening
	var ops int64

	for bi := 0; bi < n; bi += blockSize {
		biEnd := bi + blockSize
		if biEnd > n {
			biEnd = n
		}
		for i := bi; i < biEnd; i++ {
			xi, yi := a.PosX[i], a.PosY[i]
			for j := i + 1; j < n; j++ {
				fx, fy := pairForce(xi, yi, a.PosX[j], a.PosY[j], a.Mass[i], a.Mass[j], g, eps2, maxForce)
				if !a.Fixed[i] {
					a.FX[i] += fx
					a.FY[i] += fy
				}
				if !a.Fixed[j] {
					a.FX[j] -= fx
					a.FY[j] -= fy
				}
				ops++
			}
		}
	}
	return ops
}

// pairForce returns the force exerted on body i by body j (force on j is
// its negation, per Newton's third law), softened and clamped.
func pairForce(xi, yi, xj, yj, mi, mj, g, eps2, maxForce float64) (float64, float64) {
	rx := xj - xi
	ry := yj - yi
	r2 := rx*rx + ry*ry + eps2
	if r2 < 1e-12 {
		return 0, 0
	}

	rInv := 1.0 / math.Sqrt(r2)
	r3Inv := rInv * rInv * rInv
	mag := g * mi * mj * r3Inv

	fx := mag * rx
	fy := mag * ry

	fMag2 := fx*fx + fy*fy
	if maxForce > 0 && fMag2 > maxForce*maxForce {
		scale := maxForce / math.Sqrt(fMag2)
		fx *= scale
		fy *= scale
	}

	return fx, fy
}
