package collision

import (
	"math"

	"github.com/san-kum/nbody2d/internal/body"
)

// Result reports what Resolve did this step, feeding the engine's Stats
// record (spec.md §4.8).
type Result struct {
	Pairs int
}

// Resolve runs the deterministic i<j all-pairs sweep of spec.md §4.6:
// positional correction on overlap, then an elastic impulse with
// restitution e along the contact normal. Fixed and dragged bodies are
// immovable and act as infinite mass in the impulse formula; movable
// overlaps split the positional correction evenly.
func Resolve(a *body.Arrays, restitution float64) Result {
	n := a.Len()
	var r Result

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := a.PosX[j] - a.PosX[i]
			dy := a.PosY[j] - a.PosY[i]
			d2 := dx*dx + dy*dy
			minSep := a.Radius[i] + a.Radius[j]
			if d2 >= minSep*minSep {
				continue
			}

			d := math.Sqrt(d2)
			var nx, ny float64
			if d < 1e-9 {
				// Coincident centers: pick an arbitrary separation axis.
				nx, ny = 1, 0
			} else {
				nx, ny = dx/d, dy/d
			}

			r.Pairs++

			movableI := !a.Fixed[i] && !a.Dragged[i]
			movableJ := !a.Fixed[j] && !a.Dragged[j]
			overlap := minSep - d
			separate(a, i, j, nx, ny, overlap, movableI, movableJ)
			impulse(a, i, j, nx, ny, restitution, movableI, movableJ)
		}
	}

	return r
}

// separate pushes the overlapping pair apart along the contact normal,
// splitting the correction between movable bodies and leaving fixed ones
// untouched (spec.md §4.6: fixed/dragged bodies do not move; the other
// absorbs the full correction).
func separate(a *body.Arrays, i, j int, nx, ny, overlap float64, movableI, movableJ bool) {
	switch {
	case movableI && movableJ:
		half := overlap / 2
		a.PosX[i] -= nx * half
		a.PosY[i] -= ny * half
		a.PosX[j] += nx * half
		a.PosY[j] += ny * half
	case movableI:
		a.PosX[i] -= nx * overlap
		a.PosY[i] -= ny * overlap
	case movableJ:
		a.PosX[j] += nx * overlap
		a.PosY[j] += ny * overlap
	}
}

// impulse applies the elastic-with-restitution response of spec.md §4.6.
// Fixed/dragged bodies are infinite mass: only the other body's velocity
// changes.
func impulse(a *body.Arrays, i, j int, nx, ny, e float64, movableI, movableJ bool) {
	vrx := a.VelX[j] - a.VelX[i]
	vry := a.VelY[j] - a.VelY[i]
	vn := vrx*nx + vry*ny
	if vn >= 0 {
		// Separating already; no impulse.
		return
	}

	var invMi, invMj float64
	if movableI {
		invMi = 1 / a.Mass[i]
	}
	if movableJ {
		invMj = 1 / a.Mass[j]
	}
	invMassSum := invMi + invMj
	if invMassSum <= 0 {
		return
	}

	j_ := -(1 + e) * vn / invMassSum

	if movableI {
		a.VelX[i] -= (j_ * invMi) * nx
		a.VelY[i] -= (j_ * invMi) * ny
	}
	if movableJ {
		a.VelX[j] += (j_ * invMj) * nx
		a.VelY[j] += (j_ * invMj) * ny
	}
}
