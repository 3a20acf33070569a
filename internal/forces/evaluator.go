package forces

import (
	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/compute"
	"github.com/san-kum/nbody2d/internal/config"
)

// Result reports what the evaluator did this step, feeding the engine's
// per-step Stats record (spec.md §4.8).
type Result struct {
	Method   string
	PairOps  int64
	TreeSize int
}

// Evaluate fills a.FX/a.FY with the accumulated force on every body and
// returns which kernel it used. It never mutates positions or velocities.
//
// Selection follows spec.md §4.4: Barnes-Hut once the population exceeds
// MaxBodiesForDirect (when enabled), otherwise one of the direct-family
// kernels graded by size. When cfg.UseGPU is set, the direct path is routed
// through internal/compute instead: AutoSelectBackend already tried the GPU
// backend at startup and fell back to the CPU backend since no GPU backend
// is available in this build, so this just means going through
// compute.Backend.NBodyForces rather than this package's own inline loop.
func Evaluate(a *body.Arrays, cfg *config.Config) Result {
	n := a.Len()
	for i := 0; i < n; i++ {
		a.FX[i] = 0
		a.FY[i] = 0
	}
	if n == 0 {
		return Result{Method: "none"}
	}

	if cfg.UseBarnesHut && n > cfg.MaxBodiesForDirect {
		return barnesHut(a, cfg)
	}

	if cfg.UseGPU {
		if backend := compute.GetBackend(); backend.Available() {
			ops := viaBackend(a, backend, cfg.GravitationalConstant, cfg.SofteningLength, config.MaxForceDirect)
			return Result{Method: backendMethodName(backend), PairOps: ops}
		}
	}

	switch {
	case n > 100:
		ops := mortonOrdered(a, cfg.GravitationalConstant, cfg.SofteningLength, config.MaxForceDirect)
		return Result{Method: "morton", PairOps: ops}
	case n > 50:
		ops := blocked(a, cfg.GravitationalConstant, cfg.SofteningLength, config.MaxForceDirect, 32)
		return Result{Method: "blocked", PairOps: ops}
	default:
		ops := naive(a, cfg.GravitationalConstant, cfg.SofteningLength, config.MaxForceDirect)
		return Result{Method: "naive", PairOps: ops}
	}
}

