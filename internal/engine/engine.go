package engine

import (
	"sync/atomic"
	"time"

	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/collision"
	"github.com/san-kum/nbody2d/internal/config"
	"github.com/san-kum/nbody2d/internal/forces"
	"github.com/san-kum/nbody2d/internal/integrators"
	"github.com/san-kum/nbody2d/internal/metrics"
)

// Status is one of the two engine states spec.md §4.8 names.
type Status int32

const (
	Idle Status = iota
	Stepping
)

func (s Status) String() string {
	if s == Stepping {
		return "stepping"
	}
	return "idle"
}

// TrailSamplePeriod is the number of physics steps between trail
// appends (spec.md §4.1: "once every N physics sub-steps, N=5 in
// source"). It is a property of the trail-sampling subsystem, not of
// the physics itself, so it lives on Engine rather than in config.Config.
const TrailSamplePeriod = 5

// Stats is the per-step report spec.md §6 names.
type Stats struct {
	Method         string
	TotalMs        float64
	ForceMs        float64
	IntegrateMs    float64
	CollideMs      float64
	TreeMs         float64
	BodyCount      int
	ForceOps       int64
	Collisions     int
	OutsideRootBox int
}

// Engine sequences the per-step pipeline of spec.md §4.8 over a
// body.Store. It owns a derived body.Arrays scratch buffer and the
// currently selected Integrator; Config changes are staged and applied
// only at step boundaries.
type Engine struct {
	status int32 // atomic Status

	cfg        *config.Config
	pendingCfg *config.Config

	arrays     body.Arrays
	integrator integrators.Integrator

	stepCount int
	stats     Stats
}

// New returns an Engine configured with cfg (a copy is taken so the
// caller's Config is never mutated from underneath them).
func New(cfg *config.Config) *Engine {
	cp := *cfg
	integ, err := integrators.Lookup(cp.Integrator)
	if err != nil {
		integ = integrators.Leapfrog{}
	}
	return &Engine{cfg: &cp, integrator: integ}
}

// Status reports whether a Step call is currently in flight.
func (e *Engine) Status() Status {
	return Status(atomic.LoadInt32(&e.status))
}

// Config returns a copy of the engine's active configuration snapshot.
func (e *Engine) Config() config.Config { return *e.cfg }

// SetConfig stages cfg to take effect at the start of the next Step call,
// per spec.md §3's "mutation is serialised to step boundaries".
func (e *Engine) SetConfig(cfg *config.Config) {
	cp := *cfg
	e.pendingCfg = &cp
}

// Stats returns the most recently completed step's report.
func (e *Engine) Stats() Stats { return e.stats }

// Energy reports the current {kinetic, potential, total} energy of store
// under the engine's active gravitational constant (spec.md §4.7).
func (e *Engine) Energy(store *body.Store) metrics.Energy {
	e.arrays.Refresh(store)
	return metrics.Compute(&e.arrays, e.cfg.GravitationalConstant)
}

// Step advances store by one physics step of size dt (before TimeScale is
// applied), following the pipeline of spec.md §4.8:
//
//  1. empty store is a no-op.
//  2. force evaluation.
//  3. optional adaptive step-size recomputation from the freshly
//     evaluated accelerations (spec.md §4.5; deferred to after the force
//     pass rather than before it, since AdaptiveTimeStep's formula reads
//     the current force buffer).
//  4. collision resolution, if enabled.
//  5. integration.
//  6. stats update and trail sampling.
//
// Step returns ErrAlreadyStepping if called while a prior Step on the
// same Engine has not returned; the engine is single-step-at-a-time by
// contract (spec.md §4.8's Idle/Stepping state machine).
func (e *Engine) Step(store *body.Store, dt float64) error {
	if !atomic.CompareAndSwapInt32(&e.status, int32(Idle), int32(Stepping)) {
		return ErrAlreadyStepping
	}
	defer atomic.StoreInt32(&e.status, int32(Idle))

	if e.pendingCfg != nil {
		e.cfg = e.pendingCfg
		e.pendingCfg = nil
		if integ, err := integrators.Lookup(e.cfg.Integrator); err == nil {
			e.integrator = integ
		}
	}

	if store.Len() == 0 {
		e.stats = Stats{Method: "none"}
		return nil
	}
	if dt <= 0 {
		return ErrInvalidTimeStep
	}

	start := time.Now()
	cfg := e.cfg

	e.arrays.Refresh(store)

	tForce := time.Now()
	result := forces.Evaluate(&e.arrays, cfg)
	forceMs := msSince(tForce)

	h := dt * cfg.TimeScale
	if cfg.AdaptiveTimeStep {
		h = integrators.AdaptiveTimeStep(&e.arrays, cfg.SofteningLength, cfg.MinTimeStep, cfg.MaxTimeStep)
	}

	var collideMs float64
	var collideResult collision.Result
	if cfg.EnableCollisions {
		tCollide := time.Now()
		collideResult = collision.Resolve(&e.arrays, cfg.Restitution)
		collideMs = msSince(tCollide)
	}

	tIntegrate := time.Now()
	e.integrator.Step(&e.arrays, h, cfg.DampingFactor, config.MaxSpeed)
	integrateMs := msSince(tIntegrate)

	writeBack(store, &e.arrays)

	e.stepCount++
	if e.stepCount%TrailSamplePeriod == 0 {
		sampleTrails(store)
	}

	treeMs, outsideRootBox := 0.0, 0
	if result.Method == "barnes-hut" {
		treeMs = forceMs
		outsideRootBox = e.arrays.Len() - result.TreeSize
	}

	e.stats = Stats{
		Method:         result.Method,
		TotalMs:        msSince(start),
		ForceMs:        forceMs,
		IntegrateMs:    integrateMs,
		CollideMs:      collideMs,
		TreeMs:         treeMs,
		BodyCount:      e.arrays.Len(),
		ForceOps:       result.PairOps,
		Collisions:     collideResult.Pairs,
		OutsideRootBox: outsideRootBox,
	}

	return nil
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}

// writeBack copies the post-step arrays back onto the store's Body
// fields, the inverse of body.Arrays.Refresh.
func writeBack(store *body.Store, a *body.Arrays) {
	n := store.Len()
	for i := 0; i < n; i++ {
		b := store.At(i)
		b.Pos.X, b.Pos.Y = a.PosX[i], a.PosY[i]
		b.Vel.X, b.Vel.Y = a.VelX[i], a.VelY[i]
		b.Acc.X, b.Acc.Y = a.AccX[i], a.AccY[i]
		b.Force.X, b.Force.Y = a.FX[i], a.FY[i]
	}
}

func sampleTrails(store *body.Store) {
	store.Iter(func(b *body.Body) bool {
		b.Trail.Push(b.Pos)
		return true
	})
}
