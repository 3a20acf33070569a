package engine

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/config"
)

func twoBodyStore() *body.Store {
	s := body.NewStore()
	s.Add(body.Vec2{X: 0, Y: 0}, body.Vec2{}, 1.0)
	s.Add(body.Vec2{X: 10, Y: 0}, body.Vec2{}, 1.0)
	return s
}

func TestStepOnEmptyStoreIsNoOp(t *testing.T) {
	e := New(config.DefaultConfig())
	s := body.NewStore()
	if err := e.Step(s, 0.01); err != nil {
		t.Fatalf("unexpected error on empty store: %v", err)
	}
	if e.Stats().Method != "none" {
		t.Errorf("expected stats method %q, got %q", "none", e.Stats().Method)
	}
}

func TestStepRejectsNonPositiveDt(t *testing.T) {
	e := New(config.DefaultConfig())
	s := twoBodyStore()
	if err := e.Step(s, 0); err != ErrInvalidTimeStep {
		t.Errorf("expected ErrInvalidTimeStep, got %v", err)
	}
}

func TestStepRejectsReentry(t *testing.T) {
	e := New(config.DefaultConfig())
	atomic.StoreInt32(&e.status, int32(Stepping))

	if err := e.Step(twoBodyStore(), 0.01); err != ErrAlreadyStepping {
		t.Errorf("expected ErrAlreadyStepping, got %v", err)
	}
	if e.Status() != Stepping {
		t.Errorf("a rejected Step must not clear the in-flight status")
	}
}

func TestStepReturnsToIdleAfterCompletion(t *testing.T) {
	e := New(config.DefaultConfig())
	if err := e.Step(twoBodyStore(), 0.01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status() != Idle {
		t.Errorf("expected Idle after Step returns, got %v", e.Status())
	}
}

func TestFixedBodyInvarianceAcrossManySteps(t *testing.T) {
	s := body.NewStore()
	fixedHandle := s.Add(body.Vec2{X: 0, Y: 0}, body.Vec2{}, 1000.0)
	s.Get(fixedHandle).Fixed = true
	s.Add(body.Vec2{X: 20, Y: 0}, body.Vec2{X: 0, Y: 5}, 1.0)

	cfg := config.DefaultConfig()
	cfg.EnableCollisions = false
	e := New(cfg)

	for i := 0; i < 1000; i++ {
		if err := e.Step(s, 0.01); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	fixed := s.Get(fixedHandle)
	if fixed.Pos.X != 0 || fixed.Pos.Y != 0 {
		t.Errorf("fixed body moved: %+v", fixed.Pos)
	}
	if fixed.Vel.X != 0 || fixed.Vel.Y != 0 {
		t.Errorf("fixed body velocity nonzero: %+v", fixed.Vel)
	}
}

func TestEnergyDoesNotMutateStore(t *testing.T) {
	e := New(config.DefaultConfig())
	s := twoBodyStore()
	before := s.At(0).Pos
	_ = e.Energy(s)
	after := s.At(0).Pos
	if before != after {
		t.Errorf("Energy must not mutate body positions")
	}
}

func TestSetConfigAppliesAtNextStepBoundary(t *testing.T) {
	e := New(config.DefaultConfig())
	s := twoBodyStore()

	newCfg := config.DefaultConfig()
	newCfg.GravitationalConstant = 99.0
	e.SetConfig(newCfg)

	if e.Config().GravitationalConstant == 99.0 {
		t.Fatalf("staged config must not apply before the next Step")
	}
	if err := e.Step(s, 0.01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Config().GravitationalConstant != 99.0 {
		t.Errorf("staged config should have applied at the step boundary")
	}
}

func TestDeterministicNaiveSolverProducesBitIdenticalRuns(t *testing.T) {
	run := func() []body.Vec2 {
		cfg := config.DefaultConfig()
		cfg.UseBarnesHut = false
		cfg.EnableCollisions = false
		e := New(cfg)
		s := body.NewStore()
		s.Add(body.Vec2{X: -1, Y: 0}, body.Vec2{X: 0, Y: 0.3}, 1.0)
		s.Add(body.Vec2{X: 1, Y: 0}, body.Vec2{X: 0, Y: -0.3}, 1.0)
		s.Add(body.Vec2{X: 0, Y: 2}, body.Vec2{X: -0.1, Y: 0}, 1.0)

		for i := 0; i < 200; i++ {
			if err := e.Step(s, 0.005); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
		out := make([]body.Vec2, s.Len())
		for i := range out {
			out[i] = s.At(i).Pos
		}
		return out
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run diverged at body %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestEnergyApproximatelyConservedUnderLeapfrog(t *testing.T) {
	s := body.NewStore()
	s.Add(body.Vec2{X: -5, Y: 0}, body.Vec2{X: 0, Y: 0.45}, 1.0)
	s.Add(body.Vec2{X: 5, Y: 0}, body.Vec2{X: 0, Y: -0.45}, 1.0)

	cfg := config.DefaultConfig()
	cfg.EnableCollisions = false
	cfg.UseBarnesHut = false
	e := New(cfg)

	e0 := e.Energy(s).Total
	for i := 0; i < 2000; i++ {
		if err := e.Step(s, 0.005); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	e1 := e.Energy(s).Total

	drift := math.Abs(e1-e0) / math.Abs(e0)
	if drift > 0.05 {
		t.Errorf("leapfrog energy drift too large: %v", drift)
	}
}
