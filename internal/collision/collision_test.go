package collision

import (
	"math"
	"testing"

	"github.com/san-kum/nbody2d/internal/body"
)

func headOnArrays() *body.Arrays {
	s := body.NewStore()
	s.Add(body.Vec2{X: -1, Y: 0}, body.Vec2{X: 1, Y: 0}, 1.0)
	s.Add(body.Vec2{X: 1, Y: 0}, body.Vec2{X: -1, Y: 0}, 1.0)
	a := &body.Arrays{}
	a.Refresh(s)
	return a
}

func TestElasticCollisionConservesMomentumAndEnergy(t *testing.T) {
	a := headOnArrays()
	// force an overlap so the narrow phase fires
	a.PosX[0], a.PosX[1] = -1, 1
	a.Radius[0], a.Radius[1] = 2, 2

	pBefore := a.Mass[0]*a.VelX[0] + a.Mass[1]*a.VelX[1]
	keBefore := 0.5*a.Mass[0]*(a.VelX[0]*a.VelX[0]+a.VelY[0]*a.VelY[0]) +
		0.5*a.Mass[1]*(a.VelX[1]*a.VelX[1]+a.VelY[1]*a.VelY[1])

	r := Resolve(a, 1.0)
	if r.Pairs != 1 {
		t.Fatalf("expected 1 colliding pair, got %d", r.Pairs)
	}

	pAfter := a.Mass[0]*a.VelX[0] + a.Mass[1]*a.VelX[1]
	keAfter := 0.5*a.Mass[0]*(a.VelX[0]*a.VelX[0]+a.VelY[0]*a.VelY[0]) +
		0.5*a.Mass[1]*(a.VelX[1]*a.VelX[1]+a.VelY[1]*a.VelY[1])

	if math.Abs(pAfter-pBefore) > 1e-9 {
		t.Errorf("momentum not conserved: before=%v after=%v", pBefore, pAfter)
	}
	if math.Abs(keAfter-keBefore) > 1e-4 {
		t.Errorf("elastic KE not conserved: before=%v after=%v", keBefore, keAfter)
	}
}

func TestEqualMassElasticHeadOnSwapsVelocities(t *testing.T) {
	a := headOnArrays()
	a.Radius[0], a.Radius[1] = 2, 2

	Resolve(a, 1.0)

	if math.Abs(a.VelX[0]-(-1)) > 1e-9 || math.Abs(a.VelX[1]-1) > 1e-9 {
		t.Errorf("expected velocity exchange for equal masses, got vx0=%v vx1=%v", a.VelX[0], a.VelX[1])
	}
}

func TestInelasticCollisionReducesKE(t *testing.T) {
	a := headOnArrays()
	a.Radius[0], a.Radius[1] = 2, 2

	keBefore := 0.5*a.Mass[0]*(a.VelX[0]*a.VelX[0]) + 0.5*a.Mass[1]*(a.VelX[1]*a.VelX[1])
	Resolve(a, 0.5)
	keAfter := 0.5*a.Mass[0]*(a.VelX[0]*a.VelX[0]) + 0.5*a.Mass[1]*(a.VelX[1]*a.VelX[1])

	if keAfter >= keBefore {
		t.Errorf("expected inelastic collision to strictly reduce KE: before=%v after=%v", keBefore, keAfter)
	}
}

func TestSeparatingPairsReceiveNoImpulse(t *testing.T) {
	s := body.NewStore()
	s.Add(body.Vec2{X: -1, Y: 0}, body.Vec2{X: -1, Y: 0}, 1.0)
	s.Add(body.Vec2{X: 1, Y: 0}, body.Vec2{X: 1, Y: 0}, 1.0)
	a := &body.Arrays{}
	a.Refresh(s)
	a.Radius[0], a.Radius[1] = 2, 2

	vx0, vx1 := a.VelX[0], a.VelX[1]
	Resolve(a, 1.0)
	if a.VelX[0] != vx0 || a.VelX[1] != vx1 {
		t.Errorf("separating pair should not receive an impulse")
	}
}

func TestFixedBodyActsAsInfiniteMass(t *testing.T) {
	a := headOnArrays()
	a.Radius[0], a.Radius[1] = 2, 2
	a.Fixed[0] = true
	vx0 := a.VelX[0]

	Resolve(a, 1.0)

	if a.VelX[0] != vx0 {
		t.Errorf("fixed body velocity must not change, got %v want %v", a.VelX[0], vx0)
	}
	if a.PosX[0] != -1 {
		t.Errorf("fixed body must not move, got %v", a.PosX[0])
	}
}

func TestNoOverlapNoPairs(t *testing.T) {
	a := headOnArrays()
	a.Radius[0], a.Radius[1] = 0.1, 0.1
	r := Resolve(a, 1.0)
	if r.Pairs != 0 {
		t.Errorf("expected no colliding pairs, got %d", r.Pairs)
	}
}
