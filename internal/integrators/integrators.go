package integrators

import (
	"fmt"
	"math"

	"github.com/san-kum/nbody2d/internal/body"
)

// Integrator advances body state by one time step given forces already
// present in a.FX/a.FY. Implementations must leave fixed bodies unmoved.
type Integrator interface {
	Name() string
	Step(a *body.Arrays, dt, damping, maxSpeed float64)
}

// Lookup returns the named integrator, or an error if name is unknown.
func Lookup(name string) (Integrator, error) {
	switch name {
	case "leapfrog", "":
		return Leapfrog{}, nil
	case "euler":
		return Euler{}, nil
	case "verlet":
		return Verlet{}, nil
	default:
		return nil, fmt.Errorf("integrators: unknown integrator %q", name)
	}
}

func clampSpeed(vx, vy, maxSpeed float64) (float64, float64) {
	if maxSpeed <= 0 {
		return vx, vy
	}
	s2 := vx*vx + vy*vy
	if s2 <= maxSpeed*maxSpeed {
		return vx, vy
	}
	scale := maxSpeed / math.Sqrt(s2)
	return vx * scale, vy * scale
}

// Leapfrog is the kick-drift-kick symplectic default (spec.md §4.5) in its
// deferred-kick form. Forces are evaluated once per Step call, at the
// current positions, before Step is invoked, so that acceleration serves
// both as the previous step's closing half-kick and as this step's opening
// half-kick; the drift then uses the kicked velocity. The stored velocity
// is therefore the half-step velocity between two force evaluations.
type Leapfrog struct{}

func (Leapfrog) Name() string { return "leapfrog" }

func (Leapfrog) Step(a *body.Arrays, dt, damping, maxSpeed float64) {
	n := a.Len()
	halfDt := 0.5 * dt

	for i := 0; i < n; i++ {
		if a.Fixed[i] || a.Dragged[i] {
			a.AccX[i], a.AccY[i] = 0, 0
			a.VelX[i], a.VelY[i] = 0, 0
			continue
		}
		ax := a.FX[i] / a.Mass[i]
		ay := a.FY[i] / a.Mass[i]

		// closing half-kick of the previous step; damping folds into this
		// kick only (v <- v*damping + a*h/2)
		vx := a.VelX[i]*damping + ax*halfDt
		vy := a.VelY[i]*damping + ay*halfDt

		// opening half-kick of this step, undamped
		vx += ax * halfDt
		vy += ay * halfDt

		vx, vy = clampSpeed(vx, vy, maxSpeed)

		// drift
		a.PosX[i] += vx * dt
		a.PosY[i] += vy * dt

		a.VelX[i], a.VelY[i] = vx, vy
		a.AccX[i], a.AccY[i] = ax, ay
	}
}

// Euler is the explicit first-order integrator, kept as a deliberately
// non-symplectic baseline: it is expected to leak energy over long runs
// where Leapfrog stays bounded (spec.md §8, property 4).
type Euler struct{}

func (Euler) Name() string { return "euler" }

func (Euler) Step(a *body.Arrays, dt, damping, maxSpeed float64) {
	n := a.Len()
	for i := 0; i < n; i++ {
		if a.Fixed[i] || a.Dragged[i] {
			a.AccX[i], a.AccY[i] = 0, 0
			a.VelX[i], a.VelY[i] = 0, 0
			continue
		}
		ax := a.FX[i] / a.Mass[i]
		ay := a.FY[i] / a.Mass[i]

		a.PosX[i] += a.VelX[i] * dt
		a.PosY[i] += a.VelY[i] * dt

		vx := (a.VelX[i] + ax*dt) * damping
		vy := (a.VelY[i] + ay*dt) * damping
		vx, vy = clampSpeed(vx, vy, maxSpeed)

		a.VelX[i], a.VelY[i] = vx, vy
		a.AccX[i], a.AccY[i] = ax, ay
	}
}

// Verlet is the Verlet-style alternate: positions advance with the current
// velocity and the previous step's acceleration, and velocity advances
// with the average of the previous step's acceleration and the freshly
// supplied one.
type Verlet struct{}

func (Verlet) Name() string { return "verlet" }

func (Verlet) Step(a *body.Arrays, dt, damping, maxSpeed float64) {
	n := a.Len()
	halfDt2 := 0.5 * dt * dt

	for i := 0; i < n; i++ {
		if a.Fixed[i] || a.Dragged[i] {
			a.AccX[i], a.AccY[i] = 0, 0
			a.VelX[i], a.VelY[i] = 0, 0
			continue
		}
		ax := a.FX[i] / a.Mass[i]
		ay := a.FY[i] / a.Mass[i]

		a.PosX[i] += a.VelX[i]*dt + a.AccX[i]*halfDt2
		a.PosY[i] += a.VelY[i]*dt + a.AccY[i]*halfDt2

		vx := (a.VelX[i] + 0.5*(a.AccX[i]+ax)*dt) * damping
		vy := (a.VelY[i] + 0.5*(a.AccY[i]+ay)*dt) * damping
		vx, vy = clampSpeed(vx, vy, maxSpeed)

		a.VelX[i], a.VelY[i] = vx, vy
		a.AccX[i], a.AccY[i] = ax, ay
	}
}
