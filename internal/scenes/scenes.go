package scenes

import (
	"math"
	"math/rand"

	"github.com/san-kum/nbody2d/internal/body"
)

// SolarSystem seeds a fixed central star and a ring of orbiting planets on
// circular orbits (v = sqrt(G*M/r)), following the teacher's ring-seeded
// NBody.DefaultState (internal/physics/nbody.go) generalized from a flat
// state vector onto Store.Add/AddWithDensity.
func SolarSystem(s *body.Store, g float64, numPlanets int) {
	starMass := 50000.0
	s.AddWithDensity(body.Vec2{}, body.Vec2{}, starMass, 5.0, body.Color{R: 1, G: 0.9, B: 0.3})
	star := s.At(s.Len() - 1)
	star.Fixed = true

	for i := 0; i < numPlanets; i++ {
		radius := 60.0 + float64(i)*40.0
		angle := float64(i) * 2.0 * math.Pi / float64(numPlanets)
		v := math.Sqrt(g * starMass / radius)

		pos := body.Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		vel := body.Vec2{X: -v * math.Sin(angle), Y: v * math.Cos(angle)}
		mass := 1.0 + float64(i%4)
		s.AddWithDensity(pos, vel, mass, 1.0, planetColor(i))
	}
}

func planetColor(i int) body.Color {
	palette := []body.Color{
		{R: 0.6, G: 0.7, B: 1.0},
		{R: 1.0, G: 0.5, B: 0.3},
		{R: 0.4, G: 0.9, B: 0.5},
		{R: 0.9, G: 0.4, B: 0.8},
	}
	return palette[i%len(palette)]
}

// Binary seeds two bodies of equal mass on a mutual circular orbit about
// their common center of mass, separated by sep.
func Binary(s *body.Store, g, mass, sep float64) {
	v := math.Sqrt(g * mass / (2 * sep))
	s.AddWithDensity(body.Vec2{X: -sep / 2, Y: 0}, body.Vec2{X: 0, Y: -v}, mass, 1.0, body.Color{R: 1, G: 0.8, B: 0.6})
	s.AddWithDensity(body.Vec2{X: sep / 2, Y: 0}, body.Vec2{X: 0, Y: v}, mass, 1.0, body.Color{R: 0.6, G: 0.8, B: 1.0})
}

// GalaxyDisc seeds a central massive core plus n stars scattered in an
// exponential disc with approximately circular orbital velocities, the
// way the teacher's Hybrid.DefaultState seeds its gas disc
// (internal/physics/hybrid.go) but for point-mass stars rather than SPH
// particles. seed makes the scatter reproducible.
func GalaxyDisc(s *body.Store, g float64, n int, seed int64) {
	coreMass := 500000.0
	s.AddWithDensity(body.Vec2{}, body.Vec2{}, coreMass, 50.0, body.Color{R: 1, G: 1, B: 0.8})
	core := s.At(s.Len() - 1)
	core.Fixed = true

	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		r := 20.0 + math.Abs(rnd.NormFloat64())*80.0 + rnd.ExpFloat64()*20.0
		if r > 400 {
			r = 400
		}
		angle := rnd.Float64() * 2 * math.Pi
		pos := body.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}

		v := math.Sqrt(g * coreMass / r)
		vel := body.Vec2{X: -v * math.Sin(angle), Y: v * math.Cos(angle)}

		mass := 0.5 + rnd.Float64()*2.0
		s.AddWithDensity(pos, vel, mass, 1.0, starColor(rnd))
	}
}

func starColor(rnd *rand.Rand) body.Color {
	t := rnd.Float64()
	return body.Color{R: 0.6 + 0.4*t, G: 0.6 + 0.3*t, B: 1.0 - 0.5*t}
}

// Cluster seeds n bodies of randomized mass at rest, scattered within
// radius of the origin (distance drawn uniformly from [0, radius), so
// bodies crowd toward the centre), with no net orbital structure -- suited to
// exercising the collision resolver and Barnes-Hut relaxation from a
// cold, clumpy start.
func Cluster(s *body.Store, n int, radius float64, seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		r := rnd.Float64() * radius
		angle := rnd.Float64() * 2 * math.Pi
		pos := body.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
		mass := 1.0 + rnd.Float64()*5
		s.AddWithDensity(pos, body.Vec2{}, mass, 0.3, clusterColor(rnd))
	}
}

func clusterColor(rnd *rand.Rand) body.Color {
	v := 0.5 + rnd.Float64()*0.5
	return body.Color{R: v, G: v, B: v}
}
