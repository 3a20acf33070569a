package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/config"
	"github.com/san-kum/nbody2d/internal/engine"
	"github.com/san-kum/nbody2d/internal/forces"
)

// These specs implement spec.md §8's literal end-to-end scenarios S1-S6.

var _ = Describe("S1 two-body circular orbit", func() {
	It("returns B near its start and keeps energy drift under 1%", func() {
		s := body.NewStore()
		s.Add(body.Vec2{X: 0, Y: 0}, body.Vec2{}, 1.0)
		s.Add(body.Vec2{X: 1, Y: 0}, body.Vec2{X: 0, Y: 1.0}, 1e-3)

		cfg := config.DefaultConfig()
		cfg.GravitationalConstant = 1.0
		cfg.SofteningLength = 1e-3
		cfg.UseBarnesHut = false
		cfg.EnableCollisions = false
		cfg.Integrator = "leapfrog"
		e := engine.New(cfg)

		e0 := e.Energy(s).Total
		start := s.At(1).Pos

		// One full orbital period at v=1, r=1 is T=2*pi/v=2*pi; stepping a
		// whole period back to the start (rather than the spec's literal
		// 10^4 steps, which lands mid-orbit at t=10 != k*2*pi) is what
		// makes "returns near its start" a meaningful assertion.
		period := 2 * math.Pi / 1e-3
		steps := int(period)
		for i := 0; i < steps; i++ {
			Expect(e.Step(s, 1e-3)).To(Succeed())
		}

		end := s.At(1).Pos
		dist := end.Sub(start).Len()
		Expect(dist).To(BeNumerically("<", 2*cfg.SofteningLength))

		e1 := e.Energy(s).Total
		Expect(math.Abs(e1-e0) / math.Abs(e0)).To(BeNumerically("<", 1e-2))
	})
})

var _ = Describe("S2 three-body head-on collinear system", func() {
	It("keeps total momentum at zero for 1000 steps", func() {
		s := body.NewStore()
		s.Add(body.Vec2{X: -1, Y: 0}, body.Vec2{}, 1.0)
		s.Add(body.Vec2{X: 0, Y: 0}, body.Vec2{}, 1.0)
		s.Add(body.Vec2{X: 1, Y: 0}, body.Vec2{}, 1.0)

		cfg := config.DefaultConfig()
		cfg.SofteningLength = 1e-3
		cfg.UseBarnesHut = false
		cfg.EnableCollisions = false
		e := engine.New(cfg)

		for i := 0; i < 1000; i++ {
			Expect(e.Step(s, 1e-3)).To(Succeed())

			var px, py float64
			for j := 0; j < s.Len(); j++ {
				b := s.At(j)
				px += b.Mass * b.Vel.X
				py += b.Mass * b.Vel.Y
			}
			Expect(math.Abs(px)).To(BeNumerically("<", 1e-6))
			Expect(math.Abs(py)).To(BeNumerically("<", 1e-6))
		}
	})
})

var _ = Describe("S3 direct vs Barnes-Hut force agreement", func() {
	It("agrees with direct summation within 1% per-body relative L2 error", func() {
		s := body.NewStore()
		rnd := newLCG(11)
		for i := 0; i < 500; i++ {
			x := rnd()*20 - 10
			y := rnd()*20 - 10
			m := rnd()*3 + 0.5
			s.Add(body.Vec2{X: x, Y: y}, body.Vec2{}, m)
		}

		direct := &body.Arrays{}
		direct.Refresh(s)
		tree := &body.Arrays{}
		tree.Refresh(s)

		cfgDirect := config.DefaultConfig()
		cfgDirect.UseBarnesHut = false
		cfgDirect.MaxBodiesForDirect = 100000

		cfgTree := config.DefaultConfig()
		cfgTree.UseBarnesHut = true
		cfgTree.MaxBodiesForDirect = 0
		cfgTree.BarnesHutTheta = 0.3

		forces.Evaluate(direct, cfgDirect)
		forces.Evaluate(tree, cfgTree)

		var errSum, magSum float64
		for i := 0; i < direct.Len(); i++ {
			dx := tree.FX[i] - direct.FX[i]
			dy := tree.FY[i] - direct.FY[i]
			errSum += dx*dx + dy*dy
			magSum += direct.FX[i]*direct.FX[i] + direct.FY[i]*direct.FY[i]
		}
		relErr := math.Sqrt(errSum / magSum)
		Expect(relErr).To(BeNumerically("<", 1e-2))
	})
})

var _ = Describe("S4 elastic head-on collision", func() {
	It("exchanges velocities between equal masses and conserves momentum and KE", func() {
		s := body.NewStore()
		s.Add(body.Vec2{X: -1, Y: 0}, body.Vec2{X: 1, Y: 0}, 1.0)
		s.Add(body.Vec2{X: 1, Y: 0}, body.Vec2{X: -1, Y: 0}, 1.0)
		s.At(0).Radius = 2
		s.At(1).Radius = 2

		cfg := config.DefaultConfig()
		cfg.GravitationalConstant = 0
		cfg.UseBarnesHut = false
		cfg.EnableCollisions = true
		cfg.Restitution = 1.0
		e := engine.New(cfg)

		Expect(e.Step(s, 1e-3)).To(Succeed())

		Expect(s.At(0).Vel.X).To(BeNumerically("~", -1, 1e-6))
		Expect(s.At(1).Vel.X).To(BeNumerically("~", 1, 1e-6))
	})
})

var _ = Describe("S5 trail ring-buffer churn", func() {
	It("retains exactly the last 4 pushed points, oldest to newest", func() {
		tr := body.NewTrail(4)
		points := make([]body.Vec2, 10)
		for i := range points {
			points[i] = body.Vec2{X: float64(i + 1), Y: 0}
			tr.Push(points[i])
		}

		Expect(tr.Len()).To(Equal(4))
		for i := 0; i < 4; i++ {
			got, err := tr.Get(i)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(points[6+i]))
		}
	})
})

var _ = Describe("S6 fixed body invariance", func() {
	It("keeps a fixed mass's position and velocity exactly at their initial values", func() {
		s := body.NewStore()
		h := s.Add(body.Vec2{X: 0, Y: 0}, body.Vec2{}, 1000.0)
		s.Get(h).Fixed = true
		s.Add(body.Vec2{X: 30, Y: 0}, body.Vec2{X: 0, Y: 5.7}, 1.0)

		cfg := config.DefaultConfig()
		cfg.EnableCollisions = false
		e := engine.New(cfg)

		for i := 0; i < 1000; i++ {
			Expect(e.Step(s, 1e-3)).To(Succeed())
		}

		fixed := s.Get(h)
		Expect(fixed.Pos).To(Equal(body.Vec2{X: 0, Y: 0}))
		Expect(fixed.Vel).To(Equal(body.Vec2{X: 0, Y: 0}))
	})
})

// newLCG returns a tiny deterministic PRNG closure, matching the one used
// in internal/forces' test suite, so S3's fixed-seed claim is reproducible
// without depending on math/rand's version-specific stream.
func newLCG(seed int64) func() float64 {
	state := uint64(seed*2654435761 + 1)
	return func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>33) / float64(1<<31)
	}
}
