package body

// Store is the sole owner of a population of Bodies. Bodies are addressed
// by stable Handle for anything that must survive a Remove; plain slice
// index is only valid for the duration of a single pass over Iter.
type Store struct {
	bodies []*Body
	nextID int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Add creates a Body with the given position, velocity, and mass, using
// DefaultDensity, and returns its Handle.
func (s *Store) Add(pos, vel Vec2, mass float64) Handle {
	return s.AddWithDensity(pos, vel, mass, DefaultDensity, Color{1, 1, 1})
}

// AddWithDensity creates a Body with an explicit density and color.
func (s *Store) AddWithDensity(pos, vel Vec2, mass, density float64, color Color) Handle {
	if mass < MinMass {
		mass = MinMass
	}
	if density < MinDensity {
		density = MinDensity
	}
	h := Handle{id: s.nextID}
	s.nextID++
	b := &Body{
		handle:  h,
		Pos:     pos,
		Vel:     vel,
		Mass:    mass,
		Density: density,
		Color:   color,
		Trail:   NewTrail(TrailCapacity),
	}
	b.Radius = derivedRadius(b.Mass, b.Density)
	s.bodies = append(s.bodies, b)
	return h
}

// Remove deletes the Body identified by h, if present. O(N). Selected and
// dragged are fields on the Body itself, not a separate index, so there is
// no cache to invalidate here.
func (s *Store) Remove(h Handle) {
	for i, b := range s.bodies {
		if b.handle == h {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// Clear removes every Body.
func (s *Store) Clear() {
	s.bodies = s.bodies[:0]
}

// Len returns the number of Bodies currently stored.
func (s *Store) Len() int { return len(s.bodies) }

// At returns the Body at the given slice index, valid only until the next
// Add/Remove/Clear.
func (s *Store) At(i int) *Body { return s.bodies[i] }

// Get returns the Body for h, or nil if it is no longer present.
func (s *Store) Get(h Handle) *Body {
	for _, b := range s.bodies {
		if b.handle == h {
			return b
		}
	}
	return nil
}

// Iter calls fn for every Body, stopping early if fn returns false.
func (s *Store) Iter(fn func(*Body) bool) {
	for _, b := range s.bodies {
		if !fn(b) {
			return
		}
	}
}

// FindByPosition returns the handle of the first Body within tolerance of
// p, preferring the caller-supplied tolerance; if tolerance <= 0, each
// body's own 2*Radius is used. ok is false if nothing matches.
func (s *Store) FindByPosition(p Vec2, tolerance float64) (Handle, bool) {
	for _, b := range s.bodies {
		tol := tolerance
		if tol <= 0 {
			tol = 2 * b.Radius
		}
		if b.Pos.Sub(p).Len() <= tol {
			return b.handle, true
		}
	}
	return Handle{}, false
}
