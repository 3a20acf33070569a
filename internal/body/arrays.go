package body

// Arrays is a structure-of-arrays mirror of a Store, refreshed before each
// physics step so the force kernels can iterate over contiguous slices
// instead of a slice-of-pointers. It is a derived scratch buffer, never a
// source of truth.
type Arrays struct {
	PosX, PosY []float64
	VelX, VelY []float64
	AccX, AccY []float64
	FX, FY     []float64
	Mass       []float64
	Radius     []float64
	Color      []Color
	Fixed      []bool
	Dragged    []bool
}

// Refresh resizes (if needed) and repopulates a from the current contents
// of s.
func (a *Arrays) Refresh(s *Store) {
	n := s.Len()
	a.ensure(n)
	for i := 0; i < n; i++ {
		b := s.At(i)
		a.PosX[i], a.PosY[i] = b.Pos.X, b.Pos.Y
		a.VelX[i], a.VelY[i] = b.Vel.X, b.Vel.Y
		a.AccX[i], a.AccY[i] = b.Acc.X, b.Acc.Y
		a.FX[i], a.FY[i] = 0, 0
		a.Mass[i] = b.Mass
		a.Radius[i] = b.Radius
		a.Color[i] = b.Color
		a.Fixed[i] = b.Fixed
		a.Dragged[i] = b.Dragged
	}
}

func (a *Arrays) ensure(n int) {
	if len(a.PosX) == n {
		return
	}
	a.PosX = make([]float64, n)
	a.PosY = make([]float64, n)
	a.VelX = make([]float64, n)
	a.VelY = make([]float64, n)
	a.AccX = make([]float64, n)
	a.AccY = make([]float64, n)
	a.FX = make([]float64, n)
	a.FY = make([]float64, n)
	a.Mass = make([]float64, n)
	a.Radius = make([]float64, n)
	a.Color = make([]Color, n)
	a.Fixed = make([]bool, n)
	a.Dragged = make([]bool, n)
}

// Len returns the number of entries currently mirrored.
func (a *Arrays) Len() int { return len(a.PosX) }
