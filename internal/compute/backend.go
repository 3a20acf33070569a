package compute

// Backend computes pairwise gravitational forces for a body population.
type Backend interface {
	Name() string
	Available() bool
	NBodyForces(positions []float64, masses []float64, g, softening float64) (ax, ay []float64)
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

// SetBackend replaces the active backend, cleaning up the previous one.
func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

// GetBackend returns the currently active backend.
func GetBackend() Backend {
	return activeBackend
}

// AutoSelectBackend picks GPU if available, else CPU.
func AutoSelectBackend() Backend {
	gpu := NewGPUBackend()
	if gpu.Available() {
		return gpu
	}
	return NewCPUBackend()
}
