package compute

// GPUBackend is a permanently-unavailable stand-in for a hardware-
// accelerated kernel. spec.md places GPU compute out of scope for the
// physics core (the source system it describes ships a disabled compute
// path); rather than introduce a cgo/CUDA toolchain dependency this module
// cannot build or test, GPUBackend always reports Available() == false and
// falls through to CPUBackend so callers that check config.UseGPU still
// get correct results.
type GPUBackend struct{}

func NewGPUBackend() *GPUBackend {
	return &GPUBackend{}
}

func (g *GPUBackend) Name() string    { return "gpu (not available)" }
func (g *GPUBackend) Available() bool { return false }
func (g *GPUBackend) Cleanup()        {}

func (g *GPUBackend) NBodyForces(positions []float64, masses []float64, gravity, softening float64) ([]float64, []float64) {
	cpu := NewCPUBackend()
	return cpu.NBodyForces(positions, masses, gravity, softening)
}
