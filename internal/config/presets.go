package config

// Presets is a catalogue of named engine tunings, following the teacher's
// map-of-named-configs shape (internal/config/presets.go) collapsed from a
// per-model map to a flat map since this module has a single domain.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"exact": {
		GravitationalConstant: 1.0,
		TimeStep:              0.01,
		TimeScale:             1.0,
		SofteningLength:       0.05,
		DampingFactor:         1.0,
		UseBarnesHut:          false,
		BarnesHutTheta:        0.0,
		MaxBodiesForDirect:    100000,
		EnableCollisions:      true,
		Restitution:           0.8,
		MinTimeStep:           0.001,
		MaxTimeStep:           0.033,
		Integrator:            "leapfrog",
	},
	"fast-approximate": {
		GravitationalConstant: 1.0,
		TimeStep:              0.02,
		TimeScale:             1.0,
		SofteningLength:       0.2,
		DampingFactor:         0.999,
		UseBarnesHut:          true,
		BarnesHutTheta:        0.8,
		MaxBodiesForDirect:    200,
		EnableCollisions:      false,
		Restitution:           0.8,
		MinTimeStep:           0.001,
		MaxTimeStep:           0.05,
		Integrator:            "leapfrog",
	},
	"elastic-billiards": {
		GravitationalConstant: 0.0,
		TimeStep:              0.01,
		TimeScale:             1.0,
		SofteningLength:       0.1,
		DampingFactor:         1.0,
		UseBarnesHut:          false,
		BarnesHutTheta:        0.5,
		MaxBodiesForDirect:    1000,
		EnableCollisions:      true,
		Restitution:           1.0,
		MinTimeStep:           0.001,
		MaxTimeStep:           0.033,
		Integrator:            "leapfrog",
	},
}

// GetPreset returns a copy of the named preset, or nil if it is not found.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns all preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
