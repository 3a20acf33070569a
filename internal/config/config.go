package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Constants named in spec.md §6, not part of the tunable Config record.
const (
	MinRadius          = 2.0
	MaxRadius          = 100.0
	DefaultDensity     = 0.1
	MaxSpeed           = 500.0
	MaxForceDirect     = 1e4
	MinNodeSize        = 0.1
	NodePadding        = 1.05
	MinPairSeparation  = 1e-6
	DefaultTheta       = 0.5
)

// Config is the physics engine's read/write configuration snapshot
// (spec.md §6). Mutation is only observed at step boundaries.
type Config struct {
	GravitationalConstant float64 `yaml:"gravitational_constant"`
	TimeStep              float64 `yaml:"time_step"`
	TimeScale             float64 `yaml:"time_scale"`
	SofteningLength       float64 `yaml:"softening_length"`
	DampingFactor         float64 `yaml:"damping_factor"`

	UseBarnesHut       bool    `yaml:"use_barnes_hut"`
	BarnesHutTheta     float64 `yaml:"barnes_hut_theta"`
	MaxBodiesForDirect int     `yaml:"max_bodies_for_direct"`
	UseGPU             bool    `yaml:"use_gpu"`

	EnableCollisions bool    `yaml:"enable_collisions"`
	Restitution      float64 `yaml:"restitution"`

	AdaptiveTimeStep bool    `yaml:"adaptive_time_step"`
	MinTimeStep      float64 `yaml:"min_time_step"`
	MaxTimeStep      float64 `yaml:"max_time_step"`

	Integrator string `yaml:"integrator"`
}

// DefaultConfig returns the defaults enumerated in spec.md §6.
func DefaultConfig() *Config {
	return &Config{
		GravitationalConstant: 1.0,
		TimeStep:              0.016,
		TimeScale:             1.0,
		SofteningLength:       0.1,
		DampingFactor:         1.0,
		UseBarnesHut:          true,
		BarnesHutTheta:        DefaultTheta,
		MaxBodiesForDirect:    1000,
		EnableCollisions:      true,
		Restitution:           0.8,
		AdaptiveTimeStep:      false,
		MinTimeStep:           0.001,
		MaxTimeStep:           0.033,
		Integrator:            "leapfrog",
	}
}

// Load reads a YAML config file, applying it over DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
