package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chaoscope/internal/pendulum"
	"github.com/san-kum/chaoscope/internal/render"
)

// Default Lorenz staging values.
const (
	DefaultSigma     = 10.0
	DefaultRho       = 28.0
	DefaultBeta      = 8.0 / 3.0
	DefaultDt        = 0.01
	DefaultNumPoints = 2000
)

type Config struct {
	Scene    string         `yaml:"scene"`
	Render   render.Options `yaml:"render"`
	Lorenz   LorenzConfig   `yaml:"lorenz"`
	Pendulum PendulumConfig `yaml:"pendulum"`
}

type LorenzConfig struct {
	Sigma     float64 `yaml:"sigma"`
	Rho       float64 `yaml:"rho"`
	Beta      float64 `yaml:"beta"`
	Dt        float64 `yaml:"dt"`
	NumPoints int     `yaml:"num_points"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         float64 `yaml:"z"`
	Delta     float64 `yaml:"delta"`
}

type PendulumConfig struct {
	Length  float64 `yaml:"length"`
	Gravity float64 `yaml:"gravity"`
	Theta0  float64 `yaml:"theta0"`
	Damping float64 `yaml:"damping"`
	Trail   int     `yaml:"trail"`
}

// Params converts the config section into the scene's kinematic parameters.
func (p PendulumConfig) Params() pendulum.Params {
	return pendulum.Params{
		Length:  p.Length,
		Gravity: p.Gravity,
		Theta0:  p.Theta0,
		Damping: p.Damping,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Scene:  "lorenz",
		Render: render.DefaultOptions(),
		Lorenz: LorenzConfig{
			Sigma:     DefaultSigma,
			Rho:       DefaultRho,
			Beta:      DefaultBeta,
			Dt:        DefaultDt,
			NumPoints: DefaultNumPoints,
			X:         10, Y: 10, Z: 10,
			Delta: 0.01,
		},
		Pendulum: PendulumConfig{
			Length:  3.5,
			Gravity: 9.81,
			Theta0:  math.Pi / 3,
			Damping: 0.1,
			Trail:   150,
		},
	}
}

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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
