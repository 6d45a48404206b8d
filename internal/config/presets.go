package config

import "math"

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Scene:  "lorenz",
			Lorenz: LorenzConfig{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: 0.01, NumPoints: 2000, X: 10, Y: 10, Z: 10, Delta: 0.01},
		},
		"origin": {
			Scene:  "lorenz",
			Lorenz: LorenzConfig{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: 0.01, NumPoints: 2000, X: 1, Y: 1, Z: 1, Delta: 0.001},
		},
		"calm": {
			// Below the chaotic threshold: trajectories settle onto a fixed point.
			Scene:  "lorenz",
			Lorenz: LorenzConfig{Sigma: 10, Rho: 14, Beta: 8.0 / 3.0, Dt: 0.01, NumPoints: 2000, X: 10, Y: 10, Z: 10, Delta: 0.01},
		},
		"long": {
			Scene:  "lorenz",
			Lorenz: LorenzConfig{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: 0.005, NumPoints: 8000, X: 10, Y: 10, Z: 10, Delta: 0.01},
		},
	},
	"pendulum": {
		"standard": {
			Scene:    "pendulum",
			Pendulum: PendulumConfig{Length: 3.5, Gravity: 9.81, Theta0: math.Pi / 3, Damping: 0.1, Trail: 150},
		},
		"gentle": {
			Scene:    "pendulum",
			Pendulum: PendulumConfig{Length: 3.5, Gravity: 9.81, Theta0: 0.3, Damping: 0.05, Trail: 150},
		},
		"heavy": {
			Scene:    "pendulum",
			Pendulum: PendulumConfig{Length: 3.5, Gravity: 9.81, Theta0: math.Pi / 3, Damping: 0.5, Trail: 150},
		},
		"undamped": {
			Scene:    "pendulum",
			Pendulum: PendulumConfig{Length: 3.5, Gravity: 9.81, Theta0: math.Pi / 3, Damping: 0, Trail: 150},
		},
	},
	"complex": {
		"standard": {Scene: "complex"},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
