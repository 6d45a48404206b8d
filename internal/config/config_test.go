package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "lorenz" {
		t.Errorf("expected scene lorenz, got %s", cfg.Scene)
	}
	if cfg.Lorenz.Sigma != 10 || cfg.Lorenz.Rho != 28 {
		t.Error("unexpected default Lorenz coefficients")
	}
	if cfg.Lorenz.NumPoints != 2000 {
		t.Errorf("expected 2000 points, got %d", cfg.Lorenz.NumPoints)
	}
	if cfg.Render.FrameRate <= 0 {
		t.Error("frame rate should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Scene = "pendulum"
	cfg.Pendulum.Damping = 0.25
	cfg.Render.FrameRate = 60

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Scene != "pendulum" {
		t.Errorf("expected scene pendulum, got %s", loaded.Scene)
	}
	if loaded.Pendulum.Damping != 0.25 {
		t.Errorf("expected damping 0.25, got %f", loaded.Pendulum.Damping)
	}
	if loaded.Render.FrameRate != 60 {
		t.Errorf("expected frame rate 60, got %d", loaded.Render.FrameRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPendulumConfigParams(t *testing.T) {
	cfg := GetPreset("pendulum", "gentle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}

	p := cfg.Pendulum.Params()
	if p.Theta0 != 0.3 || p.Damping != 0.05 {
		t.Errorf("preset did not carry through: %+v", p)
	}
	if p.Length != 3.5 || p.Gravity != 9.81 {
		t.Errorf("unexpected geometry: %+v", p)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Lorenz.Rho != 28 {
		t.Errorf("expected rho 28, got %f", cfg.Lorenz.Rho)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("lorenz", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("lorenz")) == 0 {
		t.Error("expected presets for lorenz")
	}
	if len(ListPresets("pendulum")) == 0 {
		t.Error("expected presets for pendulum")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent scene")
	}
}
