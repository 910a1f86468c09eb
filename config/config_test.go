package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60", cfg.Screen.TargetFPS)
	}
	if cfg.Run.TimeLimitSec != 10.0 {
		t.Errorf("time_limit_sec = %v, want 10", cfg.Run.TimeLimitSec)
	}
	if cfg.Pendulum.Damping != 0.96 {
		t.Errorf("damping = %v, want 0.96", cfg.Pendulum.Damping)
	}
	if cfg.Trail.Length != 8 {
		t.Errorf("trail length = %d, want 8", cfg.Trail.Length)
	}
	if cfg.Vortex.Particles != 100 {
		t.Errorf("vortex particles = %d, want 100", cfg.Vortex.Particles)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Derived.Anchor.X != 400 || cfg.Derived.Anchor.Y != 100 {
		t.Errorf("anchor = %+v, want (400, 100)", cfg.Derived.Anchor)
	}
	if math.Abs(cfg.Derived.InitialAngle-math.Pi/4) > 1e-12 {
		t.Errorf("initial angle = %v, want pi/4", cfg.Derived.InitialAngle)
	}
	if math.Abs(cfg.Derived.HexRotationStep-3*math.Pi/180) > 1e-12 {
		t.Errorf("hex rotation step = %v, want 3 degrees in radians", cfg.Derived.HexRotationStep)
	}
	if math.Abs(cfg.Derived.BeamHalfSpread-15*math.Pi/180) > 1e-12 {
		t.Errorf("beam half spread = %v, want 15 degrees in radians", cfg.Derived.BeamHalfSpread)
	}
	// Vortex center defaults to screen center
	if cfg.Derived.VortexCenter.X != 400 || cfg.Derived.VortexCenter.Y != 300 {
		t.Errorf("vortex center = %+v, want (400, 300)", cfg.Derived.VortexCenter)
	}
	if math.Abs(cfg.Derived.TickSeconds-1.0/60.0) > 1e-12 {
		t.Errorf("tick seconds = %v, want 1/60", cfg.Derived.TickSeconds)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	override := []byte("pendulum:\n  damping: 0.90\nvortex:\n  particles: 25\n")
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatalf("writing override file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	// Overridden fields
	if cfg.Pendulum.Damping != 0.90 {
		t.Errorf("damping = %v, want 0.90", cfg.Pendulum.Damping)
	}
	if cfg.Vortex.Particles != 25 {
		t.Errorf("vortex particles = %d, want 25", cfg.Vortex.Particles)
	}

	// Fields not present in the override keep their defaults
	if cfg.Pendulum.Length != 150 {
		t.Errorf("length = %v, want default 150", cfg.Pendulum.Length)
	}
	if cfg.Grid.Spacing != 15 {
		t.Errorf("grid spacing = %d, want default 15", cfg.Grid.Spacing)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load with missing file should return an error")
	}
}
