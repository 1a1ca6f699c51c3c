package main

import (
	"os"
	"path/filepath"
	"testing"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stipple.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed writing the config fixture: %v", err)
	}
	return path
}

func TestConfig_LoadShouldOverlayDefaults(t *testing.T) {
	path := writeConfig(t, "points: 800\nblend: 0.7\ncurve: squared\nwireframe: true\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("failed loading the config: %v", err)
	}
	if cfg.Points != 800 || cfg.Blend != 0.7 || cfg.Curve != "squared" || !cfg.Wireframe {
		t.Fatalf("Expected the file values to apply, got %+v", cfg)
	}
	if cfg.Ticks != DefaultTicks || cfg.Delay != DefaultDelay || cfg.Scale != DefaultScale {
		t.Fatalf("Expected untouched options to keep their defaults, got %+v", cfg)
	}
}

func TestConfig_LoadShouldRejectBadInput(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Expected an error for a missing file")
	}

	path := writeConfig(t, "points: [not a number\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("Expected an error for malformed yaml")
	}
}

func TestConfig_DefaultsShouldMatchEngine(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Points != stipple.DefaultCount || cfg.Blend != stipple.DefaultBlend {
		t.Fatalf("Expected the engine defaults, got %+v", cfg)
	}
	if _, err := stipple.ParseCurve(cfg.Curve); err != nil {
		t.Fatalf("Expected a parsable default curve, got %v", err)
	}
}
