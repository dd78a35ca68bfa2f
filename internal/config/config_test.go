package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.App != "impulse" {
		t.Errorf("expected app impulse, got %s", cfg.App)
	}
	if cfg.Harmonics != 6 {
		t.Errorf("expected 6 harmonics, got %d", cfg.Harmonics)
	}
	if cfg.GridSize != 1001 {
		t.Errorf("expected 1001 points, got %d", cfg.GridSize)
	}
	if cfg.ZoomFactor != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cfg.ZoomFactor)
	}
	if !cfg.SettingsOpen {
		t.Error("settings panel should start open")
	}
	if cfg.ForceRepaint {
		t.Error("force repaint should start off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero harmonics", func(c *Config) { c.Harmonics = 0 }},
		{"seven harmonics", func(c *Config) { c.Harmonics = 7 }},
		{"tiny grid", func(c *Config) { c.GridSize = 1 }},
		{"zero omega", func(c *Config) { c.Omega = 0 }},
		{"zoom low", func(c *Config) { c.ZoomFactor = 0.4 }},
		{"zoom high", func(c *Config) { c.ZoomFactor = 3.5 }},
		{"history len", func(c *Config) { c.FrameHistory.MaxLen = 0 }},
		{"history age", func(c *Config) { c.FrameHistory.MaxAge = 0 }},
		{"unknown app", func(c *Config) { c.App = "hammer" }},
		{"misspelled log level", func(c *Config) { c.LogLevel = "inof" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")
	if err := os.WriteFile(path, []byte("log_level: verbose\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for log_level, got %v", err)
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.1, 0.5}, {0.5, 0.5}, {1.04, 1.0}, {1.06, 1.1}, {2.96, 3.0}, {9, 3.0},
	}
	for _, tt := range tests {
		if got := ClampZoom(tt.in); got != tt.want {
			t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")

	cfg := DefaultConfig()
	cfg.App = "asym"
	cfg.ZoomFactor = 1.5
	cfg.ForceRepaint = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.App != "asym" || loaded.ZoomFactor != 1.5 || !loaded.ForceRepaint {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("harmonics: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Harmonics != 3 {
		t.Errorf("expected 3 harmonics, got %d", cfg.Harmonics)
	}
	if cfg.GridSize != 1001 || cfg.FrameHistory.MaxLen != 120 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("impulse", "single")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Harmonics != 1 {
		t.Errorf("expected 1 harmonic, got %d", cfg.Harmonics)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("impulse", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "single"); cfg != nil {
		t.Error("expected nil for nonexistent app")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("impulse")
	want := []string{"full", "pair", "single"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %v, got %v", want, presets)
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent app")
	}
}

func TestApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Apply(GetPreset("impulse", "pair"))
	if cfg.Harmonics != 2 || cfg.App != "impulse" {
		t.Errorf("preset not applied: %+v", cfg)
	}
	cfg.Apply(nil)
	if cfg.Harmonics != 2 {
		t.Error("nil preset changed config")
	}
}
