package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BlockSize != 256 {
		t.Errorf("expected block size 256, got %d", cfg.BlockSize)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("expected tick 250ms, got %s", cfg.TickInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero block size", func(c *Config) { c.BlockSize = 0 }, false},
		{"negative block size", func(c *Config) { c.BlockSize = -4 }, false},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, false},
		{"threshold too high", func(c *Config) { c.HighEntropyThreshold = 8.5 }, false},
		{"threshold max", func(c *Config) { c.HighEntropyThreshold = 8 }, true},
		{"zero threshold", func(c *Config) { c.HighEntropyThreshold = 0 }, false},
		{"negative threshold", func(c *Config) { c.HighEntropyThreshold = -1 }, false},
		{"empty plot", func(c *Config) { c.Plot.Width = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entui.yaml")
	cfg := DefaultConfig()
	cfg.BlockSize = 1024
	cfg.Theme = "ocean"
	cfg.HexOffsets = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.BlockSize != 1024 || loaded.Theme != "ocean" || !loaded.HexOffsets {
		t.Errorf("unexpected config after round trip: %+v", loaded)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entui.yaml")
	if err := os.WriteFile(path, []byte("block_size: 512\ntick_interval: 100ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BlockSize != 512 {
		t.Errorf("expected block size 512, got %d", cfg.BlockSize)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("expected tick 100ms, got %s", cfg.TickInterval)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("coarse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.BlockSize != 4096 {
		t.Errorf("expected block size 4096, got %d", cfg.BlockSize)
	}
	cfg.BlockSize = 1
	if Presets["coarse"].BlockSize != 4096 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, p := range names {
		if err := Presets[p].Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", p, err)
		}
	}
}
