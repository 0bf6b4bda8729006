package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ConfigPaths lists config files from highest to lowest priority.
var ConfigPaths = []string{
	"./.entui.yaml",
	"~/.config/entui/config.yaml",
}

// Loader resolves the effective configuration from files and ENTUI_*
// environment variables. Flags are applied by the caller.
type Loader struct {
	configPaths []string
	getenv      func(string) string
}

func NewLoader() *Loader {
	return &Loader{configPaths: ConfigPaths, getenv: os.Getenv}
}

// LoadConfig starts from defaults, applies the first existing file from the
// search paths (or only customPath when set), then environment overrides, and
// validates the result.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		loaded, err := Load(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
		cfg = loaded
	} else {
		for _, p := range l.configPaths {
			path := expandPath(p)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			loaded, err := Load(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
			cfg = loaded
			break
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	envMappings := map[string]func(string) error{
		"ENTUI_BLOCK_SIZE":     func(v string) error { return parseInt(v, &cfg.BlockSize) },
		"ENTUI_TICK_INTERVAL":  func(v string) error { return parseDuration(v, &cfg.TickInterval) },
		"ENTUI_THEME":          func(v string) error { cfg.Theme = v; return nil },
		"ENTUI_HEX_OFFSETS":    func(v string) error { return parseBool(v, &cfg.HexOffsets) },
		"ENTUI_HIGH_THRESHOLD": func(v string) error { return parseFloat(v, &cfg.HighEntropyThreshold) },
	}

	for envVar, setter := range envMappings {
		if value := l.getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}
	return nil
}

func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseFloat(v string, dst *float64) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func parseBool(v string, dst *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func parseDuration(v string, dst *time.Duration) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
