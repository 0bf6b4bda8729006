package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBlockSize     = 256
	DefaultTickInterval  = 250 * time.Millisecond
	DefaultTheme         = "cyberpunk"
	DefaultHighThreshold = 7.2
	DefaultPlotHeight    = 12
	DefaultPlotWidth     = 80
)

type Config struct {
	BlockSize            int           `yaml:"block_size"`
	TickInterval         time.Duration `yaml:"tick_interval"`
	Theme                string        `yaml:"theme"`
	HexOffsets           bool          `yaml:"hex_offsets"`
	HighEntropyThreshold float64       `yaml:"high_entropy_threshold"`
	Plot                 PlotConfig    `yaml:"plot"`
}

// PlotConfig sizes the static asciigraph output.
type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		BlockSize:            DefaultBlockSize,
		TickInterval:         DefaultTickInterval,
		Theme:                DefaultTheme,
		HighEntropyThreshold: DefaultHighThreshold,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
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

// Validate rejects settings the analyzer or the TUI cannot run with.
func (c *Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("invalid block size %d: must be a positive integer", c.BlockSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %s: must be positive", c.TickInterval)
	}
	if c.HighEntropyThreshold <= 0 || c.HighEntropyThreshold > 8 {
		return fmt.Errorf("invalid high entropy threshold %.2f: must be within (0, 8]", c.HighEntropyThreshold)
	}
	if c.Plot.Height <= 0 || c.Plot.Width <= 0 {
		return fmt.Errorf("invalid plot size %dx%d", c.Plot.Width, c.Plot.Height)
	}
	return nil
}
