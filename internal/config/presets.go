package config

import "sort"

// Presets are named block sizes trading resolution for speed.
var Presets = map[string]*Config{
	"fine": {
		BlockSize: 64, TickInterval: DefaultTickInterval, Theme: DefaultTheme,
		HighEntropyThreshold: 7.0, Plot: PlotConfig{Height: DefaultPlotHeight, Width: 120},
	},
	"default": DefaultConfig(),
	"coarse": {
		BlockSize: 4096, TickInterval: DefaultTickInterval, Theme: DefaultTheme,
		HighEntropyThreshold: 7.5, Plot: PlotConfig{Height: DefaultPlotHeight, Width: DefaultPlotWidth},
	},
	"sector": {
		BlockSize: 512, TickInterval: DefaultTickInterval, Theme: "retro",
		HighEntropyThreshold: DefaultHighThreshold, Plot: PlotConfig{Height: DefaultPlotHeight, Width: DefaultPlotWidth},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
