package main

import (
	"os"

	"gopkg.in/yaml.v3"

	stipple "github.com/kbkmn/weighted-voronoi-stippling/core"
)

const (
	// DefaultTicks is the number of relaxation frames run over a still image.
	DefaultTicks = 40
	// DefaultScale is the dot radius in pixels at full ink weight.
	DefaultScale = 3.0
	// DefaultDelay is the GIF frame delay in hundredths of a second.
	DefaultDelay = 4
)

// Config mirrors the command line options for reproducible batch runs.
// Values from a config file fill in every option whose flag was not given
// explicitly; explicit flags always win.
type Config struct {
	Points    int     `yaml:"points"`
	Blend     float64 `yaml:"blend"`
	Curve     string  `yaml:"curve"`
	Ticks     int     `yaml:"ticks"`
	Scale     float64 `yaml:"scale"`
	Width     int     `yaml:"width"`
	Blur      float64 `yaml:"blur"`
	Wireframe bool    `yaml:"wireframe"`
	Seed      int64   `yaml:"seed"`
	Delay     int     `yaml:"delay"`
}

func defaultConfig() *Config {
	return &Config{
		Points: stipple.DefaultCount,
		Blend:  stipple.DefaultBlend,
		Curve:  stipple.CurveLinear.String(),
		Ticks:  DefaultTicks,
		Scale:  DefaultScale,
		Delay:  DefaultDelay,
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
