package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds all render settings loadable from a YAML file. Scene
// geometry is not configurable; scenes are built in code.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains image and sampling settings
type RenderConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Gamma           float64 `yaml:"gamma"`
	Workers         int     `yaml:"workers"` // 0 means one worker per CPU
	Seed            int64   `yaml:"seed"`
}

// OutputConfig contains output file settings
type OutputConfig struct {
	Format string `yaml:"format"` // ppm or png
	Dir    string `yaml:"dir"`
}

// DefaultConfig returns the baseline configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:           640,
			Height:          480,
			SamplesPerPixel: 16,
			MaxDepth:        5,
			Gamma:           2.2,
			Workers:         0,
			Seed:            42,
		},
		Output: OutputConfig{
			Format: "ppm",
			Dir:    "output",
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults, so a
// partial file only overrides the keys it names
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", r.MaxDepth)
	}
	if r.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", r.Gamma)
	}
	switch c.Output.Format {
	case "ppm", "png":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}
