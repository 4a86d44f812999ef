// Package skelcfg: Config, the recognized option set, plus functional
// options and YAML load/save. Options apply in order over defaults.

package skelcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every recognized runner option.
type Config struct {
	FileName       string `yaml:"fileName"`
	OutputFileName string `yaml:"outputFileName"`
	NotXMon        bool   `yaml:"not_x_mon"`
	Duplicate      bool   `yaml:"duplicate"`
	Timings        bool   `yaml:"timings"`
	Verbose        bool   `yaml:"verbose"`
	TimingsPath    string `yaml:"timingsPath"`
}

// Option customizes a Config by mutation, applied in order after defaults.
type Option func(*Config)

// WithFileName sets the input path. Empty values are a no-op; Validate
// reports ErrMissingFileName for a Config left without one.
func WithFileName(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.FileName = path
		}
	}
}

// WithOutputFileName sets the mesh output path.
func WithOutputFileName(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.OutputFileName = path
		}
	}
}

// WithNotXMon toggles running the monotonicity analyzer rather than
// assuming x-axis monotonicity.
func WithNotXMon(v bool) Option {
	return func(c *Config) { c.NotXMon = v }
}

// WithDuplicate toggles the duplicate-input mesh debugging helper.
func WithDuplicate(v bool) Option {
	return func(c *Config) { c.Duplicate = v }
}

// WithTimings toggles CSV timing row emission and sets the CSV path.
func WithTimings(path string) Option {
	return func(c *Config) {
		c.Timings = path != ""
		c.TimingsPath = path
	}
}

// WithVerbose toggles intermediate-stage logging.
func WithVerbose(v bool) Option {
	return func(c *Config) { c.Verbose = v }
}

// Default returns a Config with every recognized option at its default:
// the input is assumed x-axis monotone (the analyzer only runs when
// not_x_mon is set), nothing duplicated, timed, or logged.
func Default() Config {
	return Config{
		OutputFileName: "out.mesh",
	}
}

// New builds a Config from defaults, then applies opts in order.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Load reads a Config from a YAML file at path, starting from Default so
// a partial file only overrides the fields it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("skelcfg: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("skelcfg: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("skelcfg: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("skelcfg: write %s: %w", path, err)
	}
	return nil
}

// Validate reports ErrMissingFileName if cfg has no input path set.
func (c Config) Validate() error {
	if c.FileName == "" {
		return ErrMissingFileName
	}
	return nil
}
