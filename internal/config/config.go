// Package config loads the settings of the localcopy command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/born-ml/localcopy/internal/layout"
	"github.com/born-ml/localcopy/internal/parallel"
	"gopkg.in/yaml.v3"
)

// Config holds all localcopy configuration.
type Config struct {
	Verify   VerifyConfig   `yaml:"verify"`
	Bench    BenchConfig    `yaml:"bench"`
	Parallel ParallelConfig `yaml:"parallel"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// VerifyConfig configures the verification scenarios.
type VerifyConfig struct {
	Extent   int      `yaml:"extent"`    // Extent of every dimension, including the league dimension.
	MaxRank  int      `yaml:"max_rank"`  // Highest rank below the league dimension to check.
	Layouts  []string `yaml:"layouts"`   // right, left
	TeamSize int      `yaml:"team_size"` // Lanes per team; 0 selects automatically.
}

// BenchConfig configures the copy benchmark.
type BenchConfig struct {
	Extent     int    `yaml:"extent"`
	Rank       int    `yaml:"rank"`
	Iterations int    `yaml:"iterations"`
	Layout     string `yaml:"layout"`
}

// ParallelConfig configures dispatch.
type ParallelConfig struct {
	Workers      int  `yaml:"workers"` // 0 uses the CPU count.
	MinChunkSize int  `yaml:"min_chunk_size"`
	Sequential   bool `yaml:"sequential"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Verify: VerifyConfig{
			Extent:  8,
			MaxRank: 7,
			Layouts: []string{"right", "left"},
		},
		Bench: BenchConfig{
			Extent:     64,
			Rank:       2,
			Iterations: 20,
			Layout:     "right",
		},
		Parallel: ParallelConfig{
			MinChunkSize: 64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verify.Extent < 1 {
		return fmt.Errorf("verify.extent must be >= 1, got %d", c.Verify.Extent)
	}
	if c.Verify.MaxRank < 1 || c.Verify.MaxRank+1 > layout.MaxRank {
		return fmt.Errorf("verify.max_rank must be in [1, %d], got %d", layout.MaxRank-1, c.Verify.MaxRank)
	}
	if _, err := c.VerifyLayouts(); err != nil {
		return err
	}
	if c.Bench.Extent < 1 || c.Bench.Iterations < 1 {
		return fmt.Errorf("bench.extent and bench.iterations must be >= 1")
	}
	if c.Bench.Rank < 1 || c.Bench.Rank+1 > layout.MaxRank {
		return fmt.Errorf("bench.rank must be in [1, %d], got %d", layout.MaxRank-1, c.Bench.Rank)
	}
	if _, err := layout.Parse(c.Bench.Layout); err != nil {
		return fmt.Errorf("bench.layout: %w", err)
	}
	if c.Parallel.Workers < 0 {
		return fmt.Errorf("parallel.workers must be >= 0, got %d", c.Parallel.Workers)
	}
	return nil
}

// VerifyLayouts parses the configured verification layouts.
func (c *Config) VerifyLayouts() ([]layout.Layout, error) {
	if len(c.Verify.Layouts) == 0 {
		return nil, fmt.Errorf("verify.layouts must not be empty")
	}
	layouts := make([]layout.Layout, 0, len(c.Verify.Layouts))
	for _, name := range c.Verify.Layouts {
		l, err := layout.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("verify.layouts: %w", err)
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

// ParallelConfig converts the dispatch settings to a parallel.Config.
func (c *Config) ParallelConfig() parallel.Config {
	cfg := parallel.DefaultConfig()
	if c.Parallel.Workers > 0 {
		cfg.NumWorkers = c.Parallel.Workers
		cfg.Enabled = c.Parallel.Workers > 1
	}
	if c.Parallel.MinChunkSize > 0 {
		cfg.MinChunkSize = c.Parallel.MinChunkSize
	}
	if c.Parallel.Sequential {
		cfg.Enabled = false
	}
	return cfg
}

// applyEnvOverrides applies LOCALCOPY_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LOCALCOPY_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOCALCOPY_WORKERS: %w", err)
		}
		c.Parallel.Workers = n
	}
	if v := os.Getenv("LOCALCOPY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}
