// Package config loads and validates the indexer configuration from YAML
// files with environment-variable overrides. It provides typed structs for
// the pipeline, logging, and metrics subsystems.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	apperrors "github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PipelineConfig controls worker counts and where output artifacts land.
type PipelineConfig struct {
	Mappers   int    `yaml:"mappers"`
	Reducers  int    `yaml:"reducers"`
	OutputDir string `yaml:"outputDir"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server. The server is off by
// default; a batch run over a small corpus finishes before a scrape would.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Validate rejects worker counts the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Pipeline.Mappers < 1 {
		return fmt.Errorf("%w: mappers must be at least 1, got %d",
			apperrors.ErrInvalidWorkerCount, c.Pipeline.Mappers)
	}
	if c.Pipeline.Reducers < 1 {
		return fmt.Errorf("%w: reducers must be at least 1, got %d",
			apperrors.ErrInvalidWorkerCount, c.Pipeline.Reducers)
	}
	return nil
}

// defaultConfig returns a Config with defaults suitable for local runs.
func defaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Mappers:   4,
			Reducers:  4,
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads PII_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PII_PIPELINE_MAPPERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pipeline.Mappers = n
		}
	}
	if v := os.Getenv("PII_PIPELINE_REDUCERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Pipeline.Reducers = n
		}
	}
	if v := os.Getenv("PII_PIPELINE_OUTPUT_DIR"); v != "" {
		cfg.Pipeline.OutputDir = v
	}
	if v := os.Getenv("PII_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PII_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("PII_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("PII_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
