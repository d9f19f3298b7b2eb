// Package config provides configuration loading and validation for the CLI.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-scorer/internal/catalog"
)

// Environment variables read by ApplyEnvOverrides
const (
	EnvRegion   = "RESUME_SCORER_REGION"
	EnvRole     = "RESUME_SCORER_ROLE"
	EnvLogLevel = "RESUME_SCORER_LOG_LEVEL"
	EnvWorkers  = "RESUME_SCORER_WORKERS"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Scoring
	Region          string  `json:"region,omitempty" yaml:"region,omitempty"`                                             // Benchmark region (NA, Europe, LATAM or an alias)
	Role            string  `json:"role,omitempty" yaml:"role,omitempty"`                                                 // Role family for role scoring
	ExperienceYears float64 `json:"experience_years,omitempty" yaml:"experience_years,omitempty" validate:"gte=0,lte=60"` // Candidate years of experience

	// Limits
	TopK       int `json:"top_k,omitempty" yaml:"top_k,omitempty" validate:"gte=0,lte=100"`                     // Number of keywords to extract
	Workers    int `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0,lte=64"`                  // Concurrent résumé scorers for rank
	Dimensions int `json:"dimensions,omitempty" yaml:"dimensions,omitempty" validate:"omitempty,min=8,max=512"` // Word embedding dimensions

	// Behavior
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn warning error"` // slog level
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                                                              // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Region:     "North America",
		TopK:       10,
		Workers:    4,
		Dimensions: 100,
		LogLevel:   "info",
	}
}

// LoadConfig loads configuration from a JSON, .yaml or .yml file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their file keys
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values and that region
// and role, when set, name catalog entries.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value: %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Region == "" && c.Role == "" {
		return nil
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	if c.Region != "" {
		if _, err := cat.Region(c.Region); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.Role != "" {
		if _, err := cat.Role(c.Role); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Region == "" {
		result.Region = defaults.Region
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Numeric fields: use default if zero
	if result.ExperienceYears == 0 {
		result.ExperienceYears = defaults.ExperienceYears
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Dimensions == 0 {
		result.Dimensions = defaults.Dimensions
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnvOverrides replaces fields with RESUME_SCORER_* environment values when set.
func (c *Config) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvRole); v != "" {
		c.Role = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvWorkers, err)
		}
		c.Workers = workers
	}
	return nil
}
