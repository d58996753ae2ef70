package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bianoble/dir-update/internal/logging"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a dir-update.yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// LoadLayered loads every discovered layer that exists and merges them,
// lowest precedence first. Missing layers are skipped unless the project
// layer is required. The returned layer list records what was loaded.
func LoadLayered(opts DiscoverOptions) (*Config, []ConfigLayerInfo, error) {
	layers := DiscoverPaths(opts)
	var configs []*Config

	for i := range layers {
		layer := &layers[i]
		cfg, err := Load(layer.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !(layer.Level == LevelProject && opts.ProjectRequired) {
				continue
			}
			layer.Err = err
			return nil, layers, err
		}
		layer.Loaded = true
		configs = append(configs, cfg)
	}

	if len(configs) == 0 {
		cfg := &Config{}
		cfg.ApplyDefaults()
		return cfg, layers, nil
	}

	merged, err := MergeAll(configs)
	if err != nil {
		return nil, layers, err
	}
	merged.ApplyDefaults()
	return merged, layers, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s validation failed:\n  - %s", e.Path, strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	// A missing version is fine; a wrong one is not.
	if cfg.Version != 0 && cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log: %s", err))
	}
	if cfg.Log.MaxSizeMB < 0 {
		errs = append(errs, fmt.Sprintf("log: 'max_size_mb' must not be negative, got %d", cfg.Log.MaxSizeMB))
	}
	if cfg.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Sprintf("log: 'max_backups' must not be negative, got %d", cfg.Log.MaxBackups))
	}
	if cfg.Log.MaxAgeDays < 0 {
		errs = append(errs, fmt.Sprintf("log: 'max_age_days' must not be negative, got %d", cfg.Log.MaxAgeDays))
	}

	return errs
}
