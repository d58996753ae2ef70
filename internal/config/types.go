package config

// Config represents a dir-update.yaml configuration file. Every field is
// optional; command-line flags take precedence over it.
type Config struct {
	Version int       `yaml:"version,omitempty"`
	Verbose *bool     `yaml:"verbose,omitempty"`
	Log     LogConfig `yaml:"log,omitempty"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	Level      string `yaml:"level,omitempty"` // "debug", "info", "warn", "error"
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   *bool  `yaml:"compress,omitempty"`
}

// Default log rotation settings, used when a layer sets a log file but no limits.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
)

// IsVerbose reports whether the config asks for verbose output.
func (c *Config) IsVerbose() bool {
	return c.Verbose != nil && *c.Verbose
}

// ApplyDefaults fills unset rotation limits.
func (c *Config) ApplyDefaults() {
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = DefaultMaxBackups
	}
}
