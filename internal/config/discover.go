package config

import (
	"cmp"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the default name of the configuration file.
const FileName = "dir-update.yaml"

// NoInheritEnv names the variable that restricts loading to the project file.
const NoInheritEnv = "DIR_UPDATE_NO_INHERIT"

// SystemConfigPath is the machine-wide configuration file.
var SystemConfigPath = filepath.Join("/etc", "dir-update", FileName)

// ConfigLevel represents the precedence level of a configuration file.
type ConfigLevel string

const (
	LevelSystem  ConfigLevel = "system"
	LevelUser    ConfigLevel = "user"
	LevelProject ConfigLevel = "project"
)

// ConfigLayerInfo describes a discovered config file and its load status.
type ConfigLayerInfo struct {
	Err    error // non-nil if the file exists but failed to load
	Path   string
	Level  ConfigLevel
	Loaded bool
}

// DiscoverOptions selects the files LoadLayered reads. Empty paths fall
// back to the defaults.
type DiscoverOptions struct {
	ProjectPath      string // --config; FileName in the working directory
	ProjectRequired  bool   // a missing project file is an error
	SystemConfigPath string // SystemConfigPath
	UserConfigPath   string // dir-update/dir-update.yaml under os.UserConfigDir
	NoInherit        bool   // only the project layer
}

// DiscoverPaths lists the layers in merge order: system, user, project.
// A file reachable through two layers is read once, at its first level.
func DiscoverPaths(opts DiscoverOptions) []ConfigLayerInfo {
	candidates := []ConfigLayerInfo{
		{Level: LevelProject, Path: cmp.Or(opts.ProjectPath, FileName)},
	}
	if !opts.NoInherit {
		candidates = append([]ConfigLayerInfo{
			{Level: LevelSystem, Path: cmp.Or(opts.SystemConfigPath, SystemConfigPath)},
			{Level: LevelUser, Path: cmp.Or(opts.UserConfigPath, userConfigPath())},
		}, candidates...)
	}

	var layers []ConfigLayerInfo
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.Path == "" {
			continue
		}
		key := c.Path
		if abs, err := filepath.Abs(c.Path); err == nil {
			key = abs
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		layers = append(layers, c)
	}
	return layers
}

// userConfigPath is empty when the platform has no user config directory.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dir-update", FileName)
}

// EnvNoInherit reports whether NoInheritEnv is "1" or "true".
func EnvNoInherit() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(NoInheritEnv)))
	return v == "1" || v == "true"
}
