package config

import "fmt"

// Merge combines two configs where overlay takes precedence over base.
//   - version: must agree if both declare it (non-zero); fatal error on mismatch
//   - verbose, log.compress: overlay wins when set
//   - other log fields: overlay wins when non-zero
func Merge(base, overlay *Config) (*Config, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := &Config{}

	if err := mergeVersion(base.Version, overlay.Version, &result.Version); err != nil {
		return nil, err
	}

	result.Verbose = base.Verbose
	if overlay.Verbose != nil {
		result.Verbose = overlay.Verbose
	}

	result.Log = mergeLog(base.Log, overlay.Log)

	return result, nil
}

// MergeAll merges multiple configs in order (lowest precedence first).
// Returns an error if any version mismatch is found.
func MergeAll(configs []*Config) (*Config, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs to merge")
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		var err error
		result, err = Merge(result, configs[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func mergeVersion(base, overlay int, out *int) error {
	switch {
	case base == 0:
		*out = overlay
	case overlay == 0:
		*out = base
	case base == overlay:
		*out = base
	default:
		return fmt.Errorf("config version mismatch: one layer declares version %d, another declares version %d — all config layers must agree on version", base, overlay)
	}
	return nil
}

func mergeLog(base, overlay LogConfig) LogConfig {
	result := base
	if overlay.File != "" {
		result.File = overlay.File
	}
	if overlay.Level != "" {
		result.Level = overlay.Level
	}
	if overlay.MaxSizeMB != 0 {
		result.MaxSizeMB = overlay.MaxSizeMB
	}
	if overlay.MaxBackups != 0 {
		result.MaxBackups = overlay.MaxBackups
	}
	if overlay.MaxAgeDays != 0 {
		result.MaxAgeDays = overlay.MaxAgeDays
	}
	if overlay.Compress != nil {
		result.Compress = overlay.Compress
	}
	return result
}
