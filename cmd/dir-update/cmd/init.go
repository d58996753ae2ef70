package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initTemplate is the default dir-update.yaml scaffold. Every setting is
// optional; the commented values show the defaults.
const initTemplate = `# dir-update configuration
# Command-line flags take precedence over these settings.
version: 1

# Print a line for every skipped (unchanged) file too.
verbose: false

# log:
#   file: /var/log/dir-update/dir-update.log
#   level: info          # debug, info, warn, error
#   max_size_mb: 10      # rotate after this many megabytes
#   max_backups: 3       # rotated files to keep
#   max_age_days: 0      # 0 keeps rotated files regardless of age
#   compress: false      # gzip rotated files
`

// runInit writes initTemplate to the --config path.
func runInit(cmd *cobra.Command) error {
	outPath := configPath
	if !filepath.IsAbs(outPath) {
		abs, err := filepath.Abs(outPath)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
		outPath = abs
	}

	if !initForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		}
	}

	if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	info(cmd, "Created %s", outPath)
	info(cmd, "")
	info(cmd, "Next steps:")
	info(cmd, "  1. Edit the file to enable logging or verbose output")
	info(cmd, "  2. Run 'dir-update --config %s FROM TO'", outPath)
	return nil
}
