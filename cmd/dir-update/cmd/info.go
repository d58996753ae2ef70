package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// runInfo prints the version, every config layer that was considered and
// the settings that result from merging them.
func runInfo(cmd *cobra.Command) error {
	cfg, layers, err := loadConfigLayers(cmd)
	if err != nil {
		for _, l := range layers {
			if l.Err != nil {
				errorf(cmd, "%s config %s", l.Level, l.Path)
			}
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dir-update %s\n", version)

	fmt.Fprintln(out, "  config chain:")
	for _, layer := range layers {
		status := "not found"
		if layer.Loaded {
			status = "loaded"
		}
		fmt.Fprintf(out, "    %-10s %s (%s)\n", string(layer.Level)+":", layer.Path, status)
	}

	fmt.Fprintf(out, "  verbose:       %t\n", cfg.IsVerbose())
	if cfg.Log.File == "" {
		fmt.Fprintln(out, "  log file:      (none)")
		return nil
	}

	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	fmt.Fprintf(out, "  log file:      %s\n", cfg.Log.File)
	fmt.Fprintf(out, "  log level:     %s\n", level)
	fmt.Fprintf(out, "  log rotation:  %d MB, %d backups\n", cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	fmt.Fprintf(out, "  log usage:     %s\n", logUsage(cfg.Log.File, cfg.Log.MaxSizeMB))
	return nil
}

// logUsage reports how full the active log file is relative to the size at
// which lumberjack rotates it.
func logUsage(path string, maxSizeMB int) string {
	fi, err := os.Stat(path)
	if err != nil {
		return "not created yet"
	}

	const mb = 1 << 20
	used := float64(fi.Size()) / mb
	if maxSizeMB <= 0 {
		return fmt.Sprintf("%.1f MB", used)
	}
	pct := fi.Size() * 100 / (int64(maxSizeMB) * mb)
	return fmt.Sprintf("%.1f of %d MB (%d%%)", used, maxSizeMB, pct)
}
