package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bianoble/dir-update/internal/config"
	"github.com/bianoble/dir-update/internal/engine"
	"github.com/bianoble/dir-update/internal/logging"
	"github.com/spf13/cobra"
)

const defaultConfigPath = config.FileName

// loadConfig merges the system, user and --config layers. A missing
// --config file is only an error when the flag was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := loadConfigLayers(cmd)
	return cfg, err
}

func loadConfigLayers(cmd *cobra.Command) (*config.Config, []config.ConfigLayerInfo, error) {
	cfg, layers, err := config.LoadLayered(config.DiscoverOptions{
		ProjectPath:     configPath,
		ProjectRequired: flagChanged(cmd, "config"),
		NoInherit:       config.EnvNoInherit(),
	})
	if err != nil {
		return nil, layers, fmt.Errorf("loading config: %w", err)
	}

	if flagChanged(cmd, "verbose") {
		cfg.Verbose = &verbose
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return cfg, layers, nil
}

// flagChanged reports whether name was set on the command line. Commands
// that do not define the flag report false.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// newLogger opens the configured log file, or returns a discarding logger.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	compress := cfg.Log.Compress != nil && *cfg.Log.Compress
	logger, closer, err := logging.New(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   compress,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger, closer, nil
}

// newHooks picks the console hook-set and adds log records when a log
// file is configured.
func newHooks(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) engine.Hooks {
	var console engine.Hooks
	if cfg.IsVerbose() {
		console = engine.NewVerboseHooks(cmd.OutOrStdout(), cmd.ErrOrStderr())
	} else {
		console = engine.NewQuietHooks(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	if cfg.Log.File == "" {
		return console
	}
	return engine.MultiHooks{console, engine.LogHooks{Logger: logger.With("comp", "hooks")}}
}

// info prints a line to the command's output.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// errorf prints an error message to the command's error output.
func errorf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: "+format+"\n", args...)
}
