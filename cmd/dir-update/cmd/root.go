package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bianoble/dir-update/internal/engine"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	logFile    string
	verbose    bool
	showInfo   bool
	writeInit  bool
	initForce  bool
)

var rootCmd = &cobra.Command{
	Use:   "dir-update [flags] FROM TO",
	Short: "Copy files into a directory if they are updated",
	Long: `dir-update refreshes the files that already exist in TO from the files at
the same relative paths in FROM. A file is copied when its size differs from
the size of its counterpart. Files missing from FROM are left alone, new files
are never created in TO, and hidden entries (names starting with a dot) are
ignored together with everything below them.

FROM and TO are always taken as paths. Use --info to show the effective
configuration and --init to write a starter config file.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if showInfo || writeInit {
			if len(args) > 0 {
				return fmt.Errorf("--info and --init take no FROM TO arguments")
			}
			return nil
		}
		if len(args) == 0 {
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("dir-update %s\n  commit:  %s\n  built:   %s\n", version, commit, date))
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to config file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write a structured log to this file")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enables verbose output to print each action")
	rootCmd.Flags().BoolVar(&showInfo, "info", false, "show the effective configuration and exit")
	rootCmd.Flags().BoolVar(&writeInit, "init", false, "write a starter config file to the --config path and exit")
	rootCmd.Flags().BoolVar(&initForce, "force", false, "with --init, overwrite an existing config file")
	rootCmd.MarkFlagsMutuallyExclusive("info", "init")
}

func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case showInfo:
		return runInfo(cmd)
	case writeInit:
		return runInit(cmd)
	case len(args) == 0:
		return cmd.Help()
	}
	return runUpdate(cmd, args)
}

// runUpdate copies changed files from FROM into TO.
func runUpdate(cmd *cobra.Command, args []string) error {
	from, to := args[0], args[1]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	u := &engine.Updater{
		Hooks:  newHooks(cmd, cfg, logger),
		Logger: logger,
	}

	n, err := u.UpdateDir(cmd.Context(), from, to)
	if err != nil {
		if n > 0 {
			info(cmd, "%d files are updated", n)
		}
		return err
	}

	info(cmd, "%d files are updated", n)
	return nil
}

// Execute runs the root command. SIGINT and SIGTERM stop a running update
// between two files.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
