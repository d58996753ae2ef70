// Package dirupdate provides the public Go library API for dir-update.
//
// dir-update refreshes the files already present in a destination
// directory from a source directory: a destination file is overwritten
// when the source file at the same relative path has a different size.
// Hidden entries are ignored, destination files without a source
// counterpart are left alone, and nothing is ever created or deleted.
//
// # Basic Usage
//
//	client := dirupdate.New(dirupdate.Options{Verbose: true})
//	n, err := client.UpdateDir(ctx, "/srv/release", "/srv/www")
//	if errors.Is(err, dirupdate.ErrInvalidTo) {
//	    // destination missing
//	}
//
// Per-file problems never fail the call. Supply a Hooks implementation to
// observe them.
package dirupdate

import (
	"context"
	"io"
	"log/slog"

	"github.com/bianoble/dir-update/internal/engine"
	"github.com/spf13/afero"
)

// DirUpdater refreshes a destination tree from a source tree.
type DirUpdater interface {
	UpdateDir(ctx context.Context, from, to string) (int, error)
}

// Options configures a Client.
type Options struct {
	// Verbose selects the verbose hook-set, which also reports skipped
	// files. Ignored when Hooks is set.
	Verbose bool

	// Out and Err receive the hook-set output. Defaults: os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer

	// Hooks replaces the built-in hook-sets.
	Hooks Hooks

	// Fs is the filesystem both trees live on. Default: the OS filesystem.
	Fs afero.Fs

	// Logger receives structured run records. Default: discard.
	Logger *slog.Logger
}

// Client is the main entry point for the dir-update library.
type Client struct {
	updater *engine.Updater
}

var _ DirUpdater = (*Client)(nil)

// New creates a Client.
func New(opts Options) *Client {
	hooks := opts.Hooks
	if hooks == nil {
		if opts.Verbose {
			hooks = engine.NewVerboseHooks(opts.Out, opts.Err)
		} else {
			hooks = engine.NewQuietHooks(opts.Out, opts.Err)
		}
	}

	return &Client{
		updater: &engine.Updater{
			Fs:     opts.Fs,
			Hooks:  hooks,
			Logger: opts.Logger,
		},
	}
}

// UpdateDir copies every file of to whose counterpart under from differs
// in size, and returns how many files were copied.
func (c *Client) UpdateDir(ctx context.Context, from, to string) (int, error) {
	return c.updater.UpdateDir(ctx, from, to)
}

// UpdateDir runs a single update on the OS filesystem. A nil hooks value
// prints errors to stderr and nothing else.
func UpdateDir(ctx context.Context, from, to string, hooks Hooks) (int, error) {
	return engine.UpdateDir(ctx, from, to, hooks)
}
