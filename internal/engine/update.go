package engine

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/bianoble/dir-update/internal/logging"
	"github.com/bianoble/dir-update/internal/walk"
	"github.com/spf13/afero"
)

// Updater refreshes the files already present in a destination tree from
// their counterparts in a source tree. A destination file is overwritten
// only when its size differs from the source file's size.
type Updater struct {
	Fs     afero.Fs     // nil means the OS filesystem
	Hooks  Hooks        // nil means DefaultHooks on stderr
	Logger *slog.Logger // nil discards
}

// UpdateDir runs an Updater on the OS filesystem with the given hooks.
func UpdateDir(ctx context.Context, from, to string, hooks Hooks) (int, error) {
	u := &Updater{Hooks: hooks}
	return u.UpdateDir(ctx, from, to)
}

// UpdateDir walks to and copies every file whose counterpart under from
// has a different size. It returns the number of files copied.
//
// Only invalid roots, or a cancelled ctx, fail the run; the count of files
// copied before cancellation is still returned. Every per-file problem is
// reported through Hooks and the walk moves on. Files that have no
// readable counterpart under from are left alone without any report.
func (u *Updater) UpdateDir(ctx context.Context, from, to string) (int, error) {
	fsys := u.fs()
	hooks := u.hooks()
	l := u.logger()

	if err := checkDir(fsys, from); err != nil {
		return 0, &UpdateError{Kind: KindInvalidFrom, Path: from, Err: err}
	}
	if err := checkDir(fsys, to); err != nil {
		return 0, &UpdateError{Kind: KindInvalidTo, Path: to, Err: err}
	}

	l.Info("update start", "from", from, "to", to)

	w := &walk.Walker{Fs: fsys, OnError: hooks.OnWalkError}
	updated := 0
	for entry := range w.Entries(to) {
		if err := ctx.Err(); err != nil {
			l.Warn("update interrupted", "updated", updated, "err", err)
			return updated, &UpdateError{Kind: KindIO, Path: to, Err: err}
		}

		fromPath := filepath.Join(from, entry.Rel)
		if updateFile(fsys, hooks, l, fromPath, entry.Path) {
			updated++
		}
	}

	l.Info("update complete", "from", from, "to", to, "updated", updated)
	return updated, nil
}

// updateFile reports whether toPath was overwritten with fromPath.
func updateFile(fsys afero.Fs, hooks Hooks, l *slog.Logger, fromPath, toPath string) bool {
	src, err := fsys.Open(fromPath)
	if err != nil {
		// Absent from the source tree: nothing to do.
		l.Debug("no source counterpart", "path", fromPath, "err", err)
		return false
	}
	defer src.Close()

	srcInfo, err := src.Stat()
	if err != nil {
		hooks.OnIOError(fromPath, err)
		return false
	}

	dstInfo, err := fsys.Stat(toPath)
	if err != nil {
		hooks.OnIOError(toPath, err)
		return false
	}

	if srcInfo.Size() == dstInfo.Size() {
		hooks.OnSkip(toPath)
		return false
	}

	dst, err := fsys.Create(toPath)
	if err != nil {
		hooks.OnIOError(toPath, err)
		return false
	}

	// A failed copy leaves dst truncated or partially written.
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		hooks.OnIOError(toPath, err)
		return false
	}

	hooks.OnUpdate(toPath)
	return true
}

func checkDir(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errNotDir
	}
	return nil
}

func (u *Updater) fs() afero.Fs {
	if u.Fs == nil {
		return afero.NewOsFs()
	}
	return u.Fs
}

func (u *Updater) hooks() Hooks {
	if u.Hooks == nil {
		return DefaultHooks{}
	}
	return u.Hooks
}

func (u *Updater) logger() *slog.Logger {
	if u.Logger == nil {
		return logging.Discard()
	}
	return u.Logger.With("comp", "engine")
}
