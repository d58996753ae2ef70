// Package walk enumerates the files of a directory tree as a lazy sequence.
//
// Hidden entries (base name starting with a dot) are left out, and so is
// everything below a hidden directory. Directories are only descended
// into, never yielded.
package walk

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Entry is a single non-directory node found below the walked root.
type Entry struct {
	Path string      // root joined with Rel
	Rel  string      // path relative to the walked root
	Info fs.FileInfo // lstat information; symlinks are not followed
}

// ErrorFunc receives traversal errors. The entry that failed is omitted
// from the sequence and the walk carries on.
type ErrorFunc func(path string, err error)

// Walker walks a tree on Fs. The zero value walks the OS filesystem and
// drops traversal errors.
type Walker struct {
	Fs      afero.Fs
	OnError ErrorFunc
}

// IsHidden reports whether a base name denotes a hidden entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Entries returns the files under root in lexical order per directory.
// Every range over the result performs a fresh traversal; the walk stops
// as soon as the consumer does.
//
// Hidden filtering applies to entries found below root, never to root
// itself: a root such as "." or "/srv/.cache" is walked like any other
// directory, unlike walkers that test the root against the same filter.
func (w *Walker) Entries(root string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		w.walkDir(w.fs(), root, "", yield)
	}
}

// walkDir reports false once the consumer has stopped.
func (w *Walker) walkDir(fsys afero.Fs, dir, rel string, yield func(Entry) bool) bool {
	// afero.ReadDir returns lstat results sorted by name.
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		w.report(dir, err)
		return true
	}

	for _, info := range infos {
		name := info.Name()
		if IsHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		relPath := filepath.Join(rel, name)

		if info.IsDir() {
			if !w.walkDir(fsys, path, relPath, yield) {
				return false
			}
			continue
		}

		if !yield(Entry{Path: path, Rel: relPath, Info: info}) {
			return false
		}
	}
	return true
}

func (w *Walker) report(path string, err error) {
	if w.OnError != nil {
		w.OnError(path, err)
	}
}

func (w *Walker) fs() afero.Fs {
	if w.Fs == nil {
		return afero.NewOsFs()
	}
	return w.Fs
}
