package walk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTrackingFs records every Open and fails the ones listed in fail.
type openTrackingFs struct {
	afero.Fs
	fail   map[string]error
	opened []string
}

func (f *openTrackingFs) Open(name string) (afero.File, error) {
	f.opened = append(f.opened, name)
	if err, ok := f.fail[name]; ok {
		return nil, err
	}
	return f.Fs.Open(name)
}

func writeFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
}

func collect(w *Walker, root string) []string {
	var rels []string
	for e := range w.Entries(root) {
		rels = append(rels, e.Rel)
	}
	return rels
}

func TestEntriesYieldsFilesInLexicalOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/to/b.txt":       "b",
		"/to/a.txt":       "a",
		"/to/sub/c.txt":   "c",
		"/to/sub/deep/d":  "d",
		"/to/zz/last.txt": "z",
	})

	w := &Walker{Fs: fsys}
	got := collect(w, "/to")

	assert.Equal(t, []string{
		"a.txt",
		"b.txt",
		filepath.Join("sub", "c.txt"),
		filepath.Join("sub", "deep", "d"),
		filepath.Join("zz", "last.txt"),
	}, got)
}

func TestEntriesFullPathAndInfo(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{"/to/sub/file.txt": "12345"})

	w := &Walker{Fs: fsys}
	var entries []Entry
	for e := range w.Entries("/to") {
		entries = append(entries, e)
	}

	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join("/to", "sub", "file.txt"), entries[0].Path)
	assert.Equal(t, filepath.Join("sub", "file.txt"), entries[0].Rel)
	assert.Equal(t, int64(5), entries[0].Info.Size())
	assert.False(t, entries[0].Info.IsDir())
}

func TestEntriesSkipsHiddenFilesAndDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/to/visible.txt":           "v",
		"/to/.hidden":               "h",
		"/to/.git/config":           "g",
		"/to/.git/objects/ab/cdef":  "o",
		"/to/sub/.env":              "e",
		"/to/sub/keep.txt":          "k",
		"/to/sub/.cache/nested.txt": "n",
	})

	tracking := &openTrackingFs{Fs: fsys}
	w := &Walker{Fs: tracking}
	got := collect(w, "/to")

	assert.Equal(t, []string{filepath.Join("sub", "keep.txt"), "visible.txt"}, got)
	for _, opened := range tracking.opened {
		assert.NotContains(t, opened, ".git", "hidden directory must not be descended into")
		assert.NotContains(t, opened, ".cache", "hidden directory must not be descended into")
	}
}

func TestEntriesRootIsNeverFiltered(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{"/home/.config/app.conf": "x"})

	w := &Walker{Fs: fsys}
	assert.Equal(t, []string{"app.conf"}, collect(w, "/home/.config"))
}

func TestEntriesHiddenRootStillFiltersChildren(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/.dst/a.txt":      "a",
		"/.dst/.git/HEAD":  "ref",
		"/.dst/sub/.x.txt": "x",
		"/.dst/sub/b.txt":  "b",
	})

	w := &Walker{Fs: fsys}
	assert.Equal(t, []string{"a.txt", filepath.Join("sub", "b.txt")}, collect(w, "/.dst"))
}

func TestEntriesReportsUnreadableDirectoryAndContinues(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/to/a/one.txt":   "1",
		"/to/b/two.txt":   "2",
		"/to/c/three.txt": "3",
	})

	denied := errors.New("permission denied")
	tracking := &openTrackingFs{Fs: fsys, fail: map[string]error{filepath.Join("/to", "b"): denied}}

	type walkErr struct {
		path string
		err  error
	}
	var reported []walkErr
	w := &Walker{Fs: tracking, OnError: func(path string, err error) {
		reported = append(reported, walkErr{path, err})
	}}

	got := collect(w, "/to")

	assert.Equal(t, []string{filepath.Join("a", "one.txt"), filepath.Join("c", "three.txt")}, got)
	require.Len(t, reported, 1)
	assert.Equal(t, filepath.Join("/to", "b"), reported[0].path)
	assert.ErrorIs(t, reported[0].err, denied)
}

func TestEntriesMissingRootReportsError(t *testing.T) {
	var paths []string
	w := &Walker{Fs: afero.NewMemMapFs(), OnError: func(path string, err error) {
		require.Error(t, err)
		paths = append(paths, path)
	}}

	assert.Empty(t, collect(w, "/nope"))
	assert.Equal(t, []string{"/nope"}, paths)
}

func TestEntriesNilOnErrorDropsErrors(t *testing.T) {
	w := &Walker{Fs: afero.NewMemMapFs()}
	assert.NotPanics(t, func() { collect(w, "/nope") })
}

func TestEntriesStopsWhenConsumerStops(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/to/a/1.txt": "1",
		"/to/b/2.txt": "2",
		"/to/c/3.txt": "3",
	})

	tracking := &openTrackingFs{Fs: fsys}
	w := &Walker{Fs: tracking}

	for e := range w.Entries("/to") {
		assert.Equal(t, filepath.Join("a", "1.txt"), e.Rel)
		break
	}

	assert.Equal(t, []string{"/to", filepath.Join("/to", "a")}, tracking.opened)
}

func TestEntriesRestartsOnEachRange(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{"/to/x.txt": "x", "/to/y/z.txt": "z"})

	w := &Walker{Fs: fsys}
	first := collect(w, "/to")
	second := collect(w, "/to")

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestEntriesDoesNotFollowSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	to := filepath.Join(root, "to")
	other := filepath.Join(root, "other")
	require.NoError(t, os.MkdirAll(to, 0755))
	require.NoError(t, os.MkdirAll(other, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(other, "inner.txt"), []byte("i"), 0644))
	if err := os.Symlink(other, filepath.Join(to, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	w := &Walker{}
	var entries []Entry
	for e := range w.Entries(to) {
		entries = append(entries, e)
	}

	require.Len(t, entries, 1)
	assert.Equal(t, "link", entries[0].Rel)
	assert.NotZero(t, entries[0].Info.Mode()&os.ModeSymlink)
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{".env", true},
		{"..", true},
		{"file.txt", false},
		{"a.b", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHidden(tt.name), "IsHidden(%q)", tt.name)
	}
}
