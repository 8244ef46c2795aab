package walk

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestFS builds an in-memory tree. Keys ending in "/" are directories,
// keys ending in "*" are executable files (the star is dropped), values
// starting with "->" are symlink targets.
func createTestFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for path, content := range files {
		switch {
		case strings.HasSuffix(path, "/"):
			require.NoError(t, fsys.MkdirAll(path, 0755))
		case strings.HasPrefix(content, "->"):
			require.NoError(t, fsys.Symlink(strings.TrimPrefix(content, "->"), path))
		case strings.HasSuffix(path, "*"):
			require.NoError(t, util.WriteFile(fsys, strings.TrimSuffix(path, "*"), []byte(content), 0755))
		default:
			require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0644))
		}
	}
	return fsys
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

// flakyFS fails Lstat for chosen paths and ReadDir for chosen directories.
type flakyFS struct {
	billy.Filesystem
	lstat   map[string]error
	readDir map[string]error
}

func (f *flakyFS) Lstat(name string) (os.FileInfo, error) {
	if err, ok := f.lstat[name]; ok {
		return nil, err
	}
	return f.Filesystem.Lstat(name)
}

func (f *flakyFS) ReadDir(name string) ([]os.FileInfo, error) {
	if err, ok := f.readDir[name]; ok {
		return nil, err
	}
	return f.Filesystem.ReadDir(name)
}

type stubIgnorer map[string]bool

func (s stubIgnorer) IsIgnored(path string, isDir bool) (bool, error) {
	return s[path], nil
}

func collectNames(t *testing.T, c *Collector, dir string) []string {
	t.Helper()
	entries, err := c.Collect(dir)
	require.NoError(t, err)
	Sort(entries, false)
	return names(entries)
}

func TestCollector_Filters(t *testing.T) {
	fsys := createTestFS(t, map[string]string{
		"root/a.txt":       "A",
		"root/b.go":        "B",
		"root/.hidden":     "H",
		"root/.config/":    "",
		"root/sub/c.txt":   "C",
		"root/empty/":      "",
		"root/link":        "->sub",
		"root/broken":      "->nowhere",
		"root/run.sh*":     "#!/bin/sh",
		"root/sub/deep/d":  "D",
		"root/sub/.hidden": "H",
	})

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults hide dot files",
			opts: Options{},
			want: []string{"a.txt", "b.go", "broken", "empty", "link", "run.sh", "sub"},
		},
		{
			name: "all shows dot files",
			opts: Options{All: true},
			want: []string{".config", ".hidden", "a.txt", "b.go", "broken", "empty", "link", "run.sh", "sub"},
		},
		{
			name: "exclude patterns",
			opts: Options{Exclude: FilterSet{"*.txt", "b*"}},
			want: []string{"empty", "link", "run.sh", "sub"},
		},
		{
			name: "dirs only keeps links to directories",
			opts: Options{DirsOnly: true},
			want: []string{"empty", "link", "sub"},
		},
		{
			name: "include keeps directories",
			opts: Options{Include: FilterSet{"*.go"}},
			want: []string{"b.go", "empty", "link", "sub"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			c := NewCollector(fsys, &opts, nil, nil)
			assert.Equal(t, tt.want, collectNames(t, c, "root"))
		})
	}
}

func TestCollector_EntryMetadata(t *testing.T) {
	assert := assert.New(t)
	fsys := createTestFS(t, map[string]string{
		"root/file":   "F",
		"root/run*":   "R",
		"root/dir/":   "",
		"root/link":   "->dir",
		"root/dangle": "->missing",
		"root/flink":  "->file",
	})

	c := NewCollector(fsys, DefaultOptions(), nil, nil)
	entries, err := c.Collect("root")
	assert.NoError(err)

	byName := make(map[string]Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.Len(byName, 6)

	assert.Equal(KindRegular, byName["file"].Kind())
	assert.Empty(byName["file"].Path, "regular files do not keep their path")
	assert.False(byName["file"].Executable())
	assert.True(byName["run"].Executable())

	assert.Equal(KindDir, byName["dir"].Kind())
	assert.True(byName["dir"].IsDir)
	assert.Equal(fsys.Join("root", "dir"), byName["dir"].Path)

	assert.Equal(KindSymlink, byName["link"].Kind())
	assert.True(byName["link"].IsDir, "links are classified by their target")
	assert.Equal(fsys.Join("root", "link"), byName["link"].Path)

	assert.Equal(KindSymlink, byName["dangle"].Kind())
	assert.False(byName["dangle"].IsDir)

	assert.False(byName["flink"].IsDir)
}

func TestCollector_Ignorer(t *testing.T) {
	fsys := createTestFS(t, map[string]string{
		"root/keep.txt": "K",
		"root/drop.log": "D",
		"root/out/x":    "X",
	})

	ig := stubIgnorer{
		fsys.Join("root", "drop.log"): true,
		fsys.Join("root", "out"):      true,
	}
	c := NewCollector(fsys, DefaultOptions(), nil, ig)
	assert.Equal(t, []string{"keep.txt"}, collectNames(t, c, "root"))
}

func TestCollector_StatFailure(t *testing.T) {
	assert := assert.New(t)
	base := createTestFS(t, map[string]string{
		"root/a": "A",
		"root/b": "B",
		"root/c": "C",
	})
	statErr := &os.PathError{Op: "lstat", Path: "root/b", Err: os.ErrPermission}
	fsys := &flakyFS{
		Filesystem: base,
		lstat:      map[string]error{base.Join("root", "b"): statErr},
	}

	var logs bytes.Buffer
	c := NewCollector(fsys, DefaultOptions(), testLogger(&logs), nil)
	entries, err := c.Collect("root")

	Sort(entries, false)
	assert.Equal([]string{"a", "c"}, names(entries), "the failing entry is dropped, the rest survive")

	var listErr *ListingError
	assert.True(errors.As(err, &listErr))
	assert.Equal("root", listErr.Dir)
	assert.Len(listErr.Errs, 1)
	assert.ErrorIs(err, os.ErrPermission)

	assert.Contains(logs.String(), "level=WARN")
	assert.Contains(logs.String(), "cannot stat entry")
}

func TestCollector_ReadDirFailure(t *testing.T) {
	assert := assert.New(t)
	base := createTestFS(t, map[string]string{"root/locked/x": "X"})
	fsys := &flakyFS{
		Filesystem: base,
		readDir:    map[string]error{"root/locked": os.ErrPermission},
	}

	var logs bytes.Buffer
	c := NewCollector(fsys, DefaultOptions(), testLogger(&logs), nil)
	entries, err := c.Collect("root/locked")

	assert.Empty(entries)
	var listErr *ListingError
	assert.True(errors.As(err, &listErr))
	assert.Equal("root/locked", listErr.Dir)
	assert.ErrorIs(err, os.ErrPermission)
	assert.Contains(logs.String(), "cannot read directory")
	assert.Contains(logs.String(), "path=root/locked")
}
