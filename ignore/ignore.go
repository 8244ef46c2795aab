package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Ignore matches paths under one listing root against the .gitignore files
// found beneath it.
type Ignore struct {
	matcher  gitignore.Matcher
	rootPath string
}

// NewIgnore reads every .gitignore under rootPath in fsys.
func NewIgnore(fsys billy.Filesystem, rootPath string) (*Ignore, error) {
	root, err := fsys.Chroot(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", rootPath, err)
	}

	patterns, err := gitignore.ReadPatterns(root, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read gitignore patterns: %w", err)
	}

	return &Ignore{
		matcher:  gitignore.NewMatcher(patterns),
		rootPath: rootPath,
	}, nil
}

// FindRepoRoot returns the closest directory at or above start that holds a
// .git directory. The search climbs the path as written, so a relative start
// never leaves the working directory. ok is false when no repository is found.
func FindRepoRoot(fsys billy.Filesystem, start string) (root string, ok bool) {
	current := filepath.Clean(start)
	for {
		if info, err := fsys.Stat(fsys.Join(current, ".git")); err == nil && info.IsDir() {
			return current, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// IsIgnored reports whether path, which must lie under the root, is ignored.
// .git directories are always ignored.
func (ig *Ignore) IsIgnored(path string, isDir bool) (bool, error) {
	if isDir && filepath.Base(path) == ".git" {
		return true, nil
	}

	relPath, err := filepath.Rel(ig.rootPath, path)
	if err != nil {
		return false, err
	}
	if relPath == "." {
		return false, nil
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return false, fmt.Errorf("%s is outside %s", path, ig.rootPath)
	}

	parts := strings.Split(filepath.ToSlash(relPath), "/")
	return ig.matcher.Match(parts, isDir), nil
}
