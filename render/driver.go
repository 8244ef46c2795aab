package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/hayeah/tree/ignore"
	"github.com/hayeah/tree/walk"
)

// Driver prints one tree per root path.
type Driver struct {
	fs      billy.Filesystem
	opts    *walk.Options
	logger  *slog.Logger
	palette *Palette
	w       io.Writer
}

// NewDriver creates a new Driver.
func NewDriver(fsys billy.Filesystem, opts *walk.Options, logger *slog.Logger, palette *Palette, w io.Writer) *Driver {
	return &Driver{
		fs:      fsys,
		opts:    opts,
		logger:  logger,
		palette: palette,
		w:       w,
	}
}

// Run prints the tree of every root, or of "." when roots is empty. It stops
// at the first error.
func (d *Driver) Run(roots []string) error {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, root := range roots {
		if err := d.Tree(root); err != nil {
			return err
		}
	}
	return nil
}

// Tree prints root as given, then its entries if it is a directory.
func (d *Driver) Tree(root string) error {
	info, err := d.fs.Stat(root)
	if err != nil {
		return &walk.RootError{Path: root, Err: err}
	}

	var line strings.Builder
	line.WriteString(d.palette.Paint(root, info.Mode()))
	if d.opts.Classify {
		line.WriteString(walk.Suffix(info.Mode()))
	}
	line.WriteByte('\n')
	if _, err := io.WriteString(d.w, line.String()); err != nil {
		return err
	}

	if !info.IsDir() {
		return nil
	}

	var ig walk.Ignorer
	if d.opts.GitIgnore {
		ignoreRoot := root
		if repo, ok := ignore.FindRepoRoot(d.fs, root); ok {
			ignoreRoot = repo
		}
		m, err := ignore.NewIgnore(d.fs, ignoreRoot)
		if err != nil {
			return fmt.Errorf("gitignore %s: %w", root, err)
		}
		ig = m
	}

	collector := walk.NewCollector(d.fs, d.opts, d.logger, ig)
	r := NewRenderer(d.fs, d.opts, collector, d.palette, d.w)
	return r.RenderDir(root, RootPrefix, d.opts.Depth)
}
