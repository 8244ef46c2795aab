// Package render prints directory listings as a tree of ASCII branch art.
//
// Output looks like:
//
//	root
//	|-- a.txt
//	|-- b.txt
//	`-- z
//	    `-- c.txt
package render

import (
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/hayeah/tree/walk"
)

// Renderer prints the entries below a directory, recursing into
// subdirectories while the depth budget lasts.
type Renderer struct {
	fs        billy.Filesystem
	opts      *walk.Options
	collector *walk.Collector
	palette   *Palette
	w         io.Writer
}

// NewRenderer creates a new Renderer writing to w. palette may be nil.
func NewRenderer(fsys billy.Filesystem, opts *walk.Options, collector *walk.Collector, palette *Palette, w io.Writer) *Renderer {
	return &Renderer{
		fs:        fsys,
		opts:      opts,
		collector: collector,
		palette:   palette,
		w:         w,
	}
}

// RenderDir prints one line per surviving entry of dir, each led by prefix.
//
// ttl is the remaining depth budget, counted down once per directory level;
// walk.Unlimited never runs out. A directory reached with a budget of 1 is
// still listed but its subdirectories are not.
//
// Errors from the collector do not stop the listing: dir is printed in full
// and the error is returned afterwards. Any other error is returned at once.
func (r *Renderer) RenderDir(dir string, prefix Prefix, ttl int) error {
	if ttl > 0 {
		ttl--
	}

	entries, listErr := r.collector.Collect(dir)
	walk.Sort(entries, r.opts.DirsFirst)

	for i, entry := range entries {
		last := i == len(entries)-1
		if err := r.renderEntry(entry, prefix, last, ttl); err != nil {
			return err
		}
		// printed entries are not needed again
		entries[i] = walk.Entry{}
	}
	return listErr
}

func (r *Renderer) renderEntry(e walk.Entry, prefix Prefix, last bool, ttl int) error {
	var line strings.Builder
	line.WriteString(prefix.Line(last))
	line.WriteString("-- ")
	line.WriteString(r.palette.Paint(e.Name, e.Mode))
	if r.opts.Classify {
		line.WriteString(walk.Suffix(e.Mode))
	}

	if e.Kind() == walk.KindSymlink {
		target, err := r.linkTarget(e.Path)
		if err != nil {
			return err
		}
		line.WriteString(" -> ")
		line.WriteString(target)
	}
	line.WriteByte('\n')

	if _, err := io.WriteString(r.w, line.String()); err != nil {
		return err
	}

	if e.Kind() == walk.KindDir && ttl != 0 {
		return r.RenderDir(e.Path, prefix.Child(last), ttl)
	}
	return nil
}

// linkTarget reads the link text at path and checks that it leads somewhere.
func (r *Renderer) linkTarget(path string) (string, error) {
	target, err := r.fs.Readlink(path)
	if err != nil {
		return "", &walk.LinkError{Op: "readlink", Path: path, Err: err}
	}
	if _, err := r.fs.Stat(path); err != nil {
		return "", &walk.LinkError{Op: "resolve", Path: path, Err: err}
	}
	return target, nil
}
