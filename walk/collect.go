package walk

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// Ignorer hides entries according to ignore rules (e.g. .gitignore files).
type Ignorer interface {
	IsIgnored(path string, isDir bool) (bool, error)
}

// Collector lists the immediate children of a directory and applies the
// name, type and ignore filters from Options.
type Collector struct {
	fs     billy.Filesystem
	opts   *Options
	logger *slog.Logger
	ignore Ignorer
}

// NewCollector creates a Collector. ig may be nil.
func NewCollector(fsys billy.Filesystem, opts *Options, logger *slog.Logger, ig Ignorer) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		fs:     fsys,
		opts:   opts,
		logger: logger,
		ignore: ig,
	}
}

// Collect returns the surviving entries of dir in directory order.
//
// Failures are warned about and the offending entry (or the whole directory)
// is left out. When anything was left out for that reason, Collect still
// returns what it has, together with a *ListingError.
func (c *Collector) Collect(dir string) ([]Entry, error) {
	infos, err := c.fs.ReadDir(dir)
	if err != nil {
		c.logger.Warn("cannot read directory", "path", dir, "err", err)
		return nil, &ListingError{Dir: dir, Errs: []error{err}}
	}

	var errs []error
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if !c.visible(name) {
			continue
		}

		path := c.fs.Join(dir, name)
		entry, err := c.stat(name, path)
		if err != nil {
			c.logger.Warn("cannot stat entry", "path", path, "err", err)
			errs = append(errs, err)
			continue
		}

		keep, err := c.keep(entry, path)
		if err != nil {
			c.logger.Warn("cannot match ignore rules", "path", path, "err", err)
			errs = append(errs, err)
			continue
		}
		if keep {
			entries = append(entries, entry)
		}
	}

	if len(errs) > 0 {
		return entries, &ListingError{Dir: dir, Errs: errs}
	}
	return entries, nil
}

// visible applies the checks that need nothing but the name.
func (c *Collector) visible(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	if strings.HasPrefix(name, ".") && !c.opts.All {
		return false
	}
	return !c.opts.Exclude.Match(name)
}

// stat builds the entry from lstat. Symlinks are classified by their target;
// a link whose target cannot be reached counts as a non-directory and is kept,
// so the renderer gets to report it.
func (c *Collector) stat(name, path string) (Entry, error) {
	info, err := c.fs.Lstat(path)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Name:  name,
		Mode:  info.Mode(),
		IsDir: info.IsDir(),
	}
	switch {
	case entry.Mode&os.ModeSymlink != 0:
		entry.Path = path
		if target, err := c.fs.Stat(path); err == nil {
			entry.IsDir = target.IsDir()
		}
	case entry.IsDir:
		entry.Path = path
	}
	return entry, nil
}

func (c *Collector) keep(e Entry, path string) (bool, error) {
	if c.opts.DirsOnly && !e.IsDir {
		return false, nil
	}
	if c.ignore != nil {
		ignored, err := c.ignore.IsIgnored(path, e.IsDir)
		if err != nil {
			return false, err
		}
		if ignored {
			return false, nil
		}
	}
	if len(c.opts.Include) > 0 && !e.IsDir {
		return c.opts.Include.Match(e.Name), nil
	}
	return true, nil
}
