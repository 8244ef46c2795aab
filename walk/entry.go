// Package walk collects and sorts the children of one directory for the tree
// printer.
package walk

import "os"

// Kind is the file type of an entry as far as the tree display cares.
type Kind uint8

const (
	KindOther Kind = iota
	KindRegular
	KindDir
	KindSymlink
	KindFIFO
	KindSocket
)

// KindOf maps file mode type bits to a Kind.
func KindOf(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode&os.ModeDir != 0:
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode&os.ModeNamedPipe != 0:
		return KindFIFO
	case mode&os.ModeSocket != 0:
		return KindSocket
	default:
		return KindOther
	}
}

// Suffix returns the classification character appended by -F.
// Plain regular files and unknown types get none.
func Suffix(mode os.FileMode) string {
	switch KindOf(mode) {
	case KindFIFO:
		return "|"
	case KindDir:
		return "/"
	case KindRegular:
		if mode&0111 != 0 {
			return "*"
		}
	case KindSymlink:
		return "@"
	case KindSocket:
		return "="
	}
	return ""
}

// Entry is one immediate child of a listed directory.
type Entry struct {
	Name string
	// Path is kept only for symlinks and directories, the two kinds that
	// need a second trip to the filesystem while rendering.
	Path string
	// Mode is the entry's own mode, from lstat.
	Mode os.FileMode
	// IsDir is true when the entry, after following a symlink, is a directory.
	IsDir bool
}

func (e Entry) Kind() Kind {
	return KindOf(e.Mode)
}

// Executable reports whether e is a regular file with any execute bit set.
func (e Entry) Executable() bool {
	return e.Mode.IsRegular() && e.Mode&0111 != 0
}
