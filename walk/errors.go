package walk

import (
	"errors"
	"fmt"
	"io/fs"
)

// RootError is returned when a root path given on the command line cannot be
// inspected.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("stat %s: %v", e.Path, pathCause(e.Err))
}

func (e *RootError) Unwrap() error { return e.Err }

// ListingError records the warnings raised while listing one directory. The
// listing itself is still returned and rendered; the error surfaces once the
// directory is done.
type ListingError struct {
	Dir  string
	Errs []error
}

func (e *ListingError) Error() string {
	if len(e.Errs) == 1 {
		return fmt.Sprintf("listing %s: %v", e.Dir, e.Errs[0])
	}
	return fmt.Sprintf("listing %s: %d errors, first: %v", e.Dir, len(e.Errs), e.Errs[0])
}

func (e *ListingError) Unwrap() error {
	return errors.Join(e.Errs...)
}

// LinkError is returned when a symlink's target cannot be read ("readlink")
// or does not resolve to an existing file ("resolve").
type LinkError struct {
	Op   string
	Path string
	Err  error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, pathCause(e.Err))
}

func (e *LinkError) Unwrap() error { return e.Err }

// pathCause drops the "op path:" part of a *fs.PathError, which the errors
// above already print.
func pathCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
