package services

import (
	"errors"
	"fmt"
)

// ErrNoTags is reported by a TagReader when a file carries no recognizable
// audio metadata. It is recovered locally for files discovered via directory
// enumeration and treated as a hard error for explicitly named files.
var ErrNoTags = errors.New("no audio tags found")

// InvalidPathError indicates a path argument that is neither an existing
// regular file nor an existing directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("cannot access %q: no such file or directory", e.Path)
}

// ReadFaultError indicates a filesystem I/O failure on a specific path
// (enumeration, stat or open).
type ReadFaultError struct {
	Path string
	Err  error
}

func (e *ReadFaultError) Error() string {
	return fmt.Sprintf("attempting to read %q resulted in an error: %v", e.Path, e.Err)
}

func (e *ReadFaultError) Unwrap() error { return e.Err }

// TagReadError indicates that tag extraction failed on a file that otherwise
// appeared to be a candidate.
type TagReadError struct {
	Path string
	Err  error
}

func (e *TagReadError) Error() string {
	return fmt.Sprintf("attempting to read %q resulted in an error: %v", e.Path, e.Err)
}

func (e *TagReadError) Unwrap() error { return e.Err }
