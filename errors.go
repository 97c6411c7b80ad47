package filediff

import (
	"errors"
	"fmt"
)

// Error describes why a comparison could not be carried out.
// It is only ever surfaced through CompareReaders, CompareFiles and
// ComparePairs; the boolean helpers report it as a plain false.
type Error struct {
	// Op is the step that failed (e.g., "open", "stat", "read")
	Op string

	// Path is the file involved, empty for reader comparisons
	Path string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("filediff.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("filediff.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// ErrIsDirectory is returned when a path names a directory, which has no
// byte contents to compare.
var ErrIsDirectory = errors.New("filediff: is a directory")

// ErrNilReader is returned when a nil reader is passed for comparison.
var ErrNilReader = errors.New("filediff: nil reader")
