package profiler

import (
	"errors"
	"fmt"
)

// ErrNoActiveSession is returned by WriteProfile and Scope.Stop when no
// session is open on the profiler.
var ErrNoActiveSession = errors.New("no open profiling session")

// SessionAlreadyOpenError is returned by BeginSession when a session is
// already open. The open session is left untouched.
type SessionAlreadyOpenError struct {
	// Name is the label of the session that is already open.
	Name string
}

func (e *SessionAlreadyOpenError) Error() string {
	return fmt.Sprintf("profiling session already open: %s", e.Name)
}

// FileOpenError is returned by BeginSession when the destination path cannot
// be opened for writing.
type FileOpenError struct {
	// Path is the destination that failed to open.
	Path string
	// Err is the underlying os error.
	Err error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("could not open trace file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying os error for errors.Is/As chains.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}
