package collect

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when the root directory contains no test files at all.
var ErrEmpty = errors.New("no tests found")

// errCycle signals a cycle in the discovery graph. Edges are derived purely
// from directory containment, so hitting this means a construction bug, not
// a user error.
var errCycle = errors.New("internal error: cycle detected constructing module graph")

// WalkError reports an I/O failure while traversing the test tree.
type WalkError struct {
	Err error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to access test file or directory: %v", e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// ReadRootDirError reports that the root directory itself could not be read.
type ReadRootDirError struct {
	Path string
	Err  error
}

func (e *ReadRootDirError) Error() string {
	return fmt.Sprintf("failed to read tests from directory %q: %v", e.Path, e.Err)
}

func (e *ReadRootDirError) Unwrap() error { return e.Err }
