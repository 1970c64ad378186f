package filelock

import (
	"errors"
	"fmt"

	"github.com/bashhack/filelock/lock"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrNotLocked indicates Unlock was called before any Lock or TryLock.
	ErrNotLocked = errors.New("unlock called before Lock or TryLock")

	// ErrWouldBlock indicates a TryLock found the lock held incompatibly
	// by another holder. It is the lock package's sentinel, re-exported so
	// callers can classify contention without importing that package.
	ErrWouldBlock = lock.ErrWouldBlock
)

// LockError represents a failure of the underlying locking primitive:
// contention under TryLock, an invalid descriptor, or an interrupted call.
type LockError struct {
	Path string
	Err  error
}

// Error implements the error interface with details about the lock file.
func (e *LockError) Error() string {
	return fmt.Sprintf("lock error with file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *LockError) Unwrap() error {
	return e.Err
}

// NewLockError creates a new LockError with the given parameters.
func NewLockError(path string, err error) *LockError {
	return &LockError{
		Path: path,
		Err:  err,
	}
}

// IOError represents a failure touching the underlying file: opening the
// path, or the synthetic unlock-before-lock condition (ErrNotLocked).
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface with details about the lock file.
func (e *IOError) Error() string {
	return fmt.Sprintf("io error with file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError with the given parameters.
func NewIOError(path string, err error) *IOError {
	return &IOError{
		Path: path,
		Err:  err,
	}
}
