package filelock

import (
	"os"

	"github.com/bashhack/filelock/lock"
)

// FileLock coordinates access to a resource identified by a filesystem
// path using the OS advisory-locking primitive. The lock file is created
// on first use; its existence has no meaning beyond serving as a lock
// handle.
//
// The access mode is fixed at construction and governs both the open
// permissions of the lock file and the shared/exclusive semantics of
// every acquisition.
type FileLock struct {
	path string
	file *os.File
	mode lock.AccessMode
}

// New creates a FileLock for the given path and access mode. It performs
// no I/O and never fails; the lock file is opened lazily by the first
// Lock or TryLock call.
func New(path string, mode lock.AccessMode) *FileLock {
	return &FileLock{
		path: path,
		mode: mode,
	}
}

// openedFile returns the lock file handle, opening it on first use. The
// handle is memoized for the life of the instance and never reopened.
// On failure the handle stays absent, so a later call retries the open.
func (l *FileLock) openedFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	// Exactly one of readable/writable is set, derived from the mode
	// that also governs the lock semantics.
	flag := os.O_CREATE | os.O_WRONLY
	if l.mode == lock.Read {
		flag = os.O_CREATE | os.O_RDONLY
	}

	f, err := os.OpenFile(l.path, flag, 0o666)
	if err != nil {
		return nil, NewIOError(l.path, err)
	}

	l.file = f
	return f, nil
}

// anyLock ensures the handle is open, then requests an advisory lock on
// its descriptor with the given kind and the instance's fixed mode.
func (l *FileLock) anyLock(kind lock.LockKind) error {
	f, err := l.openedFile()
	if err != nil {
		return err
	}

	if err := lock.Lock(f.Fd(), kind, l.mode); err != nil {
		return NewLockError(l.path, err)
	}
	return nil
}

// Lock acquires the advisory lock, suspending the calling goroutine
// until the lock becomes available or an I/O error occurs. There is no
// timeout; acquisition is bounded only by contention.
func (l *FileLock) Lock() error {
	return l.anyLock(lock.Blocking)
}

// TryLock acquires the advisory lock without waiting. If the lock is
// held incompatibly by another holder, it fails with a LockError
// wrapping ErrWouldBlock.
func (l *FileLock) TryLock() error {
	return l.anyLock(lock.NonBlocking)
}

// Unlock releases the advisory lock. It requires the handle to already
// be open: calling it before any Lock or TryLock fails with an IOError
// wrapping ErrNotLocked. The handle itself stays open, so the instance
// can lock again afterwards.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return NewIOError(l.path, ErrNotLocked)
	}

	if err := lock.Unlock(l.file.Fd()); err != nil {
		return NewLockError(l.path, err)
	}
	return nil
}

// Path returns the path identifying the locked resource.
func (l *FileLock) Path() string {
	return l.path
}

// Close releases the advisory lock and closes the lock file handle. The
// release is best-effort: its error is discarded so that deferred
// cleanup never fails loudly. Close on an instance that never locked is
// a no-op. The instance must not be used after Close.
//
// Deferring Close guarantees no lock outlives its owner's scope,
// covering early returns, propagated errors, and normal completion
// uniformly.
func (l *FileLock) Close() error {
	if l.file == nil {
		return nil
	}

	_ = lock.Unlock(l.file.Fd())

	f := l.file
	l.file = nil
	return f.Close()
}
