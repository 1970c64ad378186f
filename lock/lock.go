package lock

import "errors"

// AccessMode selects the semantics of a lock request. Read requests a
// shared lock, Write an exclusive one. Callers derive the open
// permissions of the file being locked from the same value, so shared
// and exclusive access never drift apart.
type AccessMode int

const (
	// Read requests a shared lock: any number of holders at once.
	Read AccessMode = iota

	// Write requests an exclusive lock: at most one holder,
	// incompatible with all concurrent Read and Write holders.
	Write
)

// String returns a human-readable name for the mode.
func (m AccessMode) String() string {
	switch m {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return "unknown"
	}
}

// LockKind selects whether an acquisition waits for contention to clear
// or fails immediately.
type LockKind int

const (
	// Blocking suspends the calling thread until the lock is available.
	Blocking LockKind = iota

	// NonBlocking returns immediately, failing with ErrWouldBlock when
	// the lock is held incompatibly by another holder.
	NonBlocking
)

// String returns a human-readable name for the kind.
func (k LockKind) String() string {
	switch k {
	case Blocking:
		return "blocking"
	case NonBlocking:
		return "non-blocking"
	default:
		return "unknown"
	}
}

// ErrWouldBlock indicates a NonBlocking request found the lock held
// incompatibly by another holder.
var ErrWouldBlock = errors.New("lock is held by another holder")

// Lock places an advisory lock on fd. The mode decides shared versus
// exclusive semantics, the kind decides whether the call may suspend.
// Re-locking a descriptor that already holds the lock in the same mode
// succeeds.
func Lock(fd uintptr, kind LockKind, mode AccessMode) error {
	return platformLock(fd, kind, mode)
}

// Unlock releases the advisory lock held on fd. Releasing a descriptor
// that holds no lock succeeds.
func Unlock(fd uintptr) error {
	return platformUnlock(fd)
}
