// Package filelock provides a lazily-materialized, advisory file lock
// for coordinating exclusive or shared access to a resource identified
// by a filesystem path.
//
// The lock file need not exist beforehand: it is created by the first
// acquisition attempt, and its existence has no meaning beyond serving
// as a lock handle. Multiple cooperating processes (and independent
// FileLock instances inside one process) coordinate through the OS
// advisory-locking primitive, using multiple reader, single writer
// semantics in an interface similar to sync.RWMutex.
//
// # Core Components
//
// - FileLock: the lock lifecycle state machine (this package)
// - lock: the OS locking-primitive wrapper (subpackage)
//
// # Usage
//
// Basic usage pattern:
//
//	l := filelock.New("/var/run/myapp.lock", lock.Write)
//	defer l.Close()
//
//	if err := l.Lock(); err != nil {
//	    // Handle acquisition failure
//	}
//
//	// Use the protected resource
//	// ...
//
//	if err := l.Unlock(); err != nil {
//	    // Handle release failure
//	}
//
// TryLock acquires without waiting; contention is classified with
// errors.Is(err, filelock.ErrWouldBlock). For scoped work, With runs a
// function while holding a blocking lock and releases it on every exit
// path.
//
// # Lock Files
//
// The file is opened on first use with create-if-missing semantics and
// access permissions matching the declared mode, then reused for the
// instance's entire lifetime. The file is left in place after release;
// nothing is ever deleted.
//
// # Error Handling
//
// The package exposes two error kinds:
//
// - LockError: failures of the locking primitive (contention under
// TryLock, invalid descriptor, interrupted call)
// - IOError: failures opening the file, plus the synthetic condition of
// unlocking before any acquisition (ErrNotLocked)
//
// Nothing is retried internally; every fallible operation returns its
// error to the caller. The one exception is Close, which discards the
// error from its best-effort release so deferred cleanup cannot fail
// loudly.
//
// # Thread Safety
//
// A FileLock instance is not designed to be used concurrently by
// multiple goroutines; it requires external synchronization. Across
// processes, coordination is mediated entirely by the OS advisory lock
// attached to the file. Advisory means cooperative: the lock does not
// prevent raw reads or writes by processes that bypass it.
package filelock
