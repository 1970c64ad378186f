// Package lock wraps the OS advisory-locking primitive behind a small,
// descriptor-oriented API.
//
// The package operates on raw file descriptors rather than *os.File so
// that callers stay in control of the handle's lifetime. It maps a
// (LockKind, AccessMode) pair onto the platform's locking call:
// flock(2) on Unix-like systems and LockFileEx on Windows.
//
// # Core Components
//
// - AccessMode: shared (Read) vs exclusive (Write) semantics
// - LockKind: Blocking vs NonBlocking acquisition
// - Lock / Unlock: the two operations, both operating on a descriptor
//
// # Semantics
//
// Read locks are shared: any number of holders may hold one at the same
// time. Write locks are exclusive: at most one holder, incompatible with
// every concurrent Read or Write holder. A Blocking request suspends the
// calling thread until the lock becomes available; a NonBlocking request
// returns ErrWouldBlock instead of waiting.
//
// Locks are per open file description. Two independently opened
// descriptors for the same path contend with each other even inside a
// single process; re-requesting a lock already held through the same
// descriptor succeeds.
//
// # Error Handling
//
// Contention under NonBlocking is reported as ErrWouldBlock so it can be
// classified with errors.Is. Every other failure is returned as the
// OS error, untouched.
package lock
