package filelock

import "github.com/bashhack/filelock/lock"

// With acquires a blocking lock on path with the given mode, runs fn
// while holding it, and releases the lock on every exit path, including
// a panicking or failing fn. The error returned by fn is passed through.
func With(path string, mode lock.AccessMode, fn func() error) error {
	l := New(path, mode)
	if err := l.Lock(); err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	return fn()
}
