//go:build windows

package lock

import (
	"errors"

	"golang.org/x/sys/windows"
)

// LockFileEx locks byte ranges rather than whole files; locking the
// first byte is the conventional whole-file stand-in. Unlike flock(2),
// repeated exclusive locks through the same handle stack and need a
// matching number of unlocks.

func platformLock(fd uintptr, kind LockKind, mode AccessMode) error {
	var flags uint32
	if mode == Write {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	if kind == NonBlocking {
		flags |= windows.LOCKFILE_FAIL_IMMEDIATELY
	}

	err := windows.LockFileEx(windows.Handle(fd), flags, 0, 1, 0, new(windows.Overlapped))
	if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
		return ErrWouldBlock
	}
	return err
}

func platformUnlock(fd uintptr) error {
	return windows.UnlockFileEx(windows.Handle(fd), 0, 1, 0, new(windows.Overlapped))
}
