//go:build unix

package lock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// flockOp translates a (kind, mode) pair into flock(2) operation bits.
func flockOp(kind LockKind, mode AccessMode) int {
	op := unix.LOCK_SH
	if mode == Write {
		op = unix.LOCK_EX
	}
	if kind == NonBlocking {
		op |= unix.LOCK_NB
	}
	return op
}

func platformLock(fd uintptr, kind LockKind, mode AccessMode) error {
	err := unix.Flock(int(fd), flockOp(kind, mode))

	// Checking either EWOULDBLOCK or EAGAIN,
	// Per GNU docs ...
	//     Portability Note: In many older Unix systems ...
	//     [EWOULDBLOCK was] a distinct error code different from EAGAIN.
	//     To make your program portable, you should check for both codes
	//     and treat them the same.
	// Ref: https://www.gnu.org/savannah-checkouts/gnu/libc/manual/html_node/Error-Codes.html
	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
		return ErrWouldBlock
	}
	return err
}

func platformUnlock(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_UN)
}
