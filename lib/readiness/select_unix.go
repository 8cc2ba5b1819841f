// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package readiness

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// selectSets runs one select(2) call over the three result sets and
// rebuilds their bookkeeping from what the kernel left set. A negative
// timeout blocks indefinitely.
func selectSets(read, write, except *Set, timeout time.Duration) (int, error) {
	nfd := max(read.maxFD, write.maxFD, except.maxFD) + 1

	var timeval *unix.Timeval
	if timeout >= 0 {
		tv := unix.NsecToTimeval(timeout.Nanoseconds())
		timeval = &tv
	}

	ready, err := unix.Select(nfd, read.Native(), write.Native(), except.Native(), timeval)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, errInterrupted
		}
		return 0, err
	}
	read.recount()
	write.recount()
	except.recount()
	return ready, nil
}
