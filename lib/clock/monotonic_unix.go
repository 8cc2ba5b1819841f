// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package clock

import "golang.org/x/sys/unix"

// MonotonicMicros returns CLOCK_MONOTONIC in microseconds. The epoch is
// unspecified (typically boot); only differences are meaningful.
func MonotonicMicros() uint64 {
	var spec unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &spec); err != nil {
		// CLOCK_MONOTONIC is mandatory on every platform this file
		// builds for.
		panic("clock: clock_gettime(CLOCK_MONOTONIC): " + err.Error())
	}
	return uint64(spec.Sec)*1_000_000 + uint64(spec.Nsec)/1_000
}
