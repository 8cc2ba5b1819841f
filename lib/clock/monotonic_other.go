// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package clock

import "time"

// processStart anchors readings on platforms without a CLOCK_MONOTONIC
// syscall. time.Since uses the runtime's monotonic reading.
var processStart = time.Now()

// MonotonicMicros returns monotonic microseconds since process start.
func MonotonicMicros() uint64 {
	return uint64(time.Since(processStart).Microseconds())
}
