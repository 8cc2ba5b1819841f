// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package readiness

import "time"

func selectSets(read, write, except *Set, timeout time.Duration) (int, error) {
	return 0, ErrNotSupported
}
