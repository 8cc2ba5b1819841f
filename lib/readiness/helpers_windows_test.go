// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package readiness

import "golang.org/x/sys/windows"

func testDescriptor(n int) FD { return windows.Handle(n) }
