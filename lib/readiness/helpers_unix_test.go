// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package readiness

func testDescriptor(n int) FD { return n }
