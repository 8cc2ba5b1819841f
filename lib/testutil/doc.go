// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] and [RequireClosed] wrap the select-with-timeout
// pattern so that tests waiting on a goroutine (a blocked Sleep on a
// fake clock, a readiness wait on a pipe) do not hang the suite when
// the goroutine never reports. These helpers are the only place tests
// use real wall-clock timeouts.
//
// Both call t.Fatalf on failure rather than returning errors.
package testutil
