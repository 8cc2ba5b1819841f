// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the pieces shared by the command-line tools: the
// structured command logger and categorized tool errors.
//
// [NewCommandLogger] writes human-readable text when stderr is a
// terminal and JSON otherwise, unless the configuration forces one.
//
// [ToolError] separates "the caller gave bad input" ([Validation],
// exit code 2) from "something broke" ([Internal], exit code 1), so
// scripts can tell a usage mistake from a failure.
package cli
