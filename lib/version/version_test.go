// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, dirty, buildTime string) {
	t.Helper()
	saved := [4]string{Version, GitCommit, GitDirty, BuildTime}
	Version, GitCommit, GitDirty, BuildTime = version, commit, dirty, buildTime
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2], saved[3]
	})
}

func TestInfo(t *testing.T) {
	withBuildInfo(t, "1.2.3", "abc1234", "false", "2026-10-16T00:00:00Z")
	if got, want := Info(), "1.2.3 (abc1234, 2026-10-16T00:00:00Z)"; got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got, want := Info(), "1.2.3 (abc1234-dirty, 2026-10-16T00:00:00Z)"; got != want {
		t.Fatalf("Info() dirty = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Fatalf("Full() = %q, want prefix %q", full, Info())
	}
	if !strings.Contains(full, runtime.Version()) || !strings.Contains(full, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Fatalf("Full() = %q, missing Go version or platform", full)
	}
}

func TestFprint(t *testing.T) {
	withBuildInfo(t, "1.0.0", "deadbee", "false", "now")
	var buffer bytes.Buffer
	Fprint(&buffer, "curve-keygen")
	if got, want := buffer.String(), "curve-keygen 1.0.0 (deadbee, now)\n"; got != want {
		t.Fatalf("Fprint() wrote %q, want %q", got, want)
	}
}
