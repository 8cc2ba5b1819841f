// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

type codedError struct{ code int }

func (e codedError) Error() string { return "coded" }
func (e codedError) ExitCode() int { return e.code }

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"plain", errors.New("boom"), 1, "error: boom\n"},
		{"coded", codedError{2}, 2, "error: coded\n"},
		{"wrapped coded", fmt.Errorf("running: %w", codedError{3}), 3, "error: running: coded\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			if code := report(&buffer, test.err); code != test.wantCode {
				t.Fatalf("report() = %d, want %d", code, test.wantCode)
			}
			if buffer.String() != test.wantText {
				t.Fatalf("report() wrote %q, want %q", buffer.String(), test.wantText)
			}
		})
	}
}
