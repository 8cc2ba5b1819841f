// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerFormat(t *testing.T) {
	tests := []struct {
		name     string
		terminal bool
		format   string
		wantJSON bool
	}{
		{"auto on terminal", true, "auto", false},
		{"auto when piped", false, "auto", true},
		{"forced text when piped", false, "text", false},
		{"forced json on terminal", true, "json", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			newLogger(&buffer, test.terminal, slog.LevelInfo, test.format).Info("generated", "fingerprint", "curve-00")
			isJSON := json.Valid(bytes.TrimSpace(buffer.Bytes()))
			if isJSON != test.wantJSON {
				t.Fatalf("output %q: JSON = %v, want %v", buffer.String(), isJSON, test.wantJSON)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelWarn, "json")
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buffer.String(), "hidden") || !strings.Contains(buffer.String(), "shown") {
		t.Fatalf("level filtering wrong: %q", buffer.String())
	}
}

func TestToolError(t *testing.T) {
	validation := Validation("bad key %q", "xyz")
	if validation.Error() != `bad key "xyz"` {
		t.Errorf("Error() = %q", validation.Error())
	}
	if validation.Category != CategoryValidation || validation.ExitCode() != 2 {
		t.Errorf("Validation: category %s, exit %d", validation.Category, validation.ExitCode())
	}

	internal := Internal("writing keyfile: %w", fs.ErrPermission)
	if internal.ExitCode() != 1 {
		t.Errorf("Internal exit code = %d, want 1", internal.ExitCode())
	}
	if !errors.Is(internal, fs.ErrPermission) {
		t.Error("Internal does not unwrap to the wrapped error")
	}
	var toolError *ToolError
	if !errors.As(error(internal), &toolError) || toolError.Category != CategoryInternal {
		t.Error("errors.As did not find the ToolError")
	}
}
