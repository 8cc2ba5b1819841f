// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the logger for a tool invocation. format is
// "text", "json", or "auto"; auto picks text when stderr is a terminal
// and JSON when it is piped or redirected.
//
// Callers scope the logger with command context via With():
//
//	logger := cli.NewCommandLogger(cfg.LogLevel(), cfg.Log.Format).With(
//	    "command", "curve-keygen",
//	)
func NewCommandLogger(level slog.Level, format string) *slog.Logger {
	return newLogger(os.Stderr, IsTerminal(os.Stderr), level, format)
}

func newLogger(w io.Writer, terminal bool, level slog.Level, format string) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	useText := format == "text" || (format != "json" && terminal)
	if useText {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// IsTerminal reports whether file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
