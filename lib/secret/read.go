// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// maxReadSize bounds how much ReadFrom accepts. Key material is short.
const maxReadSize = 64 << 10

// ReadFromPath reads a secret from path, or from stdin if path is "-".
// Surrounding whitespace is trimmed. The caller must close the buffer.
func ReadFromPath(path string) (*Buffer, error) {
	if path == "-" {
		buffer, err := ReadFrom(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return buffer, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	buffer, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buffer, nil
}

// ReadFrom reads all of reader (at most 64 KiB) into a secret buffer,
// trimming surrounding whitespace. Intermediate copies are zeroed.
func ReadFrom(reader io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxReadSize+1))
	if err != nil {
		Zero(data)
		return nil, err
	}
	if len(data) > maxReadSize {
		Zero(data)
		return nil, fmt.Errorf("secret exceeds %d bytes", maxReadSize)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
