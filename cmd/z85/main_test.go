// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyrex562/libzmq-rs-sub001/lib/cli"
	"github.com/cyrex562/libzmq-rs-sub001/lib/config"
	"github.com/cyrex562/libzmq-rs-sub001/lib/payload"
	"github.com/cyrex562/libzmq-rs-sub001/lib/z85"
)

var helloWorld = []byte{0x86, 0x4F, 0xD2, 0x6F, 0xB5, 0x59, 0xF7, 0x5B}

func runTool(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, stderr bytes.Buffer
	err := run(args, streams{
		stdin:  bytes.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
	})
	return stdout.String(), err
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryValidation {
		t.Fatalf("error = %v, want a validation ToolError", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	output, err := runTool(t, helloWorld, "encode")
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if output != "HelloWorld\n" {
		t.Fatalf("encode = %q, want %q", output, "HelloWorld\n")
	}

	output, err = runTool(t, []byte("HelloWorld\n"), "decode")
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !bytes.Equal([]byte(output), helloWorld) {
		t.Fatalf("decode = %x, want %x", output, helloWorld)
	}
}

func TestHex(t *testing.T) {
	output, err := runTool(t, []byte("864fd26f\nb559f75b\n"), "encode", "--hex")
	if err != nil || output != "HelloWorld\n" {
		t.Fatalf("encode --hex = (%q, %v)", output, err)
	}
	output, err = runTool(t, []byte("HelloWorld"), "decode", "--hex")
	if err != nil || output != "864fd26fb559f75b\n" {
		t.Fatalf("decode --hex = (%q, %v)", output, err)
	}
	_, err = runTool(t, []byte("zz"), "encode", "--hex")
	requireValidation(t, err)
}

func TestEncodeRejectsUnalignedInput(t *testing.T) {
	_, err := runTool(t, []byte("abc"), "encode")
	requireValidation(t, err)
	if !errors.Is(err, z85.ErrInvalidLength) {
		t.Fatalf("encode error = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeRejectsInvalidText(t *testing.T) {
	_, err := runTool(t, []byte("Hello\"orld"), "decode")
	requireValidation(t, err)
	if !errors.Is(err, z85.ErrInvalidCharacter) {
		t.Fatalf("decode error = %v, want ErrInvalidCharacter", err)
	}
}

func TestPackUnpack(t *testing.T) {
	data := []byte(strings.Repeat("readiness ", 50) + "odd")
	for _, compression := range []string{"none", "lz4", "zstd", "auto"} {
		t.Run(compression, func(t *testing.T) {
			packed, err := runTool(t, data, "pack", "--compression", compression)
			if err != nil {
				t.Fatalf("pack error: %v", err)
			}
			if compression == "zstd" {
				tag, err := payload.Tag(strings.TrimSpace(packed))
				if err != nil || tag != payload.CompressionZstd {
					t.Fatalf("Tag() = (%v, %v), want zstd", tag, err)
				}
			}
			unpacked, err := runTool(t, []byte(packed), "unpack")
			if err != nil {
				t.Fatalf("unpack error: %v", err)
			}
			if unpacked != string(data) {
				t.Fatalf("unpack = %q, want %q", unpacked, data)
			}
		})
	}
}

func TestPackCompressionFromConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "zcore.yaml")
	if err := os.WriteFile(configPath, []byte("payload:\n  compression: lz4\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data := bytes.Repeat([]byte("lz4 "), 100)
	packed, err := runTool(t, data, "pack", "--config", configPath)
	if err != nil {
		t.Fatalf("pack error: %v", err)
	}
	tag, err := payload.Tag(strings.TrimSpace(packed))
	if err != nil || tag != payload.CompressionLZ4 {
		t.Fatalf("Tag() = (%v, %v), want lz4", tag, err)
	}
}

func TestPackRejectsUnknownCompression(t *testing.T) {
	_, err := runTool(t, []byte("data"), "pack", "--compression", "brotli")
	requireValidation(t, err)
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, helloWorld, 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	output, err := runTool(t, nil, "encode", path)
	if err != nil || output != "HelloWorld\n" {
		t.Fatalf("encode FILE = (%q, %v)", output, err)
	}

	_, err = runTool(t, nil, "encode", filepath.Join(t.TempDir(), "missing"))
	requireValidation(t, err)
	_, err = runTool(t, nil, "encode", path, "extra")
	requireValidation(t, err)
}

func TestSubcommands(t *testing.T) {
	_, err := runTool(t, nil)
	requireValidation(t, err)
	_, err = runTool(t, nil, "transcode")
	requireValidation(t, err)

	output, err := runTool(t, nil, "version")
	if err != nil || !strings.HasPrefix(output, "z85 ") {
		t.Fatalf("version = (%q, %v)", output, err)
	}
	output, err = runTool(t, nil, "help")
	if err != nil || !strings.Contains(output, "unpack") {
		t.Fatalf("help = (%q, %v)", output, err)
	}
}
