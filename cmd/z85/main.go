// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cyrex562/libzmq-rs-sub001/lib/cli"
	"github.com/cyrex562/libzmq-rs-sub001/lib/config"
	"github.com/cyrex562/libzmq-rs-sub001/lib/payload"
	"github.com/cyrex562/libzmq-rs-sub001/lib/process"
	"github.com/cyrex562/libzmq-rs-sub001/lib/version"
	"github.com/cyrex562/libzmq-rs-sub001/lib/z85"
)

// maxInput bounds how much a single invocation reads.
const maxInput = payload.MaxPayloadSize * 2

type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	stdio := streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(os.Args[1:], stdio); err != nil {
		process.Fatal(err)
	}
}

func run(args []string, stdio streams) error {
	if len(args) < 1 {
		printUsage(stdio.stderr)
		return cli.Validation("subcommand required")
	}

	subcommand := args[0]
	switch subcommand {
	case "encode", "decode", "pack", "unpack":
		return runCodec(subcommand, args[1:], stdio)
	case "version", "--version":
		version.Fprint(stdio.stdout, "z85")
		return nil
	case "-h", "--help", "help":
		printUsage(stdio.stdout)
		return nil
	default:
		printUsage(stdio.stderr)
		return cli.Validation("unknown subcommand: %q", subcommand)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: z85 <subcommand> [flags] [FILE|-]

Subcommands:
  encode      Encode binary input (length a multiple of 4) as Z85
  decode      Decode Z85 text to binary
  pack        Compress and frame input of any length, then encode
  unpack      Decode and unframe pack output
  version     Print version information

Input is read from FILE, or stdin when FILE is - or absent.
Run 'z85 <subcommand> --help' for subcommand flags.
`)
}

type codecOptions struct {
	configPath  string
	hex         bool
	compression string
}

func runCodec(subcommand string, args []string, stdio streams) error {
	var opts codecOptions
	flagSet := pflag.NewFlagSet("z85 "+subcommand, pflag.ContinueOnError)
	flagSet.SetOutput(stdio.stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "config file (default: $ZCORE_CONFIG if set)")
	switch subcommand {
	case "encode", "pack":
		flagSet.BoolVar(&opts.hex, "hex", false, "input is hex text rather than raw bytes")
	case "decode", "unpack":
		flagSet.BoolVar(&opts.hex, "hex", false, "write hex text rather than raw bytes")
	}
	if subcommand == "pack" {
		flagSet.StringVar(&opts.compression, "compression", "",
			"none, lz4, zstd, or auto (default: payload.compression from config)")
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return cli.Validation("%w", err)
	}
	if flagSet.NArg() > 1 {
		return cli.Validation("unexpected argument: %s", flagSet.Arg(1))
	}

	cfg, err := config.LoadOptional(opts.configPath)
	if err != nil {
		return cli.Validation("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid config: %w", err)
	}
	logger := cli.NewCommandLogger(cfg.LogLevel(), cfg.Log.Format).With("command", "z85 "+subcommand)

	input, err := readInput(flagSet.Arg(0), stdio.stdin)
	if err != nil {
		return err
	}

	switch subcommand {
	case "encode":
		data, err := binaryInput(input, opts.hex)
		if err != nil {
			return err
		}
		text, err := z85.Encode(data)
		if err != nil {
			return cli.Validation("%w", err)
		}
		fmt.Fprintln(stdio.stdout, text)

	case "decode":
		data, err := z85.Decode(strings.TrimSpace(string(input)))
		if err != nil {
			return cli.Validation("%w", err)
		}
		return writeBinary(stdio.stdout, data, opts.hex)

	case "pack":
		name := opts.compression
		if name == "" {
			name = cfg.Payload.Compression
		}
		tag, err := payload.ParseCompressionTag(name)
		if err != nil {
			return cli.Validation("--compression: %w", err)
		}
		data, err := binaryInput(input, opts.hex)
		if err != nil {
			return err
		}
		text, err := payload.Pack(data, tag)
		if err != nil {
			return cli.Validation("%w", err)
		}
		stored, _ := payload.Tag(text)
		logger.Debug("packed",
			"bytes", len(data),
			"requested", tag,
			"compression", stored,
			"characters", len(text),
		)
		fmt.Fprintln(stdio.stdout, text)

	case "unpack":
		data, err := payload.Unpack(strings.TrimSpace(string(input)))
		if err != nil {
			return cli.Validation("%w", err)
		}
		return writeBinary(stdio.stdout, data, opts.hex)
	}
	return nil
}

// readInput reads all of path, or stdin for "" and "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	reader := stdin
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, cli.Validation("%w", err)
		}
		defer file.Close()
		reader = file
	}
	data, err := io.ReadAll(io.LimitReader(reader, maxInput+1))
	if err != nil {
		return nil, cli.Internal("reading input: %w", err)
	}
	if len(data) > maxInput {
		return nil, cli.Validation("input exceeds %d bytes", maxInput)
	}
	return data, nil
}

func binaryInput(input []byte, isHex bool) ([]byte, error) {
	if !isHex {
		return input, nil
	}
	data, err := hex.DecodeString(string(bytes.Join(bytes.Fields(input), nil)))
	if err != nil {
		return nil, cli.Validation("--hex input: %w", err)
	}
	return data, nil
}

func writeBinary(w io.Writer, data []byte, isHex bool) error {
	var err error
	if isHex {
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
	} else {
		_, err = w.Write(data)
	}
	if err != nil {
		return cli.Internal("writing output: %w", err)
	}
	return nil
}
