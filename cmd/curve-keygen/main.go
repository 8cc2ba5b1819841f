// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cyrex562/libzmq-rs-sub001/lib/cli"
	"github.com/cyrex562/libzmq-rs-sub001/lib/config"
	"github.com/cyrex562/libzmq-rs-sub001/lib/curve"
	"github.com/cyrex562/libzmq-rs-sub001/lib/process"
	"github.com/cyrex562/libzmq-rs-sub001/lib/sealed"
	"github.com/cyrex562/libzmq-rs-sub001/lib/secret"
	"github.com/cyrex562/libzmq-rs-sub001/lib/version"
)

// streams is the process I/O, replaced in tests.
type streams struct {
	stdin          io.Reader
	stdout         io.Writer
	stdoutTerminal bool
}

func main() {
	stdio := streams{
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stdoutTerminal: cli.IsTerminal(os.Stdout),
	}
	if err := run(os.Args[1:], stdio); err != nil {
		process.Fatal(err)
	}
}

type options struct {
	configPath  string
	sealTo      []string
	out         string
	derive      string
	force       bool
	ageIdentity bool
}

func run(args []string, stdio streams) error {
	var opts options
	flagSet := pflag.NewFlagSet("curve-keygen", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "config file (default: $ZCORE_CONFIG if set)")
	flagSet.StringArrayVar(&opts.sealTo, "seal-to", nil, "age recipient to seal the secret key to (repeatable)")
	flagSet.StringVar(&opts.out, "out", "", "write the keypair to this keyfile instead of printing the secret key")
	flagSet.StringVar(&opts.derive, "derive", "", "read a Z85 secret key from FILE (or - for stdin) and print its keypair")
	flagSet.BoolVar(&opts.force, "force", false, "print a plaintext secret key even when stdout is not a terminal")
	flagSet.BoolVar(&opts.ageIdentity, "age-identity", false, "generate an age identity for --seal-to instead of a Curve keypair")
	flagSet.BoolP("help", "h", false, "show help")

	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdio.stdout, "curve-keygen")
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdio.stdout, flagSet)
			return nil
		}
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdio.stdout, flagSet)
		return nil
	}
	if flagSet.NArg() > 0 {
		return cli.Validation("unexpected argument: %s", flagSet.Arg(0))
	}

	cfg, err := config.LoadOptional(opts.configPath)
	if err != nil {
		return cli.Validation("loading config: %w", err)
	}
	if len(opts.sealTo) == 0 {
		opts.sealTo = cfg.Keys.SealTo
	}
	if opts.out == "" && opts.derive == "" {
		opts.out = cfg.Keys.Keyfile
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid config: %w", err)
	}
	for _, recipient := range opts.sealTo {
		if err := sealed.ParseRecipient(recipient); err != nil {
			return cli.Validation("--seal-to: %w", err)
		}
	}

	logger := cli.NewCommandLogger(cfg.LogLevel(), cfg.Log.Format).With("command", "curve-keygen")

	if opts.ageIdentity {
		return printAgeIdentity(stdio, opts.force)
	}

	var keypair *curve.Keypair
	if opts.derive != "" {
		keypair, err = deriveKeypair(opts.derive, stdio.stdin)
	} else {
		keypair, err = curve.GenerateKeypair()
		if err != nil {
			err = cli.Internal("generating keypair: %w", err)
		}
	}
	if err != nil {
		return err
	}
	defer keypair.Close()

	fingerprint := curve.Fingerprint(keypair.Public)

	if opts.out != "" {
		if err := curve.WriteKeyfile(opts.out, keypair, opts.sealTo); err != nil {
			return cli.Internal("%w", err)
		}
		logger.Info("keyfile written",
			"path", opts.out,
			"fingerprint", fingerprint,
			"sealed", len(opts.sealTo) > 0,
		)
		fmt.Fprintf(stdio.stdout, "== CURVE PUBLIC KEY ==\n%s\n", keypair.Public)
		return nil
	}

	logger.Debug("printing keypair", "fingerprint", fingerprint, "sealed", len(opts.sealTo) > 0)
	return printKeypair(stdio, keypair, opts.sealTo, opts.force)
}

// deriveKeypair reads a Z85 secret key from path, or stdin for "-".
func deriveKeypair(path string, stdin io.Reader) (*curve.Keypair, error) {
	var (
		text *secret.Buffer
		err  error
	)
	if path == "-" {
		text, err = secret.ReadFrom(stdin)
	} else {
		text, err = secret.ReadFromPath(path)
	}
	if err != nil {
		return nil, cli.Validation("reading secret key: %w", err)
	}
	defer text.Close()

	keypair, err := curve.DerivePublic(text)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return keypair, nil
}

// printKeypair writes the public key and the secret key, sealed when
// recipients are given. A plaintext secret key is only written to a
// terminal unless force is set.
func printKeypair(stdio streams, keypair *curve.Keypair, recipients []string, force bool) error {
	if len(recipients) == 0 && !stdio.stdoutTerminal && !force {
		return cli.Validation("refusing to write a plaintext secret key to a non-terminal; use --seal-to, --out, or --force")
	}

	secretText, err := keypair.SecretZ85()
	if err != nil {
		return cli.Internal("%w", err)
	}
	defer secretText.Close()

	fmt.Fprintf(stdio.stdout, "== CURVE PUBLIC KEY ==\n%s\n", keypair.Public)
	if len(recipients) == 0 {
		fmt.Fprintf(stdio.stdout, "== CURVE SECRET KEY ==\n%s\n", secretText.Bytes())
		return nil
	}

	sealedText, err := sealed.Seal(secretText.Bytes(), recipients)
	if err != nil {
		return cli.Internal("sealing secret key: %w", err)
	}
	fmt.Fprintf(stdio.stdout, "== CURVE SEALED SECRET KEY ==\n%s\n", sealedText)
	return nil
}

// printAgeIdentity writes a new age identity in age-keygen layout.
func printAgeIdentity(stdio streams, force bool) error {
	if !stdio.stdoutTerminal && !force {
		return cli.Validation("refusing to write an age identity to a non-terminal; use --force")
	}
	identity, err := sealed.GenerateIdentity()
	if err != nil {
		return cli.Internal("%w", err)
	}
	defer identity.Close()

	fmt.Fprintf(stdio.stdout, "# public key: %s\n%s\n", identity.Recipient, identity.Secret.Bytes())
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Generate a CurveZMQ keypair in Z85 text form.

Usage:
  curve-keygen [flags]

Flags:
%s
Configuration:
  keys.seal_to and keys.keyfile in the config file supply defaults
  for --seal-to and --out.
`, flagSet.FlagUsages())
}
