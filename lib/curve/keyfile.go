// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package curve

import (
	"errors"
	"fmt"
	"os"

	"github.com/cyrex562/libzmq-rs-sub001/lib/codec"
	"github.com/cyrex562/libzmq-rs-sub001/lib/sealed"
	"github.com/cyrex562/libzmq-rs-sub001/lib/secret"
)

// keyfileVersion is the only keyfile format version written and read.
const keyfileVersion = 1

var (
	// ErrKeyfileMismatch is returned when a keyfile's secret key does
	// not produce its recorded public key.
	ErrKeyfileMismatch = errors.New("curve: keyfile public key does not match secret key")

	// ErrIdentityRequired is returned when reading a sealed keyfile
	// without an age identity.
	ErrIdentityRequired = errors.New("curve: keyfile is sealed; an age identity is required")
)

// keyfile is the on-disk record. Exactly one of SealedSecret and Secret
// is set.
type keyfile struct {
	Version      int      `cbor:"version"`
	Public       string   `cbor:"public"`
	Recipients   []string `cbor:"recipients,omitempty"`
	SealedSecret string   `cbor:"sealed_secret,omitempty"`
	Secret       string   `cbor:"secret,omitempty"`
}

// WriteKeyfile writes keypair to path with mode 0600. With recipients
// the Z85 secret key is sealed to them; without, it is stored in
// plaintext. An existing file is not overwritten.
func WriteKeyfile(path string, keypair *Keypair, recipients []string) error {
	secretText, err := keypair.SecretZ85()
	if err != nil {
		return err
	}
	defer secretText.Close()

	record := keyfile{
		Version:    keyfileVersion,
		Public:     keypair.Public.String(),
		Recipients: recipients,
	}
	if len(recipients) > 0 {
		record.SealedSecret, err = sealed.Seal(secretText.Bytes(), recipients)
		if err != nil {
			return fmt.Errorf("sealing secret key: %w", err)
		}
	} else {
		record.Secret = secretText.String()
	}

	data, err := codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding keyfile: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("creating keyfile: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("writing keyfile %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing keyfile %s: %w", path, err)
	}
	return nil
}

// ReadKeyfile loads a keypair from path. identity is the age identity
// for sealed keyfiles and may be nil for plaintext ones; it is
// borrowed, not closed. The secret key is checked against the recorded
// public key. The caller must Close the returned keypair.
func ReadKeyfile(path string, identity *secret.Buffer) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyfile: %w", err)
	}

	var record keyfile
	if err := codec.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding keyfile %s: %w", path, err)
	}
	if record.Version != keyfileVersion {
		return nil, fmt.Errorf("keyfile %s: unsupported version %d", path, record.Version)
	}

	var secretText *secret.Buffer
	switch {
	case record.SealedSecret != "" && record.Secret != "":
		return nil, fmt.Errorf("keyfile %s: both sealed and plaintext secret present", path)
	case record.SealedSecret != "":
		if identity == nil {
			return nil, ErrIdentityRequired
		}
		secretText, err = sealed.Open(record.SealedSecret, identity)
		if err != nil {
			return nil, fmt.Errorf("opening sealed secret key: %w", err)
		}
	case record.Secret != "":
		secretText, err = secret.NewFromBytes([]byte(record.Secret))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("keyfile %s: no secret key", path)
	}
	defer secretText.Close()

	keypair, err := DerivePublic(secretText)
	if err != nil {
		return nil, err
	}
	if keypair.Public.String() != record.Public {
		keypair.Close()
		return nil, ErrKeyfileMismatch
	}
	return keypair, nil
}
