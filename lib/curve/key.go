// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package curve

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/curve25519"

	"github.com/cyrex562/libzmq-rs-sub001/lib/secret"
	"github.com/cyrex562/libzmq-rs-sub001/lib/z85"
)

const (
	// KeySize is the length of a binary Curve25519 key.
	KeySize = 32

	// KeySizeZ85 is the length of a Z85-encoded key.
	KeySizeZ85 = 40
)

// ErrKeyLength is wrapped by errors for a key of the wrong size.
var ErrKeyLength = errors.New("curve: wrong key length")

// PublicKey is a Curve25519 public key.
type PublicKey [KeySize]byte

// String returns the Z85 form of the key.
func (k PublicKey) String() string {
	// KeySize is a multiple of four, so encoding cannot fail.
	text, _ := z85.Encode(k[:])
	return text
}

// Keypair is a public key and its secret key. Secret holds the 32 raw
// secret key bytes.
type Keypair struct {
	Public PublicKey
	Secret *secret.Buffer
}

// Close releases the secret key memory. Idempotent.
func (k *Keypair) Close() error {
	if k.Secret != nil {
		return k.Secret.Close()
	}
	return nil
}

// SecretZ85 returns the Z85 form of the secret key in a new buffer.
// The caller must Close it.
func (k *Keypair) SecretZ85() (*secret.Buffer, error) {
	text, err := z85.Encode(k.Secret.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encoding secret key: %w", err)
	}
	return secret.NewFromBytes([]byte(text))
}

// GenerateKeypair creates a keypair from the operating system's random
// source. The caller must Close it.
func GenerateKeypair() (*Keypair, error) {
	secretKey, err := secret.New(KeySize)
	if err != nil {
		return nil, fmt.Errorf("allocating secret key: %w", err)
	}
	if _, err := rand.Read(secretKey.Bytes()); err != nil {
		secretKey.Close()
		return nil, fmt.Errorf("reading random secret key: %w", err)
	}
	return keypairFromSecret(secretKey)
}

// DerivePublic parses a Z85 secret key and computes its keypair. The
// secret text is borrowed, not closed. The caller must Close the
// returned keypair.
func DerivePublic(secretZ85 *secret.Buffer) (*Keypair, error) {
	raw, err := ParseKey(string(secretZ85.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("parsing secret key: %w", err)
	}
	secretKey, err := secret.NewFromBytes(raw[:])
	if err != nil {
		return nil, fmt.Errorf("protecting secret key: %w", err)
	}
	return keypairFromSecret(secretKey)
}

// keypairFromSecret takes ownership of secretKey.
func keypairFromSecret(secretKey *secret.Buffer) (*Keypair, error) {
	public, err := curve25519.X25519(secretKey.Bytes(), curve25519.Basepoint)
	if err != nil {
		secretKey.Close()
		return nil, fmt.Errorf("deriving public key: %w", err)
	}
	keypair := &Keypair{Secret: secretKey}
	copy(keypair.Public[:], public)
	return keypair, nil
}

// ParseKey decodes a 40-character Z85 key.
func ParseKey(text string) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(text) != KeySizeZ85 {
		return key, fmt.Errorf("%w: %d characters, want %d", ErrKeyLength, len(text), KeySizeZ85)
	}
	raw, err := z85.Decode(text)
	if err != nil {
		return key, err
	}
	copy(key[:], raw)
	secret.Zero(raw)
	return key, nil
}

// ParsePublicKey decodes a 40-character Z85 public key.
func ParsePublicKey(text string) (PublicKey, error) {
	key, err := ParseKey(text)
	return PublicKey(key), err
}

// fingerprintDomainKey separates public key fingerprints from any
// other BLAKE3 keyed hash over the same bytes.
var fingerprintDomainKey = [32]byte{
	'z', 'c', 'o', 'r', 'e', '.', 'c', 'u', 'r', 'v', 'e', '.',
	'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns "curve-" followed by the first eight bytes, in
// hex, of a keyed BLAKE3 hash of the public key.
func Fingerprint(key PublicKey) string {
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("curve: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(key[:])
	return "curve-" + hex.EncodeToString(hasher.Sum(nil)[:8])
}
