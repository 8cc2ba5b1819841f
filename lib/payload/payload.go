// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cyrex562/libzmq-rs-sub001/lib/z85"
)

const (
	// HeaderSize is the length of the binary header before the body.
	HeaderSize = 8

	// MaxPayloadSize bounds the uncompressed length Unpack will
	// allocate for.
	MaxPayloadSize = 16 << 20
)

// ErrMalformed is wrapped by every Unpack error caused by the packed
// text rather than by Z85 decoding.
var ErrMalformed = errors.New("payload: malformed")

// Pack frames data and returns its Z85 text. tag selects the body
// compression; CompressionAuto probes the data. Data that does not
// compress is stored with CompressionNone.
func Pack(data []byte, tag CompressionTag) (string, error) {
	if len(data) > MaxPayloadSize {
		return "", fmt.Errorf("payload: %d bytes exceeds maximum %d", len(data), MaxPayloadSize)
	}
	if tag == CompressionAuto {
		tag = SelectCompression(data)
	}

	body, err := compress(data, tag)
	if errors.Is(err, errIncompressible) {
		tag, body = CompressionNone, data
	} else if err != nil {
		return "", err
	}

	padding := (4 - len(body)%4) % 4
	framed := make([]byte, HeaderSize+len(body)+padding)
	framed[0] = byte(tag)
	framed[1] = byte(padding)
	binary.BigEndian.PutUint32(framed[4:8], uint32(len(data)))
	copy(framed[HeaderSize:], body)

	return z85.Encode(framed)
}

// Unpack reverses Pack.
func Unpack(text string) ([]byte, error) {
	framed, err := z85.Decode(text)
	if err != nil {
		return nil, err
	}
	if len(framed) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformed, len(framed))
	}

	tag := CompressionTag(framed[0])
	padding := int(framed[1])
	if framed[2] != 0 || framed[3] != 0 {
		return nil, fmt.Errorf("%w: reserved header bytes are not zero", ErrMalformed)
	}
	size := binary.BigEndian.Uint32(framed[4:8])
	if size > MaxPayloadSize {
		return nil, fmt.Errorf("%w: declared length %d exceeds maximum %d", ErrMalformed, size, MaxPayloadSize)
	}

	body := framed[HeaderSize:]
	if padding > 3 || padding > len(body) {
		return nil, fmt.Errorf("%w: padding %d", ErrMalformed, padding)
	}
	for _, b := range body[len(body)-padding:] {
		if b != 0 {
			return nil, fmt.Errorf("%w: nonzero padding", ErrMalformed)
		}
	}
	body = body[:len(body)-padding]

	data, err := decompress(body, tag, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return data, nil
}

// Tag returns the compression tag recorded in packed text without
// decompressing the body.
func Tag(text string) (CompressionTag, error) {
	if len(text) < z85.EncodedLen(HeaderSize) {
		return 0, fmt.Errorf("%w: text shorter than the header", ErrMalformed)
	}
	header, err := z85.Decode(text[:z85.EncodedLen(HeaderSize)])
	if err != nil {
		return 0, err
	}
	return CompressionTag(header[0]), nil
}
