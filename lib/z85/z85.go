// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package z85

import (
	"math"
	"strings"
)

// alphabet maps a base-85 digit to its character.
const alphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	".-:+=^!/*?&<>()[]{}@%$#"

// decodeOffset is the character code of the first decoder entry.
const decodeOffset = 32

// invalid marks decoder entries with no digit.
const invalid = 0xFF

// decoder maps (character - decodeOffset) to its base-85 digit.
// Characters below 32 or at/above 128 are outside the table.
var decoder = [96]byte{
	0xFF, 0x44, 0xFF, 0x54, 0x53, 0x52, 0x48, 0xFF,
	0x4B, 0x4C, 0x46, 0x41, 0xFF, 0x3F, 0x3E, 0x45,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x40, 0xFF, 0x49, 0x42, 0x4A, 0x47,
	0x51, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2A,
	0x2B, 0x2C, 0x2D, 0x2E, 0x2F, 0x30, 0x31, 0x32,
	0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3A,
	0x3B, 0x3C, 0x3D, 0x4D, 0xFF, 0x4E, 0x43, 0xFF,
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0x20,
	0x21, 0x22, 0x23, 0x4F, 0xFF, 0x50, 0xFF, 0xFF,
}

// Powers of 85 used to split a 32-bit group into digits, most
// significant first.
var powers85 = [5]uint32{85 * 85 * 85 * 85, 85 * 85 * 85, 85 * 85, 85, 1}

// EncodedLen returns the length of the encoding of n bytes. n must be
// a multiple of 4.
func EncodedLen(n int) int { return n / 4 * 5 }

// DecodedLen returns the length of the decoding of n characters. n must
// be a multiple of 5.
func DecodedLen(n int) int { return n / 5 * 4 }

// Encode returns the Z85 text for data. len(data) must be a multiple
// of 4; an empty input encodes to the empty string.
func Encode(data []byte) (string, error) {
	if len(data)%4 != 0 {
		return "", &Error{Kind: ErrInvalidLength, Offset: len(data)}
	}

	var builder strings.Builder
	builder.Grow(EncodedLen(len(data)))
	for group := 0; group < len(data); group += 4 {
		value := uint32(data[group])<<24 |
			uint32(data[group+1])<<16 |
			uint32(data[group+2])<<8 |
			uint32(data[group+3])
		for _, power := range powers85 {
			builder.WriteByte(alphabet[value/power%85])
		}
	}
	return builder.String(), nil
}

// Decode returns the bytes encoded by text. len(text) must be a
// non-zero multiple of 5.
func Decode(text string) ([]byte, error) {
	if len(text) == 0 || len(text)%5 != 0 {
		return nil, &Error{Kind: ErrInvalidLength, Offset: len(text)}
	}

	output := make([]byte, 0, DecodedLen(len(text)))
	for group := 0; group < len(text); group += 5 {
		var value uint64
		for index := group; index < group+5; index++ {
			digit, ok := decodeDigit(text[index])
			if !ok {
				return nil, &Error{Kind: ErrInvalidCharacter, Offset: index}
			}
			value = value*85 + uint64(digit)
			if value > math.MaxUint32 {
				return nil, &Error{Kind: ErrOverflow, Offset: group}
			}
		}
		output = append(output,
			byte(value>>24),
			byte(value>>16),
			byte(value>>8),
			byte(value),
		)
	}
	return output, nil
}

// decodeDigit returns the base-85 digit for character.
func decodeDigit(character byte) (byte, bool) {
	index := int(character) - decodeOffset
	if index < 0 || index >= len(decoder) {
		return 0, false
	}
	digit := decoder[index]
	return digit, digit != invalid
}
