// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

type sampleRecord struct {
	Version int    `cbor:"version"`
	Public  string `cbor:"public"`
	Secret  string `cbor:"secret,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{
		Version: 1,
		Public:  "Yne@$w-vo<fVvi]a<NY6T1ed:M$fCG*[IaLV{hID",
		Secret:  "D:)Q[IlAW!ahhC2ac:9*A}h:p?([4%wOTJ%JR%cs",
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(map[string]int{"zeta": 1, "alpha": 2, "mid": 3})
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(map[string]int{"mid": 3, "alpha": 2, "zeta": 1})
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestMarshalSmallestInteger(t *testing.T) {
	data, err := Marshal(uint64(10))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Integers below 24 encode in the initial byte.
	if want := []byte{0x0a}; !bytes.Equal(data, want) {
		t.Fatalf("Marshal(10) = %x, want %x", data, want)
	}
}

func TestUnmarshalAnyUsesStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"version": 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := decoded.(map[string]any); !ok {
		t.Fatalf("Unmarshal into any produced %T, want map[string]any", decoded)
	}
}

func TestUnmarshalRejectsDuplicateKeys(t *testing.T) {
	// {"a": 1, "a": 2}
	data := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02}
	var decoded map[string]int
	if err := Unmarshal(data, &decoded); err == nil {
		t.Fatalf("Unmarshal accepted duplicate keys: %v", decoded)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	data, err := Marshal(map[string]any{"version": 2, "public": "p", "comment": "extra"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Version != 2 || decoded.Public != "p" {
		t.Fatalf("Unmarshal = %+v", decoded)
	}
}
