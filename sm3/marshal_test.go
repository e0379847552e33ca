//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"bytes"
	"errors"
	"testing"
)

func TestMarshalResume(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 20)
	expected := Sum(data)

	for split := 0; split <= len(data); split += 13 {
		d := New()
		d.Write(data[:split])

		state, err := d.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}
		if len(state) != marshaledSize {
			t.Fatalf("state size %d, expected %d", len(state), marshaledSize)
		}

		r := New()
		if err := r.UnmarshalBinary(state); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		r.Write(data[split:])
		if sum := r.Sum(nil); !bytes.Equal(sum, expected[:]) {
			t.Fatalf("split %d: resumed %x, expected %x", split, sum, expected)
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	d := New()
	if err := d.UnmarshalBinary([]byte("md5\x01")); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("invalid magic: %v", err)
	}
	if err := d.UnmarshalBinary(nil); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("empty state: %v", err)
	}
	state, _ := d.MarshalBinary()
	if err := d.UnmarshalBinary(state[:len(state)-1]); !errors.Is(err, ErrStateSize) {
		t.Fatalf("truncated state: %v", err)
	}
}
