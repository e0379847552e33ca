//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"encoding"
	"encoding/binary"
	"errors"
)

var (
	_ encoding.BinaryMarshaler   = &Digest{}
	_ encoding.BinaryUnmarshaler = &Digest{}
)

const (
	magic         = "sm3\x03"
	marshaledSize = len(magic) + 8*4 + BlockSize + 8
)

var (
	// ErrInvalidState is returned when unmarshaling a hash state that
	// was not produced by MarshalBinary.
	ErrInvalidState = errors.New("sm3: invalid hash state identifier")

	// ErrStateSize is returned when unmarshaling a hash state of
	// wrong size.
	ErrStateSize = errors.New("sm3: invalid hash state size")
)

// MarshalBinary encodes the running hash state so that hashing can
// be resumed later with UnmarshalBinary.
func (d *Digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, v := range d.h {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, d.x[:d.nx]...)
	b = b[:len(b)+len(d.x)-d.nx]
	b = binary.BigEndian.AppendUint64(b, d.len)
	return b, nil
}

// UnmarshalBinary restores the hash state from b.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return ErrInvalidState
	}
	if len(b) != marshaledSize {
		return ErrStateSize
	}
	b = b[len(magic):]
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	b = b[copy(d.x[:], b):]
	d.len = binary.BigEndian.Uint64(b)
	d.nx = int(d.len % BlockSize)
	return nil
}
