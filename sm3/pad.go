//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"encoding/binary"
)

// padZeros returns the number of zero bytes that follow the 0x80
// marker byte for a message of l bytes. With the bit length b = 8l,
// the number of zero bits k after the single one bit is the smallest
// non-negative k for which b+1+k = 448 (mod 512). The 0x80 byte
// carries the one bit and the first seven zero bits, leaving k/8
// whole zero bytes.
func padZeros(l uint64) uint64 {
	b := l << 3
	k := (448 + 512 - (b+1)%512) % 512
	return k / 8
}

// PaddedLen returns the length of the padded message for an input of
// l bytes. The result is always a multiple of BlockSize.
func PaddedLen(l uint64) uint64 {
	return l + 1 + padZeros(l) + lenFieldSize
}

// padding returns the padding suffix for a message of l bytes: the
// 0x80 marker, the zero fill, and the 64-bit big-endian bit length.
func padding(l uint64) []byte {
	n := 1 + padZeros(l)
	buf := make([]byte, n+lenFieldSize)
	buf[0] = 0x80
	binary.BigEndian.PutUint64(buf[n:], l<<3)
	return buf
}

// Pad returns a padded copy of msg whose length is a multiple of
// BlockSize. The argument msg is not modified.
func Pad(msg []byte) []byte {
	suffix := padding(uint64(len(msg)))

	result := make([]byte, 0, len(msg)+len(suffix))
	result = append(result, msg...)
	return append(result, suffix...)
}
