//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"encoding/binary"
	"math/bits"
)

// schedule holds the expanded message words of one block.
type schedule struct {
	w  [scheduleLen]uint32
	w1 [rounds]uint32
}

func p0(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17)
}

func p1(x uint32) uint32 {
	return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23)
}

func ff(x, y, z uint32, j int) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return (x & y) | (x & z) | (y & z)
}

func gg(x, y, z uint32, j int) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return (x & y) | (^x & z)
}

func tj(j int) uint32 {
	if j < 16 {
		return t0
	}
	return t1
}

// expand computes the message schedule W and W' from the 64-byte
// block p.
func (s *schedule) expand(p []byte) {
	_ = p[BlockSize-1]

	for j := 0; j < messageWords; j++ {
		s.w[j] = binary.BigEndian.Uint32(p[j*4:])
	}
	for j := messageWords; j < scheduleLen; j++ {
		s.w[j] = p1(s.w[j-16]^s.w[j-9]^bits.RotateLeft32(s.w[j-3], 15)) ^
			bits.RotateLeft32(s.w[j-13], 7) ^ s.w[j-6]
	}
	for j := 0; j < rounds; j++ {
		s.w1[j] = s.w[j] ^ s.w[j+4]
	}
}

// compress runs the 64 rounds of the compression function over the
// schedule s and folds the result into the state v.
func compress(v *[8]uint32, s *schedule) {
	a, b, c, d := v[0], v[1], v[2], v[3]
	e, f, g, h := v[4], v[5], v[6], v[7]

	for j := 0; j < rounds; j++ {
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+bits.RotateLeft32(tj(j), j%32), 7)
		ss2 := ss1 ^ a12
		tt1 := ff(a, b, c, j) + d + ss2 + s.w1[j]
		tt2 := gg(e, f, g, j) + h + ss1 + s.w[j]

		d = c
		c = bits.RotateLeft32(b, 9)
		b = a
		a = tt1
		h = g
		g = bits.RotateLeft32(f, 19)
		f = e
		e = p0(tt2)
	}

	v[0] ^= a
	v[1] ^= b
	v[2] ^= c
	v[3] ^= d
	v[4] ^= e
	v[5] ^= f
	v[6] ^= g
	v[7] ^= h
}

// block processes all complete blocks of p in order, folding them
// into the state v. Trailing bytes shorter than BlockSize are
// ignored.
func block(v *[8]uint32, p []byte) {
	var s schedule

	for len(p) >= BlockSize {
		s.expand(p[:BlockSize])
		compress(v, &s)
		p = p[BlockSize:]
	}
}
