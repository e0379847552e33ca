//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sm3 implements the SM3 cryptographic hash function as
// defined in GB/T 32905-2016 (ISO/IEC 10118-3:2018). SM3 is a
// Merkle–Damgård construction over 512-bit blocks producing a 256-bit
// digest.
//
// The one-shot functions Sum and Hex hash a complete byte slice:
//
//	digest := sm3.Hex([]byte("abc"))
//	// 66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0
//
// The Digest type implements hash.Hash for streaming input and can
// save and restore its running state with MarshalBinary and
// UnmarshalBinary.
//
// The message length is encoded into the final block as a 64-bit
// big-endian bit count. Inputs longer than MaxInputLen bytes cannot be
// represented in the length field.
package sm3
