//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

const (
	// Size specifies the size of the SM3 digest in bytes.
	Size = 32

	// HexSize specifies the length of the hex encoded digest.
	HexSize = 2 * Size

	// BlockSize specifies the SM3 block size in bytes.
	BlockSize = 64

	// MaxInputLen specifies the maximum input length in bytes whose
	// bit length fits into the 64-bit length field of the padding.
	MaxInputLen = 1<<61 - 1

	// lenFieldSize is the size of the big-endian bit length field
	// that ends the last block.
	lenFieldSize = 8
)

// Initial state vector IV.
const (
	iv0 = 0x7380166f
	iv1 = 0x4914b2b9
	iv2 = 0x172442d7
	iv3 = 0xda8a0600
	iv4 = 0xa96f30bc
	iv5 = 0x163138aa
	iv6 = 0xe38dee4d
	iv7 = 0xb0fb0e4e
)

// Round constants: t0 for rounds 0-15, t1 for rounds 16-63.
const (
	t0 = 0x79cc4519
	t1 = 0x7a879d8a
)

const (
	rounds       = 64
	scheduleLen  = rounds + 4
	messageWords = BlockSize / 4
)
