//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package avalanche

import (
	"io"

	"github.com/markkurossi/sm3/sm3"
	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic pseudo-random generator producing the
// ChaCha20 keystream for a seed.
type PRG struct {
	cipher *chacha20.Cipher
}

var (
	_ io.Reader = &PRG{}
)

// NewPRG creates a new generator. The ChaCha20 key is the SM3 digest
// of seed and the nonce is zero.
func NewPRG(seed []byte) *PRG {
	key := sm3.Sum(seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

// Read fills p with keystream bytes. It never returns an error.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	prg.cipher.XORKeyStream(p, p)
	return len(p), nil
}
