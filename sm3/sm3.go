//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

var (
	_ hash.Hash = &Digest{}
)

// Digest implements the streaming SM3 hash. The zero value is not
// usable; create digests with New. A Digest must not be used
// concurrently from multiple goroutines.
type Digest struct {
	h   [8]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New creates a new SM3 digest.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset resets the digest to its initial state.
func (d *Digest) Reset() {
	d.h = [8]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}
	d.nx = 0
	d.len = 0
}

// Size returns the digest size in bytes.
func (d *Digest) Size() int {
	return Size
}

// BlockSize returns the hash block size in bytes.
func (d *Digest) BlockSize() int {
	return BlockSize
}

// Len returns the number of bytes written to the digest.
func (d *Digest) Len() uint64 {
	return d.len
}

// Write adds p to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.len += uint64(nn)

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nn, nil
}

// Sum appends the current digest to in and returns the resulting
// slice. It does not change the underlying hash state.
func (d *Digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// HexSum returns the current digest as a lowercase hex string. It does
// not change the underlying hash state.
func (d *Digest) HexSum() string {
	d0 := *d
	sum := d0.checkSum()
	return hex.EncodeToString(sum[:])
}

func (d *Digest) checkSum() [Size]byte {
	l := d.len
	d.Write(padding(l))
	if d.nx != 0 {
		panic("sm3: d.nx != 0")
	}

	var result [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(result[i*4:], v)
	}
	return result
}

// Sum returns the SM3 digest of data.
func Sum(data []byte) [Size]byte {
	h := [8]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}
	block(&h, Pad(data))

	var result [Size]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(result[i*4:], v)
	}
	return result
}

// Hex returns the SM3 digest of data as a 64 character lowercase hex
// string.
func Hex(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}
