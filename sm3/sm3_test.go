//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

var vectors = []struct {
	input  string
	digest string
}{
	{
		input:  "",
		digest: "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b",
	},
	{
		input:  "abc",
		digest: "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
	},
	{
		input:  strings.Repeat("abcd", 16),
		digest: "debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732",
	},
	{
		input:  strings.Repeat("a", 55),
		digest: "288337eef51eec62e7544d7270424c8dbe656254c99852870a73b2453a6a7fb1",
	},
	{
		input:  strings.Repeat("a", 56),
		digest: "ba00ebedaab54065a5fd4f9f56326016203166bcee3eed44ea868d59d67aa3c8",
	},
	{
		input:  strings.Repeat("a", 64),
		digest: "616ec433c359e7c2b19f360e2b8f2a1b6e9ed76b8dc1a7d207b31a5341c611e9",
	},
	{
		input:  strings.Repeat("a", 119),
		digest: "53282a90724e9eb79b18d06b5b8f7f02d046e18b29247dcdb064a136d5c4459a",
	},
	{
		input:  "The quick brown fox jumps over the lazy dog",
		digest: "5fdfe814b8573ca021983970fc79b2218c9570369b4859684e2e4c3fc76cb8ea",
	},
	{
		input:  "пароль",
		digest: "6970d4fad51194258ddf08594fd3372cd4dfbd2bb677372c965b86815199221f",
	},
}

func TestVectors(t *testing.T) {
	for idx, v := range vectors {
		if h := Hex([]byte(v.input)); h != v.digest {
			t.Errorf("vector %d: Hex=%s, expected %s", idx, h, v.digest)
		}
		sum := Sum([]byte(v.input))
		if hex.EncodeToString(sum[:]) != v.digest {
			t.Errorf("vector %d: Sum=%x, expected %s", idx, sum, v.digest)
		}

		d := New()
		d.Write([]byte(v.input))
		if h := d.HexSum(); h != v.digest {
			t.Errorf("vector %d: Digest=%s, expected %s", idx, h, v.digest)
		}
	}
}

func TestVectorsDistinct(t *testing.T) {
	seen := make(map[string]int)
	for idx, v := range vectors {
		if prev, ok := seen[v.digest]; ok {
			t.Fatalf("vectors %d and %d have equal digests", prev, idx)
		}
		seen[Hex([]byte(v.input))] = idx
	}
}

func TestHexFormat(t *testing.T) {
	var data []byte
	for i := 0; i < 300; i++ {
		h := Hex(data)
		if len(h) != HexSize {
			t.Fatalf("len(Hex(%d bytes))=%d", len(data), len(h))
		}
		for _, r := range h {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("invalid digest character %q in %s", r, h)
			}
		}
		data = append(data, byte(i*7))
	}
}

func TestDeterministic(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i)
	}
	for l := 0; l <= len(data); l += 37 {
		h1 := Hex(data[:l])
		h2 := Hex(data[:l])
		if h1 != h2 {
			t.Fatalf("Hex(%d bytes) not deterministic: %s != %s", l, h1, h2)
		}
	}
}

func TestInputNotModified(t *testing.T) {
	data := []byte("abc")
	orig := bytes.Clone(data)
	Sum(data[:2])
	Pad(data[:2])
	if !bytes.Equal(data, orig) {
		t.Fatalf("input modified: %x", data)
	}
}

func TestStreaming(t *testing.T) {
	data := make([]byte, 1031)
	for i := range data {
		data[i] = byte(i * 31)
	}
	expected := Sum(data)

	for _, chunk := range []int{1, 3, 7, 55, 63, 64, 65, 128, 1000} {
		d := New()
		for ofs := 0; ofs < len(data); ofs += chunk {
			end := ofs + chunk
			if end > len(data) {
				end = len(data)
			}
			n, err := d.Write(data[ofs:end])
			if err != nil || n != end-ofs {
				t.Fatalf("Write: n=%d, err=%v", n, err)
			}
		}
		if d.Len() != uint64(len(data)) {
			t.Fatalf("chunk %d: Len=%d", chunk, d.Len())
		}
		sum := d.Sum(nil)
		if !bytes.Equal(sum, expected[:]) {
			t.Fatalf("chunk %d: Sum=%x, expected %x", chunk, sum, expected)
		}
	}
}

func TestSumKeepsState(t *testing.T) {
	d := New()
	d.Write([]byte("ab"))
	d.Sum(nil)
	d.Write([]byte("c"))
	if h := d.HexSum(); h != vectors[1].digest {
		t.Fatalf("Sum changed state: %s", h)
	}

	prefix := []byte{0xff}
	out := d.Sum(prefix)
	if len(out) != 1+Size || out[0] != 0xff {
		t.Fatalf("Sum did not append: %x", out)
	}

	d.Reset()
	if h := d.HexSum(); h != vectors[0].digest {
		t.Fatalf("Reset: %s", h)
	}
	if d.Size() != Size || d.BlockSize() != BlockSize {
		t.Fatalf("Size=%d, BlockSize=%d", d.Size(), d.BlockSize())
	}
}

func BenchmarkHash1K(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}

func BenchmarkDigest8K(b *testing.B) {
	data := make([]byte, 8192)
	d := New()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Reset()
		d.Write(data)
		d.Sum(nil)
	}
}
