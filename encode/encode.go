//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package encode converts text into the byte sequences that are fed
// to the digest functions. Text can be given as Unicode code points,
// as 16-bit code units, or as Go strings.
package encode

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrInvalidInput is returned when the input cannot be encoded
	// as UTF-8.
	ErrInvalidInput = errors.New("invalid input")
)

// SurrogatePolicy specifies how UTF-16 surrogate code units are
// encoded.
type SurrogatePolicy int

// Surrogate policies.
const (
	// CombinePairs combines high and low surrogate pairs into one
	// code point which is then encoded as a four byte UTF-8
	// sequence. Unpaired surrogates are rejected.
	CombinePairs SurrogatePolicy = iota

	// PerUnit encodes every 16-bit code unit independently as if it
	// were a code point. Surrogates become three byte sequences.
	PerUnit
)

var surrogatePolicies = map[SurrogatePolicy]string{
	CombinePairs: "combine",
	PerUnit:      "per-unit",
}

func (p SurrogatePolicy) String() string {
	name, ok := surrogatePolicies[p]
	if ok {
		return name
	}
	return fmt.Sprintf("{SurrogatePolicy %d}", p)
}

// ParseSurrogatePolicy parses the surrogate policy name.
func ParseSurrogatePolicy(name string) (SurrogatePolicy, error) {
	for k, v := range surrogatePolicies {
		if v == name {
			return k, nil
		}
	}
	return CombinePairs, fmt.Errorf("unknown surrogate policy '%s'", name)
}

// appendCodePoint appends the UTF-8 encoding of the code point cp to
// buf. The function does not validate cp.
func appendCodePoint(buf []byte, cp uint32) []byte {
	switch {
	case cp < 0x80:
		return append(buf, byte(cp))

	case cp < 0x800:
		return append(buf,
			0xc0|byte(cp>>6),
			0x80|byte(cp&0x3f))

	case cp < 0x10000:
		return append(buf,
			0xe0|byte(cp>>12),
			0x80|byte((cp>>6)&0x3f),
			0x80|byte(cp&0x3f))

	default:
		return append(buf,
			0xf0|byte(cp>>18),
			0x80|byte((cp>>12)&0x3f),
			0x80|byte((cp>>6)&0x3f),
			0x80|byte(cp&0x3f))
	}
}

// UTF8 encodes the code points as UTF-8. The function returns
// ErrInvalidInput if any of the runes is not a Unicode scalar value.
func UTF8(runes []rune) ([]byte, error) {
	var result []byte
	for idx, r := range runes {
		if r < 0 || r > utf8.MaxRune || utf16.IsSurrogate(r) {
			return nil, fmt.Errorf("%w: code point %U at index %d",
				ErrInvalidInput, r, idx)
		}
		result = appendCodePoint(result, uint32(r))
	}
	if result == nil {
		result = []byte{}
	}
	return result, nil
}

// String returns the bytes of s. The function returns
// ErrInvalidInput if s is not valid UTF-8.
func String(s string) ([]byte, error) {
	for idx := 0; idx < len(s); {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: invalid UTF-8 at offset %d",
				ErrInvalidInput, idx)
		}
		idx += size
	}
	return []byte(s), nil
}

// UTF16 encodes the 16-bit code units as UTF-8 according to the
// surrogate policy.
func UTF16(units []uint16, policy SurrogatePolicy) ([]byte, error) {
	switch policy {
	case CombinePairs:
		return combinePairs(units)

	case PerUnit:
		result := []byte{}
		for _, u := range units {
			result = appendCodePoint(result, uint32(u))
		}
		return result, nil

	default:
		return nil, fmt.Errorf("%w: surrogate policy %v",
			ErrInvalidInput, policy)
	}
}

func combinePairs(units []uint16) ([]byte, error) {
	buf := make([]byte, 0, len(units)*2)
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if utf16.IsSurrogate(u) {
			if u >= 0xdc00 || i+1 >= len(units) ||
				units[i+1] < 0xdc00 || units[i+1] > 0xdfff {
				return nil, fmt.Errorf("%w: unpaired surrogate %U at index %d",
					ErrInvalidInput, u, i)
			}
			buf = append(buf, byte(u>>8), byte(u))
			i++
			u = rune(units[i])
		}
		buf = append(buf, byte(u>>8), byte(u))
	}

	decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	result, err := decoder.Bytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return result, nil
}
