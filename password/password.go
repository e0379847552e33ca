//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package password implements the password digests exchanged between
// the credential submission flow and the credential store.
//
// The client side Digest is an unsalted single pass SM3 over the UTF-8
// encoded password. It only keeps the plain password off the wire; the
// credential store re-hashes the client digest with a per-user salt
// using Salted and compares stored values with Verify.
package password

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/markkurossi/sm3/encode"
	"github.com/markkurossi/sm3/env"
	"github.com/markkurossi/sm3/sm3"
)

var (
	// ErrInvalidInput is returned if the password is not valid text.
	ErrInvalidInput = encode.ErrInvalidInput

	// ErrInputTooLarge is returned if the password exceeds the
	// configured input size limit.
	ErrInputTooLarge = errors.New("input too large")

	// ErrInvalidDigest is returned if a client digest is not a
	// lowercase hex encoded SM3 digest.
	ErrInvalidDigest = errors.New("invalid client digest")
)

// Hasher computes password digests. It is safe for concurrent use.
type Hasher struct {
	config *env.Config
}

// New creates a new password hasher. The argument config may be nil
// in which case the default configuration is used.
func New(config *env.Config) *Hasher {
	if config == nil {
		config = new(env.Config)
	}
	return &Hasher{
		config: config,
	}
}

var defaultHasher = New(nil)

// Digest computes the client digest of password with the default
// configuration.
func Digest(password string) (string, error) {
	return defaultHasher.Digest(password)
}

// Digest computes the client digest of password.
func (h *Hasher) Digest(password string) (string, error) {
	if err := h.checkSize(len(password)); err != nil {
		return "", err
	}
	data, err := encode.String(password)
	if err != nil {
		return "", err
	}
	if h.config.Normalization != encode.None {
		data = []byte(encode.Normalize(password, h.config.Normalization))
		if err := h.checkSize(len(data)); err != nil {
			return "", err
		}
	}
	return sm3.Hex(data), nil
}

// DigestUTF16 computes the client digest of a password given as
// 16-bit code units. Surrogates are encoded according to the
// configured surrogate policy. Normalization is applied only with the
// CombinePairs policy since per-unit encoding of surrogates does not
// produce valid UTF-8.
func (h *Hasher) DigestUTF16(password []uint16) (string, error) {
	data, err := encode.UTF16(password, h.config.Surrogates)
	if err != nil {
		return "", err
	}
	if h.config.Normalization != encode.None &&
		h.config.Surrogates == encode.CombinePairs {
		data = []byte(encode.Normalize(string(data), h.config.Normalization))
	}
	if err := h.checkSize(len(data)); err != nil {
		return "", err
	}
	return sm3.Hex(data), nil
}

// Salted computes the stored credential value from the client digest
// and the salt. The salt is typically the user name.
func (h *Hasher) Salted(clientDigest, salt string) (string, error) {
	if !validDigest(clientDigest) {
		return "", ErrInvalidDigest
	}
	if err := h.checkSize(len(clientDigest) + len(salt)); err != nil {
		return "", err
	}
	return sm3.Hex([]byte(clientDigest + salt)), nil
}

// Verify tests if the client digest and salt match the stored
// credential value. The comparison is done in constant time.
func (h *Hasher) Verify(stored, clientDigest, salt string) bool {
	computed, err := h.Salted(clientDigest, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(computed)) == 1
}

func (h *Hasher) checkSize(size int) error {
	limit := h.config.InputLimit()
	if limit > 0 && size > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge,
			size, limit)
	}
	return nil
}

func validDigest(digest string) bool {
	if len(digest) != sm3.HexSize {
		return false
	}
	for i := 0; i < len(digest); i++ {
		c := digest[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
