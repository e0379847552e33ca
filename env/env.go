//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the digest system.
package env

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/sm3/encode"
)

const (
	// DefaultMaxInputSize specifies the default maximum size of
	// password inputs in bytes.
	DefaultMaxInputSize = 4096
)

// Config defines the global system configuration. It configures
// system operation for all digest modules. Config must not be modified
// after being passed to any module. It is safe for concurrent use by
// multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of randomness for sampling inputs.
	Rand io.Reader

	// MaxInputSize limits the size of application inputs in
	// bytes. The value 0 selects DefaultMaxInputSize and a negative
	// value disables the limit.
	MaxInputSize int

	// Surrogates specifies how UTF-16 surrogates are encoded.
	Surrogates encode.SurrogatePolicy

	// Normalization specifies the Unicode normalization form applied
	// to text inputs.
	Normalization encode.Form
}

// GetRandom returns the source of entropy for sampling operations.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// InputLimit returns the effective input size limit. The value 0
// means that the size is unlimited.
func (config *Config) InputLimit() int {
	switch {
	case config.MaxInputSize < 0:
		return 0
	case config.MaxInputSize == 0:
		return DefaultMaxInputSize
	default:
		return config.MaxInputSize
	}
}
