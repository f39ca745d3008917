// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing provides the SHA-256/384/512 facade used by every
// higher layer of the crypto core to derive challenges and identifiers.
package hashing

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/luxfi/sorcha-crypto-core/status"
)

// Kind identifies a supported hash algorithm.
type Kind int

const (
	SHA256 Kind = iota
	SHA384
	SHA512
)

// Compute hashes data with the requested algorithm. The hash of an empty
// input is well-defined, matching the underlying standard.
func Compute(data []byte, kind Kind) ([]byte, error) {
	switch kind {
	case SHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	case SHA384:
		sum := sha512.Sum384(data)
		return sum[:], nil
	case SHA512:
		sum := sha512.Sum512(data)
		return sum[:], nil
	default:
		return nil, status.New(status.Unsupported, "unknown hash kind")
	}
}

// Sum256 is a convenience wrapper returning a fixed-size SHA-256 digest,
// used throughout the core for challenge derivation and address hashing.
func Sum256(data ...[]byte) [32]byte {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
