// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cryptotypes holds the algorithm tag enumeration and the generic
// key/signature shapes shared across every provider package, so the
// façade (cryptomodule) can dispatch on a single tag type without each
// provider importing the others.
package cryptotypes

// AlgorithmTag names one of the algorithms this core supports.
type AlgorithmTag int

const (
	Ed25519 AlgorithmTag = iota
	NISTP256
	RSA4096
	MLDSA65
	SLHDSA128s
	SLHDSA192s
	MLKEM768
	BLS12381
	XChaCha20Poly1305
	SHA256
	SHA384
	SHA512
)

var tagNames = map[AlgorithmTag]string{
	Ed25519:           "Ed25519",
	NISTP256:          "NIST-P256",
	RSA4096:           "RSA-4096",
	MLDSA65:           "ML-DSA-65",
	SLHDSA128s:        "SLH-DSA-128s",
	SLHDSA192s:        "SLH-DSA-192s",
	MLKEM768:          "ML-KEM-768",
	BLS12381:          "BLS12-381",
	XChaCha20Poly1305: "XChaCha20-Poly1305",
	SHA256:            "SHA-256",
	SHA384:            "SHA-384",
	SHA512:            "SHA-512",
}

// String implements fmt.Stringer.
func (t AlgorithmTag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsSignatureAlgorithm reports whether the tag names a signing primitive.
func (t AlgorithmTag) IsSignatureAlgorithm() bool {
	switch t {
	case Ed25519, NISTP256, RSA4096, MLDSA65, SLHDSA128s, SLHDSA192s, BLS12381:
		return true
	default:
		return false
	}
}

// IsPQC reports whether the tag names a post-quantum algorithm.
func (t AlgorithmTag) IsPQC() bool {
	switch t {
	case MLDSA65, SLHDSA128s, SLHDSA192s, MLKEM768:
		return true
	default:
		return false
	}
}

// PublicBytes is a non-secret byte buffer: public keys, signatures,
// ciphertexts, commitments. Plain []byte is enough — only private key
// material needs secretbytes' zeroizing guarantee.
type PublicBytes []byte

// KeySet is the generic {private, public} pair for a single algorithm.
// The private half's concrete storage is algorithm-specific (see each
// provider package); KeySet here only carries the public half and the tag,
// since the private half is returned separately as a *secretbytes.Bytes
// (or algorithm-native secret type) to keep secret lifetimes scoped.
type KeySet struct {
	Tag       AlgorithmTag
	PublicKey PublicBytes
}

// Signature is the generic {tag, bytes} signature container.
type Signature struct {
	Tag   AlgorithmTag
	Bytes PublicBytes
}

// SignatureSize returns the fixed signature length for tags with a fixed
// size, per spec.md §3. Returns 0, false for variable-length or
// non-signature tags.
func SignatureSize(t AlgorithmTag) (int, bool) {
	switch t {
	case Ed25519, NISTP256:
		return 64, true
	case RSA4096:
		return 512, true
	case MLDSA65:
		return 3309, true
	case SLHDSA128s:
		return 7856, true
	case SLHDSA192s:
		return 16224, true
	case BLS12381:
		return 48, true
	default:
		return 0, false
	}
}
