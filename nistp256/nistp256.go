// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nistp256 provides NIST P-256 (secp256r1) ECDSA keygen, sign and
// verify. Signatures are raw (r || s), 64 bytes fixed, matching spec.md
// §3's "P-256 64 raw" framing rather than ASN.1 DER.
package nistp256

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

const (
	// PublicKeySize is the uncompressed SEC1 point encoding (0x04 || X || Y).
	PublicKeySize = 65
	SignatureSize = 64
	scalarSize    = 32
)

// KeySet is the P-256 {private, public} pair.
type KeySet struct {
	PrivateKey *secretbytes.Bytes // 32-byte scalar, big-endian
	PublicKey  cryptotypes.PublicBytes
}

func curve() elliptic.Curve { return elliptic.P256() }

// Generate produces a fresh P-256 key pair.
func Generate() (*KeySet, error) {
	priv, err := ecdsa.GenerateKey(curve(), rand.Reader)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "p256 keygen: %v", err)
	}
	return &KeySet{
		PrivateKey: secretbytes.New(priv.D.FillBytes(make([]byte, scalarSize))),
		PublicKey:  cryptotypes.PublicBytes(elliptic.Marshal(curve(), priv.X, priv.Y)),
	}, nil
}

func privateKeyFromScalar(scalar []byte) (*ecdsa.PrivateKey, error) {
	if len(scalar) != scalarSize {
		return nil, status.Newf(status.InvalidKey, "expected %d-byte scalar, got %d", scalarSize, len(scalar))
	}
	d := new(big.Int).SetBytes(scalar)
	x, y := curve().ScalarBaseMult(scalar)
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve(), X: x, Y: y},
		D:         d,
	}, nil
}

// DerivePublicFromPrivate regenerates the public key from the scalar.
func DerivePublicFromPrivate(scalar *secretbytes.Bytes) (cryptotypes.PublicBytes, error) {
	priv, err := privateKeyFromScalar(scalar.Expose())
	if err != nil {
		return nil, err
	}
	return cryptotypes.PublicBytes(elliptic.Marshal(curve(), priv.X, priv.Y)), nil
}

// Sign produces a randomized raw (r || s) signature over SHA-256(msg).
// Callers frequently pre-hash msg themselves; hashing it again here is
// harmless since ECDSA only ever signs a digest.
func Sign(msg []byte, scalar *secretbytes.Bytes) (cryptotypes.Signature, error) {
	priv, err := privateKeyFromScalar(scalar.Expose())
	if err != nil {
		return cryptotypes.Signature{}, err
	}
	digest := sha256.Sum256(msg)
	r, s, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	if err != nil {
		return cryptotypes.Signature{}, status.Newf(status.SigningFailed, "p256 sign: %v", err)
	}
	sig := make([]byte, SignatureSize)
	r.FillBytes(sig[:scalarSize])
	s.FillBytes(sig[scalarSize:])
	return cryptotypes.Signature{Tag: cryptotypes.NISTP256, Bytes: sig}, nil
}

// Verify checks a raw (r || s) signature over SHA-256(msg).
func Verify(msg []byte, sig cryptotypes.Signature, pub cryptotypes.PublicBytes) status.Code {
	if len(pub) != PublicKeySize {
		return status.InvalidKey
	}
	if len(sig.Bytes) != SignatureSize {
		return status.InvalidParameter
	}
	x, y := elliptic.Unmarshal(curve(), pub)
	if x == nil {
		return status.InvalidKey
	}
	pubKey := &ecdsa.PublicKey{Curve: curve(), X: x, Y: y}
	r := new(big.Int).SetBytes(sig.Bytes[:scalarSize])
	s := new(big.Int).SetBytes(sig.Bytes[scalarSize:])
	digest := sha256.Sum256(msg)
	if ecdsa.Verify(pubKey, digest[:], r, s) {
		return status.Success
	}
	return status.InvalidSignature
}
