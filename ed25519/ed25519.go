// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ed25519 provides Ed25519 keygen, sign and verify per RFC 8032 /
// RFC 9381. Ed25519 signing is deterministic: two calls to Sign with the
// same key and message always produce the same signature.
package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// PublicKeySize and SignatureSize are the fixed sizes for this algorithm.
const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
	SecretKeySize = ed25519.SeedSize
)

// KeySet is the Ed25519 {private, public} pair. PrivateKey holds the
// 32-byte seed, not the expanded 64-byte signing key; DerivePublicFromPrivate
// regenerates both the expanded key and the public key from it.
type KeySet struct {
	PrivateKey *secretbytes.Bytes
	PublicKey  cryptotypes.PublicBytes
}

// Generate produces a fresh Ed25519 key pair using the system CSPRNG.
func Generate() (*KeySet, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "ed25519 keygen: %v", err)
	}
	seed := priv.Seed()
	ks := &KeySet{
		PrivateKey: secretbytes.New(seed),
		PublicKey:  cryptotypes.PublicBytes(pub),
	}
	return ks, nil
}

// DerivePublicFromPrivate regenerates the public key from a 32-byte seed.
func DerivePublicFromPrivate(seed *secretbytes.Bytes) (cryptotypes.PublicBytes, error) {
	s := seed.Expose()
	if len(s) != SecretKeySize {
		return nil, status.Newf(status.InvalidKey, "expected %d-byte seed, got %d", SecretKeySize, len(s))
	}
	priv := ed25519.NewKeyFromSeed(s)
	return cryptotypes.PublicBytes(priv.Public().(ed25519.PublicKey)), nil
}

// Sign signs msg with the private key seed. Deterministic per RFC 8032.
func Sign(msg []byte, seed *secretbytes.Bytes) (cryptotypes.Signature, error) {
	s := seed.Expose()
	if len(s) != SecretKeySize {
		return cryptotypes.Signature{}, status.Newf(status.InvalidKey, "expected %d-byte seed, got %d", SecretKeySize, len(s))
	}
	priv := ed25519.NewKeyFromSeed(s)
	sig := ed25519.Sign(priv, msg)
	return cryptotypes.Signature{Tag: cryptotypes.Ed25519, Bytes: sig}, nil
}

// Verify checks sig over msg against pub, returning a status.Code in
// {Success, InvalidSignature, InvalidKey, InvalidParameter}.
func Verify(msg []byte, sig cryptotypes.Signature, pub cryptotypes.PublicBytes) status.Code {
	if len(pub) != PublicKeySize {
		return status.InvalidKey
	}
	if len(sig.Bytes) != SignatureSize {
		return status.InvalidParameter
	}
	if ed25519.Verify(ed25519.PublicKey(pub), msg, sig.Bytes) {
		return status.Success
	}
	return status.InvalidSignature
}
