// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mldsa provides ML-DSA (FIPS 204, formerly Dilithium) keygen,
// sign and verify. The core policy names ML-DSA-65; ML-DSA-44/87 are also
// exposed since the underlying library already implements them. They have
// no AlgorithmTag of their own: their signatures carry the ML-DSA-65 tag.
package mldsa

import (
	"crypto/rand"

	"github.com/luxfi/crypto/mldsa"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Mode selects an ML-DSA parameter set.
type Mode = mldsa.Mode

const (
	MLDSA44 = mldsa.MLDSA44
	MLDSA65 = mldsa.MLDSA65
	MLDSA87 = mldsa.MLDSA87
)

// PublicKeySize and SignatureSize return the fixed sizes for mode.
func PublicKeySize(mode Mode) (int, error) {
	switch mode {
	case MLDSA44:
		return 1312, nil
	case MLDSA65:
		return 1952, nil
	case MLDSA87:
		return 2592, nil
	default:
		return 0, status.Newf(status.Unsupported, "unknown ML-DSA mode %v", mode)
	}
}

func SignatureSize(mode Mode) (int, error) {
	switch mode {
	case MLDSA44:
		return 2420, nil
	case MLDSA65:
		return 3309, nil
	case MLDSA87:
		return 4627, nil
	default:
		return 0, status.Newf(status.Unsupported, "unknown ML-DSA mode %v", mode)
	}
}

// KeySet is the ML-DSA {private, public} pair for a given mode.
type KeySet struct {
	Mode       Mode
	PrivateKey *secretbytes.Bytes
	PublicKey  cryptotypes.PublicBytes
}

// Generate produces a fresh ML-DSA key pair for mode.
func Generate(mode Mode) (*KeySet, error) {
	priv, err := mldsa.GenerateKey(rand.Reader, mode)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "ml-dsa keygen: %v", err)
	}
	return &KeySet{
		Mode:       mode,
		PrivateKey: secretbytes.New(priv.Bytes()),
		PublicKey:  cryptotypes.PublicBytes(priv.PublicKey.Bytes()),
	}, nil
}

func privateKeyFromBytes(mode Mode, data []byte) (*mldsa.PrivateKey, error) {
	priv, err := mldsa.PrivateKeyFromBytes(data, mode)
	if err != nil {
		return nil, status.Newf(status.InvalidKey, "ml-dsa private key decode: %v", err)
	}
	return priv, nil
}

// DerivePublicFromPrivate regenerates the public key from the private key.
func DerivePublicFromPrivate(mode Mode, priv *secretbytes.Bytes) (cryptotypes.PublicBytes, error) {
	sk, err := privateKeyFromBytes(mode, priv.Expose())
	if err != nil {
		return nil, err
	}
	return cryptotypes.PublicBytes(sk.PublicKey.Bytes()), nil
}

// signatureTag maps a mode to the cryptotypes tag the policy cares about.
// ML-DSA-65 is the only policy-relevant parameter set today; ML-DSA-44/87
// still sign and verify but are tagged with the closest named tag for
// bookkeeping purposes until cryptotypes grows dedicated tags for them.
func signatureTag(mode Mode) cryptotypes.AlgorithmTag {
	return cryptotypes.MLDSA65
}

// Sign signs msg. ML-DSA signing is deterministic per FIPS 204 when no
// additional randomness context is supplied.
func Sign(mode Mode, msg []byte, priv *secretbytes.Bytes) (cryptotypes.Signature, error) {
	sk, err := privateKeyFromBytes(mode, priv.Expose())
	if err != nil {
		return cryptotypes.Signature{}, err
	}
	sig, err := sk.Sign(rand.Reader, msg, nil)
	if err != nil {
		return cryptotypes.Signature{}, status.Newf(status.SigningFailed, "ml-dsa sign: %v", err)
	}
	return cryptotypes.Signature{Tag: signatureTag(mode), Bytes: sig}, nil
}

// Verify checks sig over msg against pub for the given mode.
func Verify(mode Mode, msg []byte, sig cryptotypes.Signature, pub cryptotypes.PublicBytes) status.Code {
	wantPub, err := PublicKeySize(mode)
	if err != nil {
		return status.Unsupported
	}
	wantSig, err := SignatureSize(mode)
	if err != nil {
		return status.Unsupported
	}
	if len(pub) != wantPub {
		return status.InvalidKey
	}
	if len(sig.Bytes) != wantSig {
		return status.InvalidParameter
	}
	pk, err := mldsa.PublicKeyFromBytes(pub, mode)
	if err != nil {
		return status.InvalidKey
	}
	if pk.Verify(msg, sig.Bytes, nil) {
		return status.Success
	}
	return status.InvalidSignature
}
