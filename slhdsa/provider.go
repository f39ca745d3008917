// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package slhdsa provides SLH-DSA (FIPS 205, formerly SPHINCS+) keygen,
// sign and verify. The policy names SLH-DSA-128s and SLH-DSA-192s; the
// remaining SHA2/SHAKE parameter sets are exposed because the underlying
// library already implements them.
package slhdsa

import (
	"crypto/rand"

	"github.com/luxfi/crypto/slhdsa"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Mode selects an SLH-DSA parameter set.
type Mode = slhdsa.Mode

const (
	SHA2_128s  = slhdsa.SHA2_128s
	SHA2_128f  = slhdsa.SHA2_128f
	SHA2_192s  = slhdsa.SHA2_192s
	SHA2_192f  = slhdsa.SHA2_192f
	SHA2_256s  = slhdsa.SHA2_256s
	SHA2_256f  = slhdsa.SHA2_256f
	SHAKE_128s = slhdsa.SHAKE_128s
	SHAKE_128f = slhdsa.SHAKE_128f
	SHAKE_192s = slhdsa.SHAKE_192s
	SHAKE_192f = slhdsa.SHAKE_192f
	SHAKE_256s = slhdsa.SHAKE_256s
	SHAKE_256f = slhdsa.SHAKE_256f
)

// PublicKeySize returns the fixed public key size for mode (2n, n the
// security parameter).
func PublicKeySize(mode Mode) (int, error) {
	switch mode {
	case SHA2_128s, SHA2_128f, SHAKE_128s, SHAKE_128f:
		return 32, nil
	case SHA2_192s, SHA2_192f, SHAKE_192s, SHAKE_192f:
		return 48, nil
	case SHA2_256s, SHA2_256f, SHAKE_256s, SHAKE_256f:
		return 64, nil
	default:
		return 0, status.Newf(status.Unsupported, "unknown SLH-DSA mode %v", mode)
	}
}

// SignatureSize returns the fixed signature size for mode.
func SignatureSize(mode Mode) (int, error) {
	switch mode {
	case SHA2_128s, SHAKE_128s:
		return 7856, nil
	case SHA2_128f, SHAKE_128f:
		return 17088, nil
	case SHA2_192s, SHAKE_192s:
		return 16224, nil
	case SHA2_192f, SHAKE_192f:
		return 35664, nil
	case SHA2_256s, SHAKE_256s:
		return 29792, nil
	case SHA2_256f, SHAKE_256f:
		return 49856, nil
	default:
		return 0, status.Newf(status.Unsupported, "unknown SLH-DSA mode %v", mode)
	}
}

// KeySet is the SLH-DSA {private, public} pair for a given mode.
type KeySet struct {
	Mode       Mode
	PrivateKey *secretbytes.Bytes
	PublicKey  cryptotypes.PublicBytes
}

// Generate produces a fresh SLH-DSA key pair for mode.
func Generate(mode Mode) (*KeySet, error) {
	priv, err := slhdsa.GenerateKey(rand.Reader, mode)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "slh-dsa keygen: %v", err)
	}
	return &KeySet{
		Mode:       mode,
		PrivateKey: secretbytes.New(priv.Bytes()),
		PublicKey:  cryptotypes.PublicBytes(priv.PublicKey.Bytes()),
	}, nil
}

func privateKeyFromBytes(mode Mode, data []byte) (*slhdsa.PrivateKey, error) {
	priv, err := slhdsa.PrivateKeyFromBytes(data, mode)
	if err != nil {
		return nil, status.Newf(status.InvalidKey, "slh-dsa private key decode: %v", err)
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
// SLH-DSA-128s and SLH-DSA-192s are the two policy-relevant parameter
// sets; every other mode still signs and verifies but is tagged with the
// closest named tag for bookkeeping purposes.
func signatureTag(mode Mode) cryptotypes.AlgorithmTag {
	switch mode {
	case SHA2_192s, SHA2_192f, SHAKE_192s, SHAKE_192f:
		return cryptotypes.SLHDSA192s
	default:
		return cryptotypes.SLHDSA128s
	}
}

// Sign signs msg with the SLH-DSA private key for mode.
func Sign(mode Mode, msg []byte, priv *secretbytes.Bytes) (cryptotypes.Signature, error) {
	sk, err := privateKeyFromBytes(mode, priv.Expose())
	if err != nil {
		return cryptotypes.Signature{}, err
	}
	sig, err := sk.Sign(rand.Reader, msg, nil)
	if err != nil {
		return cryptotypes.Signature{}, status.Newf(status.SigningFailed, "slh-dsa sign: %v", err)
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
	pk, err := slhdsa.PublicKeyFromBytes(pub, mode)
	if err != nil {
		return status.InvalidKey
	}
	if pk.Verify(msg, sig.Bytes, nil) {
		return status.Success
	}
	return status.InvalidSignature
}
