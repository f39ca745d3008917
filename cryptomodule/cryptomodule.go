// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cryptomodule is the tag-dispatched façade over every signature,
// KEM, and hybrid provider in this module (§4.10). It owns no state beyond
// immutable generators; every operation here is safe to call concurrently
// from multiple goroutines.
package cryptomodule

import (
	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/ed25519"
	"github.com/luxfi/sorcha-crypto-core/mldsa"
	"github.com/luxfi/sorcha-crypto-core/mlkem"
	"github.com/luxfi/sorcha-crypto-core/nistp256"
	"github.com/luxfi/sorcha-crypto-core/rsa4096"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/slhdsa"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// SecretKey is the tag-qualified private-key handle the façade hands back
// from GenerateKeySet. The concrete byte layout is algorithm-specific (a
// raw seed, a DER blob, a PQC expanded key) but is always zeroizing.
type SecretKey struct {
	Tag   cryptotypes.AlgorithmTag
	Bytes *secretbytes.Bytes
}

func mldsaMode(tag cryptotypes.AlgorithmTag) (mldsa.Mode, bool) {
	switch tag {
	case cryptotypes.MLDSA65:
		return mldsa.MLDSA65, true
	default:
		return 0, false
	}
}

func slhdsaMode(tag cryptotypes.AlgorithmTag) (slhdsa.Mode, bool) {
	switch tag {
	case cryptotypes.SLHDSA128s:
		return slhdsa.SHA2_128s, true
	case cryptotypes.SLHDSA192s:
		return slhdsa.SHA2_192s, true
	default:
		return 0, false
	}
}

// GenerateKeySet dispatches key generation by algorithm tag.
func GenerateKeySet(tag cryptotypes.AlgorithmTag) (*SecretKey, cryptotypes.PublicBytes, error) {
	switch tag {
	case cryptotypes.Ed25519:
		ks, err := ed25519.Generate()
		if err != nil {
			return nil, nil, err
		}
		return &SecretKey{Tag: tag, Bytes: ks.PrivateKey}, ks.PublicKey, nil
	case cryptotypes.NISTP256:
		ks, err := nistp256.Generate()
		if err != nil {
			return nil, nil, err
		}
		return &SecretKey{Tag: tag, Bytes: ks.PrivateKey}, ks.PublicKey, nil
	case cryptotypes.RSA4096:
		ks, err := rsa4096.Generate()
		if err != nil {
			return nil, nil, err
		}
		return &SecretKey{Tag: tag, Bytes: ks.PrivateKey}, ks.PublicKey, nil
	case cryptotypes.MLDSA65:
		mode, _ := mldsaMode(tag)
		ks, err := mldsa.Generate(mode)
		if err != nil {
			return nil, nil, err
		}
		return &SecretKey{Tag: tag, Bytes: ks.PrivateKey}, ks.PublicKey, nil
	case cryptotypes.SLHDSA128s, cryptotypes.SLHDSA192s:
		mode, _ := slhdsaMode(tag)
		ks, err := slhdsa.Generate(mode)
		if err != nil {
			return nil, nil, err
		}
		return &SecretKey{Tag: tag, Bytes: ks.PrivateKey}, ks.PublicKey, nil
	case cryptotypes.MLKEM768:
		ks, err := mlkem.Generate()
		if err != nil {
			return nil, nil, err
		}
		return &SecretKey{Tag: tag, Bytes: ks.PrivateKey}, ks.PublicKey, nil
	default:
		return nil, nil, status.Newf(status.Unsupported, "generate_key_set: unsupported tag %s", tag)
	}
}

// Sign dispatches signing by algorithm tag. sk.Tag must equal tag.
func Sign(msg []byte, tag cryptotypes.AlgorithmTag, sk *SecretKey) (cryptotypes.Signature, error) {
	if sk.Tag != tag {
		return cryptotypes.Signature{}, status.Newf(status.InvalidKey, "sign: key tag %s does not match requested tag %s", sk.Tag, tag)
	}
	switch tag {
	case cryptotypes.Ed25519:
		return ed25519.Sign(msg, sk.Bytes)
	case cryptotypes.NISTP256:
		return nistp256.Sign(msg, sk.Bytes)
	case cryptotypes.RSA4096:
		return rsa4096.Sign(msg, sk.Bytes)
	case cryptotypes.MLDSA65:
		mode, _ := mldsaMode(tag)
		return mldsa.Sign(mode, msg, sk.Bytes)
	case cryptotypes.SLHDSA128s, cryptotypes.SLHDSA192s:
		mode, _ := slhdsaMode(tag)
		return slhdsa.Sign(mode, msg, sk.Bytes)
	default:
		return cryptotypes.Signature{}, status.Newf(status.Unsupported, "sign: unsupported tag %s", tag)
	}
}

// Verify dispatches verification by algorithm tag.
func Verify(sig cryptotypes.Signature, msg []byte, tag cryptotypes.AlgorithmTag, pub cryptotypes.PublicBytes) status.Code {
	switch tag {
	case cryptotypes.Ed25519:
		return ed25519.Verify(msg, sig, pub)
	case cryptotypes.NISTP256:
		return nistp256.Verify(msg, sig, pub)
	case cryptotypes.RSA4096:
		return rsa4096.Verify(msg, sig, pub)
	case cryptotypes.MLDSA65:
		mode, _ := mldsaMode(tag)
		return mldsa.Verify(mode, msg, sig, pub)
	case cryptotypes.SLHDSA128s, cryptotypes.SLHDSA192s:
		mode, _ := slhdsaMode(tag)
		return slhdsa.Verify(mode, msg, sig, pub)
	default:
		return status.Unsupported
	}
}

// Encrypt seals plaintext to pub using the ML-KEM hybrid envelope (§4.8).
// tag is currently always MLKEM768; it is accepted for symmetry with the
// other façade operations and to leave room for future KEMs.
func Encrypt(plaintext []byte, tag cryptotypes.AlgorithmTag, pub cryptotypes.PublicBytes) ([]byte, error) {
	if tag != cryptotypes.MLKEM768 {
		return nil, status.Newf(status.Unsupported, "encrypt: unsupported tag %s", tag)
	}
	return mlkem.Seal(pub, plaintext)
}

// Decrypt opens an ML-KEM hybrid envelope produced by Encrypt.
func Decrypt(ciphertext []byte, tag cryptotypes.AlgorithmTag, sk *SecretKey) ([]byte, error) {
	if tag != cryptotypes.MLKEM768 {
		return nil, status.Newf(status.Unsupported, "decrypt: unsupported tag %s", tag)
	}
	if sk.Tag != tag {
		return nil, status.Newf(status.InvalidKey, "decrypt: key tag %s does not match requested tag %s", sk.Tag, tag)
	}
	return mlkem.Open(sk.Bytes, ciphertext)
}
