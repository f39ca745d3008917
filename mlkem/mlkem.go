// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mlkem wraps ML-KEM-768 (FIPS 203) keygen, encapsulation and
// decapsulation, plus the XChaCha20-Poly1305 hybrid encryption envelope
// built on top of it (§4.6, §4.8).
package mlkem

import (
	"github.com/luxfi/crypto/mlkem"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

const (
	PublicKeySize  = 1184
	PrivateKeySize = 2400
	CiphertextSize = 1088
	SharedKeySize  = 32
)

// KeySet is the ML-KEM-768 {private, public} pair.
type KeySet struct {
	PrivateKey *secretbytes.Bytes
	PublicKey  cryptotypes.PublicBytes
}

// Generate produces a fresh ML-KEM-768 key pair.
func Generate() (*KeySet, error) {
	pk, sk, err := mlkem.GenerateKey(mlkem.MLKEM768)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "ml-kem-768 keygen: %v", err)
	}
	return &KeySet{
		PrivateKey: secretbytes.New(sk.Bytes()),
		PublicKey:  cryptotypes.PublicBytes(pk.Bytes()),
	}, nil
}

func privateKeyFromBytes(data []byte) (*mlkem.PrivateKey, error) {
	sk, err := mlkem.PrivateKeyFromBytes(data, mlkem.MLKEM768)
	if err != nil {
		return nil, status.Newf(status.InvalidKey, "ml-kem-768 private key decode: %v", err)
	}
	return sk, nil
}

// DerivePublicFromPrivate regenerates the public key from the private key.
func DerivePublicFromPrivate(priv *secretbytes.Bytes) (cryptotypes.PublicBytes, error) {
	sk, err := privateKeyFromBytes(priv.Expose())
	if err != nil {
		return nil, err
	}
	return cryptotypes.PublicBytes(sk.PublicKey.Bytes()), nil
}

// Encapsulate produces a fresh (ciphertext, shared secret) pair under pub.
func Encapsulate(pub cryptotypes.PublicBytes) ([]byte, *secretbytes.Bytes, error) {
	if len(pub) != PublicKeySize {
		return nil, nil, status.Newf(status.InvalidKey, "expected %d-byte ML-KEM-768 public key, got %d", PublicKeySize, len(pub))
	}
	pk, err := mlkem.PublicKeyFromBytes(pub, mlkem.MLKEM768)
	if err != nil {
		return nil, nil, status.Newf(status.InvalidKey, "ml-kem-768 public key decode: %v", err)
	}
	ct, ss, err := pk.Encapsulate()
	if err != nil {
		return nil, nil, status.Newf(status.EncryptionFailed, "ml-kem-768 encapsulate: %v", err)
	}
	return ct, secretbytes.New(ss), nil
}

// Decapsulate recovers the shared secret bound to ct. Per FIPS 203's
// implicit rejection, a ciphertext that does not match priv still yields
// a (pseudorandom) 32-byte secret rather than an error — callers must
// confirm the key match indirectly, typically by attempting an
// authenticated decryption with the returned secret (see Open below).
func Decapsulate(ct []byte, priv *secretbytes.Bytes) (*secretbytes.Bytes, error) {
	if len(ct) != CiphertextSize {
		return nil, status.Newf(status.InvalidParameter, "expected %d-byte ciphertext, got %d", CiphertextSize, len(ct))
	}
	sk, err := privateKeyFromBytes(priv.Expose())
	if err != nil {
		return nil, err
	}
	ss, err := sk.Decapsulate(ct)
	if err != nil {
		return nil, status.Newf(status.DecryptionFailed, "ml-kem-768 decapsulate: %v", err)
	}
	return secretbytes.New(ss), nil
}
