// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rsa4096 provides RSA-4096 keygen, sign and verify using
// PKCS#1 v1.5 padding over a SHA-256 digest. Signatures are fixed at
// 512 bytes (4096 bits).
package rsa4096

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// SignatureSize is fixed by the 4096-bit modulus.
const SignatureSize = 512

// KeySet is the RSA-4096 {private, public} pair. PrivateKey holds the
// PKCS#1 DER encoding of the private key inside a secretbytes.Bytes.
type KeySet struct {
	PrivateKey *secretbytes.Bytes
	PublicKey  cryptotypes.PublicBytes
}

// Generate produces a fresh RSA-4096 key pair.
func Generate() (*KeySet, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 4096)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "rsa-4096 keygen: %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "rsa-4096 public key encode: %v", err)
	}
	return &KeySet{
		PrivateKey: secretbytes.New(x509.MarshalPKCS1PrivateKey(priv)),
		PublicKey:  cryptotypes.PublicBytes(pubDER),
	}, nil
}

func privateKeyFromDER(der []byte) (*rsa.PrivateKey, error) {
	priv, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, status.Newf(status.InvalidKey, "rsa-4096 private key decode: %v", err)
	}
	if priv.N.BitLen() != 4096 {
		return nil, status.Newf(status.InvalidKey, "expected 4096-bit modulus, got %d", priv.N.BitLen())
	}
	return priv, nil
}

// DerivePublicFromPrivate regenerates the DER-encoded public key.
func DerivePublicFromPrivate(privDER *secretbytes.Bytes) (cryptotypes.PublicBytes, error) {
	priv, err := privateKeyFromDER(privDER.Expose())
	if err != nil {
		return nil, err
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, status.Newf(status.KeyGenFailed, "rsa-4096 public key encode: %v", err)
	}
	return pubDER, nil
}

// Sign signs SHA-256(msg) with PKCS#1 v1.5. The padding has no random
// component, so the same key and message always give the same signature.
func Sign(msg []byte, privDER *secretbytes.Bytes) (cryptotypes.Signature, error) {
	priv, err := privateKeyFromDER(privDER.Expose())
	if err != nil {
		return cryptotypes.Signature{}, err
	}
	digest := sha256.Sum256(msg)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return cryptotypes.Signature{}, status.Newf(status.SigningFailed, "rsa-4096 sign: %v", err)
	}
	return cryptotypes.Signature{Tag: cryptotypes.RSA4096, Bytes: sig}, nil
}

// Verify checks sig over SHA-256(msg) against the DER-encoded public key.
func Verify(msg []byte, sig cryptotypes.Signature, pubDER cryptotypes.PublicBytes) status.Code {
	if len(sig.Bytes) != SignatureSize {
		return status.InvalidParameter
	}
	pubAny, err := x509.ParsePKIXPublicKey(pubDER)
	if err != nil {
		return status.InvalidKey
	}
	pub, ok := pubAny.(*rsa.PublicKey)
	if !ok || pub.N.BitLen() != 4096 {
		return status.InvalidKey
	}
	digest := sha256.Sum256(msg)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig.Bytes); err != nil {
		return status.InvalidSignature
	}
	return status.Success
}
