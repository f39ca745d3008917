// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mlkem

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Seal encrypts plaintext for pub using the ML-KEM-768 + XChaCha20-
// Poly1305 hybrid envelope: [ct(1088) ‖ nonce(24) ‖ sealed_payload].
// Empty plaintexts are rejected per §4.8.
func Seal(pub cryptotypes.PublicBytes, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, status.New(status.InvalidParameter, "plaintext must not be empty")
	}
	ct, ss, err := Encapsulate(pub)
	if err != nil {
		return nil, err
	}
	defer ss.Wipe()

	aead, err := chacha20poly1305.NewX(ss.Expose())
	if err != nil {
		return nil, status.Newf(status.EncryptionFailed, "xchacha20poly1305 init: %v", err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, status.Newf(status.EncryptionFailed, "nonce generation: %v", err)
	}
	sealed := aead.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, len(ct)+len(nonce)+len(sealed))
	out = append(out, ct...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return out, nil
}

// Open reverses Seal. AEAD tag-mismatch is the only signal of a wrong
// key or a tampered envelope: ML-KEM decapsulation itself never fails
// due to implicit rejection (§4.6).
func Open(priv *secretbytes.Bytes, envelope []byte) ([]byte, error) {
	if len(envelope) < CiphertextSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, status.New(status.InvalidParameter, "envelope too short")
	}
	ct := envelope[:CiphertextSize]
	nonce := envelope[CiphertextSize : CiphertextSize+chacha20poly1305.NonceSizeX]
	sealed := envelope[CiphertextSize+chacha20poly1305.NonceSizeX:]

	ss, err := Decapsulate(ct, priv)
	if err != nil {
		return nil, err
	}
	defer ss.Wipe()

	aead, err := chacha20poly1305.NewX(ss.Expose())
	if err != nil {
		return nil, status.Newf(status.DecryptionFailed, "xchacha20poly1305 init: %v", err)
	}
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, status.New(status.DecryptionFailed, "authentication tag mismatch")
	}
	return plaintext, nil
}
