// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/status"
)

func TestEncapsulateDecapsulateAgree(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)
	require.Len(t, ks.PublicKey, PublicKeySize)

	ct, ss1, err := Encapsulate(ks.PublicKey)
	require.NoError(t, err)
	require.Len(t, ct, CiphertextSize)
	require.Equal(t, SharedKeySize, ss1.Len())

	ss2, err := Decapsulate(ct, ks.PrivateKey)
	require.NoError(t, err)
	require.True(t, ss1.Equal(ss2))
}

func TestDerivePublicIsIdempotent(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)
	derived, err := DerivePublicFromPrivate(ks.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, ks.PublicKey, derived)
}

func TestDecapsulateWithWrongKeyYieldsMismatchedSecretNotError(t *testing.T) {
	ks1, err := Generate()
	require.NoError(t, err)
	ks2, err := Generate()
	require.NoError(t, err)

	ct, ss1, err := Encapsulate(ks1.PublicKey)
	require.NoError(t, err)

	ss2, err := Decapsulate(ct, ks2.PrivateKey)
	require.NoError(t, err, "implicit rejection: decapsulation with the wrong key must not error")
	require.False(t, ss1.Equal(ss2), "shared secret under the wrong key should not match")
}

func TestSealOpenRoundTrip(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)
	plaintext := []byte("sealed envelope payload")

	envelope, err := Seal(ks.PublicKey, plaintext)
	require.NoError(t, err)
	require.Greater(t, len(envelope), CiphertextSize+24)

	opened, err := Open(ks.PrivateKey, envelope)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestSealRejectsEmptyPlaintext(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)
	_, err = Seal(ks.PublicKey, nil)
	require.Error(t, err)
}

func TestOpenWithWrongKeyFailsAuthentication(t *testing.T) {
	ks1, err := Generate()
	require.NoError(t, err)
	ks2, err := Generate()
	require.NoError(t, err)

	envelope, err := Seal(ks1.PublicKey, []byte("secret payload"))
	require.NoError(t, err)

	_, err = Open(ks2.PrivateKey, envelope)
	require.Error(t, err)
	require.Equal(t, status.DecryptionFailed, status.CodeOf(err))
}

func TestOpenDetectsTamperedCiphertext(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)
	envelope, err := Seal(ks.PublicKey, []byte("tamper target"))
	require.NoError(t, err)

	tampered := append([]byte(nil), envelope...)
	tampered[len(tampered)-1] ^= 0xff

	_, err = Open(ks.PrivateKey, tampered)
	require.Error(t, err)
}
