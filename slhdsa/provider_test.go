// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package slhdsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

func TestSLHDSA128s_SignVerifyRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("SLH-DSA keygen/signing is slow; skip under -short")
	}
	ks, err := Generate(SHA2_128s)
	require.NoError(t, err)

	msg := []byte("test data for SLH-DSA-128s signing")
	sig, err := Sign(SHA2_128s, msg, ks.PrivateKey)
	require.NoError(t, err)
	require.Len(t, sig.Bytes, 7856)
	require.Equal(t, cryptotypes.SLHDSA128s, sig.Tag)
	require.Equal(t, status.Success, Verify(SHA2_128s, msg, sig, ks.PublicKey))
}

func TestSLHDSA192s_SignVerifyRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("SLH-DSA keygen/signing is slow; skip under -short")
	}
	ks, err := Generate(SHA2_192s)
	require.NoError(t, err)

	msg := []byte("test data for SLH-DSA-192s signing")
	sig, err := Sign(SHA2_192s, msg, ks.PrivateKey)
	require.NoError(t, err)
	require.Len(t, sig.Bytes, 16224)
	require.Equal(t, cryptotypes.SLHDSA192s, sig.Tag)
	require.Equal(t, status.Success, Verify(SHA2_192s, msg, sig, ks.PublicKey))
}

func TestSLHDSA_DerivePublicIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("SLH-DSA keygen is slow; skip under -short")
	}
	ks, err := Generate(SHA2_128s)
	require.NoError(t, err)
	derived, err := DerivePublicFromPrivate(SHA2_128s, ks.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, ks.PublicKey, derived)
}

func TestSLHDSA_TamperRejection(t *testing.T) {
	if testing.Short() {
		t.Skip("SLH-DSA keygen/signing is slow; skip under -short")
	}
	ks, err := Generate(SHA2_128s)
	require.NoError(t, err)
	msg := []byte("original message")
	sig, err := Sign(SHA2_128s, msg, ks.PrivateKey)
	require.NoError(t, err)

	tamperedMsg := append([]byte(nil), msg...)
	tamperedMsg[0] ^= 0xff
	require.Equal(t, status.InvalidSignature, Verify(SHA2_128s, tamperedMsg, sig, ks.PublicKey))

	tamperedSig := sig
	tamperedSig.Bytes = append(cryptotypes.PublicBytes(nil), sig.Bytes...)
	tamperedSig.Bytes[0] ^= 0xff
	require.Equal(t, status.InvalidSignature, Verify(SHA2_128s, msg, tamperedSig, ks.PublicKey))
}

func TestSLHDSA_WrongModeSizeRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("SLH-DSA keygen/signing is slow; skip under -short")
	}
	ks, err := Generate(SHA2_128s)
	require.NoError(t, err)
	msg := []byte("mismatched mode")
	sig, err := Sign(SHA2_128s, msg, ks.PrivateKey)
	require.NoError(t, err)

	require.Equal(t, status.InvalidKey, Verify(SHA2_192s, msg, sig, ks.PublicKey))
}
