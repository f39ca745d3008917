// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsa4096

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("RSA-4096 keygen is slow; skip under -short")
	}
	ks, err := Generate()
	require.NoError(t, err)

	msg := []byte("test data for rsa-4096 signing")
	sig, err := Sign(msg, ks.PrivateKey)
	require.NoError(t, err)
	require.Len(t, sig.Bytes, SignatureSize)
	require.Equal(t, status.Success, Verify(msg, sig, ks.PublicKey))
}

func TestDerivePublicIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("RSA-4096 keygen is slow; skip under -short")
	}
	ks, err := Generate()
	require.NoError(t, err)
	derived, err := DerivePublicFromPrivate(ks.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, ks.PublicKey, derived)
}

func TestTamperRejection(t *testing.T) {
	if testing.Short() {
		t.Skip("RSA-4096 keygen is slow; skip under -short")
	}
	ks, err := Generate()
	require.NoError(t, err)
	msg := []byte("original message")
	sig, err := Sign(msg, ks.PrivateKey)
	require.NoError(t, err)

	tamperedMsg := append([]byte(nil), msg...)
	tamperedMsg[0] ^= 0xff
	require.Equal(t, status.InvalidSignature, Verify(tamperedMsg, sig, ks.PublicKey))

	tamperedSig := sig
	tamperedSig.Bytes = append(cryptotypes.PublicBytes(nil), sig.Bytes...)
	tamperedSig.Bytes[0] ^= 0xff
	require.Equal(t, status.InvalidSignature, Verify(msg, tamperedSig, ks.PublicKey))
}
