// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)

	msg := []byte("test data for ed25519 signing")
	sig, err := Sign(msg, ks.PrivateKey)
	require.NoError(t, err)
	require.Len(t, sig.Bytes, SignatureSize)

	require.Equal(t, status.Success, Verify(msg, sig, ks.PublicKey))
}

func TestDerivePublicIsIdempotent(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)

	derived, err := DerivePublicFromPrivate(ks.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, ks.PublicKey, derived)
}

func TestTamperRejection(t *testing.T) {
	ks, err := Generate()
	require.NoError(t, err)
	msg := []byte("original message")
	sig, err := Sign(msg, ks.PrivateKey)
	require.NoError(t, err)

	t.Run("tampered message", func(t *testing.T) {
		tampered := append([]byte(nil), msg...)
		tampered[0] ^= 0xff
		require.Equal(t, status.InvalidSignature, Verify(tampered, sig, ks.PublicKey))
	})

	t.Run("tampered signature", func(t *testing.T) {
		tamperedSig := sig
		tamperedSig.Bytes = append(cryptotypes.PublicBytes(nil), sig.Bytes...)
		tamperedSig.Bytes[0] ^= 0xff
		require.Equal(t, status.InvalidSignature, Verify(msg, tamperedSig, ks.PublicKey))
	})

	t.Run("tampered public key", func(t *testing.T) {
		tamperedPub := append(cryptotypes.PublicBytes(nil), ks.PublicKey...)
		tamperedPub[0] ^= 0xff
		require.Equal(t, status.InvalidSignature, Verify(msg, sig, tamperedPub))
	})
}
