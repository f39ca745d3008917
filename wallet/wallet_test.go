// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/address"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// TestWS2AddressKeyBinding is scenario S5 and property 8: decoded payload
// hash must equal SHA-256(network_tag ‖ pk), and the encoded address must
// stay under the 100-character ceiling.
func TestWS2AddressKeyBinding(t *testing.T) {
	pqcPub := make([]byte, 1952) // ML-DSA-65 public key size
	for i := range pqcPub {
		pqcPub[i] = byte(i)
	}
	const networkTag = 0x10

	addr, err := DeriveWS2Address(networkTag, pqcPub)
	require.NoError(t, err)
	require.Equal(t, address.HRPPQC, addr.HRP)

	expected := sha256.Sum256(append([]byte{networkTag}, pqcPub...))
	require.Equal(t, expected, addr.Hash)

	encoded, err := addr.Encode()
	require.NoError(t, err)
	require.Less(t, len(encoded), 100)

	decoded, err := address.DecodeWalletAddress(encoded)
	require.NoError(t, err)
	require.Equal(t, addr, decoded)
}

func TestWS1AddressEmbedsEd25519KeyDirectly(t *testing.T) {
	classicalPub := make([]byte, 32)
	for i := range classicalPub {
		classicalPub[i] = byte(i + 1)
	}

	addr, err := DeriveWS1Address(0x01, classicalPub)
	require.NoError(t, err)
	require.Equal(t, address.HRPClassical, addr.HRP)

	var expected [32]byte
	copy(expected[:], classicalPub)
	require.Equal(t, expected, addr.Hash)
}

func TestVerifyWitnessBindingDetectsMismatch(t *testing.T) {
	pqcPub := make([]byte, 64)
	addr, err := DeriveWS2Address(0x42, pqcPub)
	require.NoError(t, err)

	require.Equal(t, status.Success, VerifyWitnessBinding(addr, pqcPub))

	tampered := append([]byte(nil), pqcPub...)
	tampered[0] ^= 0xff
	require.Equal(t, status.InvalidSignature, VerifyWitnessBinding(addr, tampered))
}

func TestVerifyWitnessBindingRejectsWS1Address(t *testing.T) {
	classicalPub := make([]byte, 32)
	addr, err := DeriveWS1Address(0x01, classicalPub)
	require.NoError(t, err)
	require.Equal(t, status.InvalidParameter, VerifyWitnessBinding(addr, classicalPub))
}
