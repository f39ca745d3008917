// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wallet derives ws1/ws2 bech32m addresses from public keys and
// verifies the ws2 witness-key binding rule (§4.5, §6).
package wallet

import (
	"github.com/luxfi/sorcha-crypto-core/address"
	"github.com/luxfi/sorcha-crypto-core/hybrid"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// DeriveWS1Address builds a classical (ws1) address. A 32-byte classical
// public key (Ed25519) is embedded directly, per §4.3's "ws1 embeds a
// classical public key directly"; larger classical keys (NIST-P256,
// RSA-4096) cannot fit the fixed 32-byte payload field, so they are hashed
// the same way a ws2 witness key is.
func DeriveWS1Address(networkTag byte, classicalPub []byte) (address.WalletAddress, error) {
	if len(classicalPub) == 0 {
		return address.WalletAddress{}, status.New(status.InvalidParameter, "classical public key must not be empty")
	}
	var hash [32]byte
	if len(classicalPub) == 32 {
		copy(hash[:], classicalPub)
	} else {
		hash = hybrid.WitnessCommitmentHash(networkTag, classicalPub)
	}
	return address.WalletAddress{
		HRP:        address.HRPClassical,
		NetworkTag: networkTag,
		Hash:       hash,
	}, nil
}

// DeriveWS2Address builds a PQC (ws2) address whose payload commits to
// SHA-256(network_tag ‖ pqc_pub) rather than the (large) key itself (§4.5).
func DeriveWS2Address(networkTag byte, pqcPub []byte) (address.WalletAddress, error) {
	if len(pqcPub) == 0 {
		return address.WalletAddress{}, status.New(status.InvalidParameter, "pqc public key must not be empty")
	}
	return address.WalletAddress{
		HRP:        address.HRPPQC,
		NetworkTag: networkTag,
		Hash:       hybrid.WitnessCommitmentHash(networkTag, pqcPub),
	}, nil
}

// VerifyWitnessBinding recomputes SHA-256(network_tag ‖ witnessPub) and
// checks it equals addr's payload hash. Every PQC-half verification must
// perform this check before trusting the signature (§4.5's witness-key
// rule) — omitting it collapses the binding between the address and the
// key that actually signed.
func VerifyWitnessBinding(addr address.WalletAddress, witnessPub []byte) status.Code {
	if addr.HRP != address.HRPPQC {
		return status.InvalidParameter
	}
	expected := hybrid.WitnessCommitmentHash(addr.NetworkTag, witnessPub)
	if expected != addr.Hash {
		return status.InvalidSignature
	}
	return status.Success
}
