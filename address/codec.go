// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"strings"

	"github.com/luxfi/sorcha-crypto-core/status"
)

// HRP is the human-readable part of a wallet address.
type HRP string

const (
	// HRPClassical is used for ws1 addresses, which embed a 32-byte
	// classical public key directly, or a hash of a longer one.
	HRPClassical HRP = "ws1"
	// HRPPQC is used for ws2 addresses, which embed SHA-256(network_tag
	// || pqc_public_key) — see spec.md §4.5's witness-key rule.
	HRPPQC HRP = "ws2"
)

// WalletAddress is the decoded form of a ws1/ws2 bech32m string.
type WalletAddress struct {
	HRP        HRP
	NetworkTag byte
	Hash       [32]byte
}

// Encode produces "<hrp>1<data><checksum>" where data is
// network_tag(1B) || hash(32B), always using Bech32m per spec.md §4.3.
func (a WalletAddress) Encode() (string, error) {
	payload := make([]byte, 0, 33)
	payload = append(payload, a.NetworkTag)
	payload = append(payload, a.Hash[:]...)
	return Encode(string(a.HRP), payload, Bech32m)
}

// DecodeWalletAddress decodes a ws1/ws2 address string. Unknown hrps are
// passed through without error per spec.md §4.3; callers that care about
// a specific network check the returned HRP themselves.
func DecodeWalletAddress(encoded string) (WalletAddress, error) {
	hrp, payload, err := Decode(encoded, Bech32m)
	if err != nil {
		return WalletAddress{}, err
	}
	if len(payload) != 33 {
		return WalletAddress{}, status.Newf(status.InvalidEncoding, "expected 33-byte payload, got %d", len(payload))
	}
	var hash [32]byte
	copy(hash[:], payload[1:])
	return WalletAddress{
		HRP:        HRP(strings.ToLower(hrp)),
		NetworkTag: payload[0],
		Hash:       hash,
	}, nil
}
