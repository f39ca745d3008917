// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bls implements a trusted-dealer BLS12-381 threshold signature
// scheme: Shamir secret sharing over the scalar field Fr, partial
// signing on G1, Lagrange aggregation and pairing-based group-key
// verification. Grounded on the Shamir/Lagrange threshold BLS pattern
// (gnark-crypto bls12-381 field and curve arithmetic).
package bls

import "github.com/luxfi/sorcha-crypto-core/secretbytes"

const (
	// ScalarSize is the size of an Fr element.
	ScalarSize = 32
	// G1CompressedSize is the size of a compressed G1 point (signatures).
	G1CompressedSize = 48
	// G2CompressedSize is the size of a compressed G2 point (public keys).
	G2CompressedSize = 96
)

// signatureDST is the fixed domain separation tag for hashing messages to
// G1, per §4.7.
const signatureDST = "SORCHA_BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_"

// KeyShare is one validator's share of a threshold key.
type KeyShare struct {
	Index       int
	SkShare     *secretbytes.Bytes // Fr element, 32 bytes
	PkShare     []byte             // compressed G2 point, 96 bytes
	ValidatorID string
}

// KeySet is the full output of a trusted-dealer threshold keygen
// ceremony: the group public key plus every validator's share.
type KeySet struct {
	Threshold int
	Total     int
	GroupPk   []byte // compressed G2 point, 96 bytes
	Shares    []KeyShare
}

// AggregateSignature is a threshold-aggregated BLS signature together
// with the bitfield of which shares contributed.
type AggregateSignature struct {
	Sig      []byte // compressed G1 point, 48 bytes
	Bitfield []byte // ceil(n/8) bytes; bit (i-1) set iff share i contributed
	T        int
	N        int
}

// SetBit sets bit index-1 in a bitfield sized for n shares.
func SetBit(bitfield []byte, index int) {
	pos := index - 1
	bitfield[pos/8] |= 1 << uint(pos%8)
}

// BitSet reports whether bit index-1 is set.
func BitSet(bitfield []byte, index int) bool {
	pos := index - 1
	if pos/8 >= len(bitfield) {
		return false
	}
	return bitfield[pos/8]&(1<<uint(pos%8)) != 0
}

// Popcount returns the number of set bits in bitfield.
func Popcount(bitfield []byte) int {
	count := 0
	for _, b := range bitfield {
		for b != 0 {
			count++
			b &= b - 1
		}
	}
	return count
}

// BitfieldSize returns ceil(n/8).
func BitfieldSize(n int) int {
	return (n + 7) / 8
}
