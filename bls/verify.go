// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/luxfi/sorcha-crypto-core/status"
)

// VerifyAggregate checks e(sig, G2) = e(H2C_G1(msg), group_pk) (§4.7
// "Verify aggregate"). A bitfield with fewer than t contributing shares
// is rejected before the pairing check runs, since such an aggregate
// cannot satisfy the pairing equation for a correctly produced key set
// and failing fast avoids an expensive pairing on structurally invalid
// input.
func VerifyAggregate(sig *AggregateSignature, msg []byte, groupPk []byte) status.Code {
	if len(sig.Sig) != G1CompressedSize {
		return status.InvalidParameter
	}
	if len(groupPk) != G2CompressedSize {
		return status.InvalidKey
	}
	if Popcount(sig.Bitfield) < sig.T {
		return status.InvalidSignature
	}

	var sigPoint bls12381.G1Affine
	if err := sigPoint.Unmarshal(sig.Sig); err != nil {
		return status.InvalidParameter
	}
	var groupPkPoint bls12381.G2Affine
	if err := groupPkPoint.Unmarshal(groupPk); err != nil {
		return status.InvalidKey
	}

	h, err := hashToG1(msg)
	if err != nil {
		return status.InvalidParameter
	}

	_, _, _, g2Gen := bls12381.Generators()
	var negGroupPk bls12381.G2Affine
	negGroupPk.Neg(&groupPkPoint)

	// e(sig, G2) * e(H, -group_pk) == 1  <=>  e(sig, G2) == e(H, group_pk)
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{sigPoint, h},
		[]bls12381.G2Affine{g2Gen, negGroupPk},
	)
	if err != nil {
		return status.InvalidParameter
	}
	if !ok {
		return status.InvalidSignature
	}
	return status.Success
}
