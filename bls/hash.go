// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/luxfi/sorcha-crypto-core/status"
)

// hashToG1 maps msg to a point in G1 using the RFC 9380
// BLS12381G1_XMD:SHA-256_SSWU_RO_ suite with the fixed signature DST.
func hashToG1(msg []byte) (bls12381.G1Affine, error) {
	p, err := bls12381.HashToG1(msg, []byte(signatureDST))
	if err != nil {
		return bls12381.G1Affine{}, status.Newf(status.InvalidParameter, "hash-to-curve: %v", err)
	}
	return p, nil
}
