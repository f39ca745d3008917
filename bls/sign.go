// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// SignPartial computes sk_share · H2C_G1(msg), returning a compressed G1
// point (§4.7 "Partial sign").
func SignPartial(skShare *secretbytes.Bytes, msg []byte) ([]byte, error) {
	if skShare.Len() != ScalarSize {
		return nil, status.Newf(status.InvalidKey, "expected %d-byte scalar share, got %d", ScalarSize, skShare.Len())
	}
	var s fr.Element
	s.SetBytes(skShare.Expose())

	h, err := hashToG1(msg)
	if err != nil {
		return nil, err
	}

	var sig bls12381.G1Affine
	sig.ScalarMultiplication(&h, s.BigInt(new(big.Int)))
	out := sig.Bytes()
	return append([]byte(nil), out[:]...), nil
}

// lagrangeCoefficientsAtZero computes λ_i(0) for the index set indices,
// using the standard formula λ_i(0) = Π_{j≠i} (-x_j) / (x_i - x_j) over Fr.
func lagrangeCoefficientsAtZero(indices []int) []fr.Element {
	xs := make([]fr.Element, len(indices))
	for i, idx := range indices {
		xs[i].SetUint64(uint64(idx))
	}

	lambdas := make([]fr.Element, len(indices))
	for i := range indices {
		var numerator fr.Element
		numerator.SetOne()
		for j := range indices {
			if j == i {
				continue
			}
			var term fr.Element
			term.Neg(&xs[j])
			numerator.Mul(&numerator, &term)
		}

		var denominator fr.Element
		denominator.SetOne()
		for j := range indices {
			if j == i {
				continue
			}
			var diff fr.Element
			diff.Sub(&xs[i], &xs[j])
			denominator.Mul(&denominator, &diff)
		}

		var denInv fr.Element
		denInv.Inverse(&denominator)
		lambdas[i].Mul(&numerator, &denInv)
	}
	return lambdas
}

// Aggregate combines t of the supplied partial signatures into a single
// threshold signature using Lagrange interpolation (§4.7 "Aggregate").
// The first t supplied (partialSig, index) pairs are used deterministically,
// which is sufficient for correctness since aggregate is independent of
// which correct t-subset is chosen.
func Aggregate(partialSigs [][]byte, indices []int, t, n int) (*AggregateSignature, error) {
	if len(partialSigs) != len(indices) {
		return nil, status.New(status.InvalidParameter, "partial signature and index slices must have equal length")
	}
	if len(partialSigs) < t {
		return nil, status.Newf(status.InvalidParameter, "need at least %d partial signatures, got %d", t, len(partialSigs))
	}

	usedSigs := partialSigs[:t]
	usedIndices := indices[:t]

	points := make([]bls12381.G1Affine, t)
	for i, sigBytes := range usedSigs {
		if len(sigBytes) != G1CompressedSize {
			return nil, status.Newf(status.InvalidParameter, "partial signature %d has length %d, expected %d", i, len(sigBytes), G1CompressedSize)
		}
		if err := points[i].Unmarshal(sigBytes); err != nil {
			return nil, status.Newf(status.InvalidParameter, "partial signature %d decode: %v", i, err)
		}
	}

	lambdas := lagrangeCoefficientsAtZero(usedIndices)

	var aggregate bls12381.G1Affine
	aggregate.SetInfinity()
	for i := range points {
		var scaled bls12381.G1Affine
		scaled.ScalarMultiplication(&points[i], lambdas[i].BigInt(new(big.Int)))
		aggregate.Add(&aggregate, &scaled)
	}

	bitfield := make([]byte, BitfieldSize(n))
	for _, idx := range usedIndices {
		SetBit(bitfield, idx)
	}

	sigBytes := aggregate.Bytes()
	return &AggregateSignature{
		Sig:      append([]byte(nil), sigBytes[:]...),
		Bitfield: bitfield,
		T:        t,
		N:        n,
	}, nil
}
