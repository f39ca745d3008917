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

// evalPoly evaluates Σ coeffs[j]·x^j over Fr using Horner's method.
func evalPoly(x uint64, coeffs []fr.Element) fr.Element {
	var result fr.Element
	var xElem fr.Element
	xElem.SetUint64(x)
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &xElem)
		result.Add(&result, &coeffs[i])
	}
	return result
}

// GenerateThresholdKeyShares runs a trusted-dealer ceremony producing a
// t-of-n BLS12-381 threshold key set (§4.7).
func GenerateThresholdKeyShares(t, n int, validatorIDs []string) (*KeySet, error) {
	if t < 1 || t > n {
		return nil, status.Newf(status.InvalidParameter, "threshold must satisfy 1 <= t <= n, got t=%d n=%d", t, n)
	}
	if len(validatorIDs) != n {
		return nil, status.Newf(status.InvalidParameter, "expected %d validator ids, got %d", n, len(validatorIDs))
	}

	coeffs := make([]fr.Element, t)
	for i := range coeffs {
		if _, err := coeffs[i].SetRandom(); err != nil {
			return nil, status.Newf(status.KeyGenFailed, "sampling polynomial coefficient: %v", err)
		}
	}
	defer func() {
		for i := range coeffs {
			coeffs[i].SetZero()
		}
	}()

	_, _, g1Gen, g2Gen := bls12381.Generators()
	_ = g1Gen

	var groupPkPoint bls12381.G2Affine
	groupPkPoint.ScalarMultiplication(&g2Gen, coeffs[0].BigInt(new(big.Int)))
	groupPkBytes := groupPkPoint.Bytes()

	shares := make([]KeyShare, n)
	for i := 0; i < n; i++ {
		index := i + 1
		skShare := evalPoly(uint64(index), coeffs)

		var pkSharePoint bls12381.G2Affine
		pkSharePoint.ScalarMultiplication(&g2Gen, skShare.BigInt(new(big.Int)))
		pkShareBytes := pkSharePoint.Bytes()

		skBytes := skShare.Bytes()
		shares[i] = KeyShare{
			Index:       index,
			SkShare:     secretbytes.New(skBytes[:]),
			PkShare:     append([]byte(nil), pkShareBytes[:]...),
			ValidatorID: validatorIDs[i],
		}
		skShare.SetZero()
	}

	return &KeySet{
		Threshold: t,
		Total:     n,
		GroupPk:   append([]byte(nil), groupPkBytes[:]...),
		Shares:    shares,
	}, nil
}
