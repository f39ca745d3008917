// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/status"
)

func validatorIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}

func TestThresholdSignAggregateVerify(t *testing.T) {
	const t3, n5 = 3, 5
	ks, err := GenerateThresholdKeyShares(t3, n5, validatorIDs(n5))
	require.NoError(t, err)
	require.Len(t, ks.GroupPk, G2CompressedSize)
	require.Len(t, ks.Shares, n5)

	msg := []byte("threshold signed message")
	partials := make([][]byte, 0, n5)
	indices := make([]int, 0, n5)
	for _, share := range ks.Shares {
		sig, err := SignPartial(share.SkShare, msg)
		require.NoError(t, err)
		require.Len(t, sig, G1CompressedSize)
		partials = append(partials, sig)
		indices = append(indices, share.Index)
	}

	agg, err := Aggregate(partials, indices, t3, n5)
	require.NoError(t, err)
	require.Equal(t, status.Success, VerifyAggregate(agg, msg, ks.GroupPk))
}

// TestAggregateIsIndependentOfSubsetChoice is the threshold scheme's
// defining property: any two correct t-subsets aggregate identically.
func TestAggregateIsIndependentOfSubsetChoice(t *testing.T) {
	const t3, n5 = 3, 5
	ks, err := GenerateThresholdKeyShares(t3, n5, validatorIDs(n5))
	require.NoError(t, err)

	msg := []byte("subset independence message")
	partialByIndex := make(map[int][]byte, n5)
	for _, share := range ks.Shares {
		sig, err := SignPartial(share.SkShare, msg)
		require.NoError(t, err)
		partialByIndex[share.Index] = sig
	}

	subsetA := []int{1, 2, 3}
	subsetB := []int{2, 3, 5}

	aggA, err := Aggregate(
		[][]byte{partialByIndex[1], partialByIndex[2], partialByIndex[3]},
		subsetA, t3, n5,
	)
	require.NoError(t, err)
	aggB, err := Aggregate(
		[][]byte{partialByIndex[2], partialByIndex[3], partialByIndex[5]},
		subsetB, t3, n5,
	)
	require.NoError(t, err)

	require.Equal(t, aggA.Sig, aggB.Sig)
	require.Equal(t, status.Success, VerifyAggregate(aggA, msg, ks.GroupPk))
	require.Equal(t, status.Success, VerifyAggregate(aggB, msg, ks.GroupPk))
}

func TestBelowThresholdAggregateIsRejected(t *testing.T) {
	const t3, n5 = 3, 5
	ks, err := GenerateThresholdKeyShares(t3, n5, validatorIDs(n5))
	require.NoError(t, err)

	msg := []byte("below threshold message")
	var partials [][]byte
	var indices []int
	for _, share := range ks.Shares[:2] {
		sig, err := SignPartial(share.SkShare, msg)
		require.NoError(t, err)
		partials = append(partials, sig)
		indices = append(indices, share.Index)
	}

	_, err = Aggregate(partials, indices, t3, n5)
	require.Error(t, err, "aggregate must reject fewer than t partial signatures outright")
}

// TestFakeThresholdAggregateFailsVerification is scenario S3 / property 12:
// declaring a fake t=2 against a real 3-of-5 committee lets Aggregate run to
// completion (len(partialSigs) == the declared t, so the sanity check
// passes) and produces a structurally valid AggregateSignature, but the
// 2-point Lagrange interpolation reconstructs the wrong value against a
// degree-2 sharing polynomial, so VerifyAggregate must reject it.
func TestFakeThresholdAggregateFailsVerification(t *testing.T) {
	const realT, n5 = 3, 5
	const fakeT = 2
	ks, err := GenerateThresholdKeyShares(realT, n5, validatorIDs(n5))
	require.NoError(t, err)

	msg := []byte("fake threshold message")
	var partials [][]byte
	var indices []int
	for _, share := range ks.Shares[:fakeT] {
		sig, err := SignPartial(share.SkShare, msg)
		require.NoError(t, err)
		partials = append(partials, sig)
		indices = append(indices, share.Index)
	}

	agg, err := Aggregate(partials, indices, fakeT, n5)
	require.NoError(t, err, "aggregate must run to completion when the declared threshold matches the supplied share count")
	require.Len(t, agg.Sig, G1CompressedSize)

	require.NotEqual(t, status.Success, VerifyAggregate(agg, msg, ks.GroupPk))
}

func TestTamperingCausesVerificationFailure(t *testing.T) {
	const t2, n3 = 2, 3
	ks, err := GenerateThresholdKeyShares(t2, n3, validatorIDs(n3))
	require.NoError(t, err)

	msg := []byte("tamper target message")
	var partials [][]byte
	var indices []int
	for _, share := range ks.Shares[:t2] {
		sig, err := SignPartial(share.SkShare, msg)
		require.NoError(t, err)
		partials = append(partials, sig)
		indices = append(indices, share.Index)
	}
	agg, err := Aggregate(partials, indices, t2, n3)
	require.NoError(t, err)
	require.Equal(t, status.Success, VerifyAggregate(agg, msg, ks.GroupPk))

	tamperedMsg := append([]byte(nil), msg...)
	tamperedMsg[0] ^= 0xff
	require.Equal(t, status.InvalidSignature, VerifyAggregate(agg, tamperedMsg, ks.GroupPk))

	tamperedGroupPk := append([]byte(nil), ks.GroupPk...)
	tamperedGroupPk[0] ^= 0xff
	require.NotEqual(t, status.Success, VerifyAggregate(agg, msg, tamperedGroupPk))

	tamperedAgg := &AggregateSignature{
		Sig:      append([]byte(nil), agg.Sig...),
		Bitfield: agg.Bitfield,
		T:        agg.T,
		N:        agg.N,
	}
	tamperedAgg.Sig[0] ^= 0xff
	require.NotEqual(t, status.Success, VerifyAggregate(tamperedAgg, msg, ks.GroupPk))
}

func TestGenerateRejectsInvalidThreshold(t *testing.T) {
	_, err := GenerateThresholdKeyShares(0, 3, validatorIDs(3))
	require.Error(t, err)
	_, err = GenerateThresholdKeyShares(4, 3, validatorIDs(3))
	require.Error(t, err)
	_, err = GenerateThresholdKeyShares(2, 3, validatorIDs(2))
	require.Error(t, err)
}
