// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"math/big"

	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// ProveRange proves that value lies in [0, 2^bitLength - 1] by decomposing it
// into bits, committing each bit, proving each commitment opens to 0 or 1
// with a one-of-two Schnorr OR-proof, and certifying the homomorphic sum of
// bit commitments reconstructs the top-level commitment (§4.9 "Range proof").
func ProveRange(value *big.Int, bitLength int) (RangeProof, *Opening, error) {
	if bitLength < 1 || bitLength > MaxBitLength {
		return RangeProof{}, nil, status.Newf(status.InvalidParameter, "bit length must be in [1, %d], got %d", MaxBitLength, bitLength)
	}
	if value.Sign() < 0 || value.BitLen() > bitLength {
		return RangeProof{}, nil, status.Newf(status.InvalidParameter, "value does not fit in %d bits", bitLength)
	}

	bitBlindings := make([]*big.Int, bitLength)
	bitCommitments := make([]Commitment, bitLength)
	bitProofs := make([]BitProof, bitLength)
	totalR := new(big.Int)

	for i := 0; i < bitLength; i++ {
		bi := value.Bit(i)
		ri, err := randScalar()
		if err != nil {
			return RangeProof{}, nil, status.Newf(status.KeyGenFailed, "sampling bit blinding %d: %v", i, err)
		}
		bitBlindings[i] = ri

		weight := new(big.Int).Lsh(big.NewInt(1), uint(i))
		totalR.Add(totalR, new(big.Int).Mul(weight, ri))

		Ci := Commit(new(big.Int).SetUint64(uint64(bi)), ri)
		bitCommitments[i] = Ci

		proof, err := proveBit(Ci, bi, ri)
		if err != nil {
			return RangeProof{}, nil, err
		}
		bitProofs[i] = proof
	}
	totalR.Mod(totalR, order())

	commitment := Commit(value, totalR)

	// The residual C − Σ 2ⁱ·Ci is the identity by construction, so its
	// discrete log w.r.t. H is 0.
	agg, err := proveAggregation(commitment, bitCommitments, big.NewInt(0))
	if err != nil {
		return RangeProof{}, nil, err
	}

	rp := RangeProof{
		Commitment:       commitment,
		BitCommitments:   bitCommitments,
		BitProofs:        bitProofs,
		AggregationProof: agg,
		BitLength:        uint32(bitLength),
	}
	opening := &Opening{Value: value, Blinding: secretbytes.New(totalR.Bytes())}
	return rp, opening, nil
}

// proveBit produces a Schnorr OR-proof that Ci opens to 0 (Ci = ri·H) or
// opens to 1 (Ci - G = ri·H), without revealing which.
func proveBit(Ci Commitment, bit uint, ri *big.Int) (BitProof, error) {
	C, err := decompress(Ci[:])
	if err != nil {
		return BitProof{}, status.Newf(status.InvalidEncoding, "bit commitment decode: %v", err)
	}
	CminusG := pointAdd(C, pointNeg(basePoint()))

	if bit == 0 {
		// Real branch 0 (Ci = ri·H); simulate branch 1.
		k0, err := randScalar()
		if err != nil {
			return BitProof{}, status.Newf(status.KeyGenFailed, "sampling k0: %v", err)
		}
		e1, err := randScalar()
		if err != nil {
			return BitProof{}, status.Newf(status.KeyGenFailed, "sampling e1: %v", err)
		}
		s1, err := randScalar()
		if err != nil {
			return BitProof{}, status.Newf(status.KeyGenFailed, "sampling s1: %v", err)
		}

		A0 := scalarMul(pedersenH, k0)
		// A1 = s1·H - e1·(Ci - G)
		A1 := pointAdd(scalarMul(pedersenH, s1), pointNeg(scalarMul(CminusG, e1)))

		a0b, a1b := A0.compress(), A1.compress()
		e := challenge(rangeBitLabel, Ci[:], a0b[:], a1b[:])
		e0 := subMod(e, e1)
		s0 := addMod(k0, mulMod(e0, ri))

		return BitProof{E0: scalarToBytes(e0), S0: scalarToBytes(s0), E1: scalarToBytes(e1), S1: scalarToBytes(s1)}, nil
	}

	// Real branch 1 (Ci - G = ri·H); simulate branch 0.
	k1, err := randScalar()
	if err != nil {
		return BitProof{}, status.Newf(status.KeyGenFailed, "sampling k1: %v", err)
	}
	e0, err := randScalar()
	if err != nil {
		return BitProof{}, status.Newf(status.KeyGenFailed, "sampling e0: %v", err)
	}
	s0, err := randScalar()
	if err != nil {
		return BitProof{}, status.Newf(status.KeyGenFailed, "sampling s0: %v", err)
	}

	A1 := scalarMul(pedersenH, k1)
	// A0 = s0·H - e0·Ci
	A0 := pointAdd(scalarMul(pedersenH, s0), pointNeg(scalarMul(C, e0)))

	a0b, a1b := A0.compress(), A1.compress()
	e := challenge(rangeBitLabel, Ci[:], a0b[:], a1b[:])
	e1 := subMod(e, e0)
	s1 := addMod(k1, mulMod(e1, ri))

	return BitProof{E0: scalarToBytes(e0), S0: scalarToBytes(s0), E1: scalarToBytes(e1), S1: scalarToBytes(s1)}, nil
}

// verifyBit recomputes A0', A1' from the proof and checks e0+e1 against the
// Fiat-Shamir challenge.
func verifyBit(Ci Commitment, proof BitProof) bool {
	C, err := decompress(Ci[:])
	if err != nil {
		return false
	}
	CminusG := pointAdd(C, pointNeg(basePoint()))

	e0 := scalarFromBytes(proof.E0[:])
	s0 := scalarFromBytes(proof.S0[:])
	e1 := scalarFromBytes(proof.E1[:])
	s1 := scalarFromBytes(proof.S1[:])

	A0 := pointAdd(scalarMul(pedersenH, s0), pointNeg(scalarMul(C, e0)))
	A1 := pointAdd(scalarMul(pedersenH, s1), pointNeg(scalarMul(CminusG, e1)))

	a0b, a1b := A0.compress(), A1.compress()
	e := challenge(rangeBitLabel, Ci[:], a0b[:], a1b[:])

	return addMod(e0, e1).Cmp(e) == 0
}

// proveAggregation certifies Σᵢ 2ⁱ·Ci = C via a Schnorr proof of knowledge of
// the discrete log, w.r.t. H, of the residual point C − Σᵢ 2ⁱ·Ci. By
// construction the top-level commitment's blinding is exactly Σᵢ 2ⁱ·rᵢ, so
// the residual is the identity and its witness delta is 0; the proof still
// binds both point sets together through the Fiat-Shamir challenge, so
// tampering with any bit commitment or the top commitment invalidates it.
func proveAggregation(commitment Commitment, bitCommitments []Commitment, delta *big.Int) (AggregationProof, error) {
	k, err := randScalar()
	if err != nil {
		return AggregationProof{}, status.Newf(status.KeyGenFailed, "sampling aggregation nonce: %v", err)
	}
	A := scalarMul(pedersenH, k)
	aBytes := A.compress()

	e := challenge(aggregateLabel, aggregationChallengeInput(commitment, bitCommitments, aBytes[:])...)
	s := addMod(k, mulMod(e, delta))

	return AggregationProof{E: scalarToBytes(e), S: scalarToBytes(s)}, nil
}

func verifyAggregation(commitment Commitment, bitCommitments []Commitment, bitLength uint32, proof AggregationProof) bool {
	// Reconstruct residual R = C - Σᵢ 2ⁱ·Ci, which must equal a multiple of H
	// alone if the bits correctly reassemble the top commitment.
	sum, err := weightedSum(bitCommitments)
	if err != nil {
		return false
	}
	C, err := decompress(commitment[:])
	if err != nil {
		return false
	}
	residual := pointAdd(C, pointNeg(sum))

	e := scalarFromBytes(proof.E[:])
	s := scalarFromBytes(proof.S[:])

	// A' = s·H - e·residual
	Aprime := pointAdd(scalarMul(pedersenH, s), pointNeg(scalarMul(residual, e)))
	aBytes := Aprime.compress()

	recomputed := challenge(aggregateLabel, aggregationChallengeInput(commitment, bitCommitments, aBytes[:])...)
	return recomputed.Cmp(e) == 0
}

func weightedSum(bitCommitments []Commitment) (point, error) {
	var sum point
	initialized := false
	for i, Ci := range bitCommitments {
		P, err := decompress(Ci[:])
		if err != nil {
			return point{}, err
		}
		weight := new(big.Int).Lsh(big.NewInt(1), uint(i))
		weighted := scalarMul(P, weight)
		if !initialized {
			sum = weighted
			initialized = true
			continue
		}
		sum = pointAdd(sum, weighted)
	}
	return sum, nil
}

func aggregationChallengeInput(commitment Commitment, bitCommitments []Commitment, nonceCommit []byte) [][]byte {
	parts := make([][]byte, 0, len(bitCommitments)+2)
	parts = append(parts, commitment[:])
	for _, c := range bitCommitments {
		parts = append(parts, c[:])
	}
	parts = append(parts, nonceCommit)
	return parts
}

// VerifyRange checks every bit proof, the aggregation proof, and that the
// array lengths match bit_length (§4.9 "Verification").
func VerifyRange(rp RangeProof) status.Code {
	if rp.BitLength < 1 || rp.BitLength > MaxBitLength {
		return status.InvalidParameter
	}
	if len(rp.BitCommitments) != int(rp.BitLength) || len(rp.BitProofs) != int(rp.BitLength) {
		return status.InvalidEncoding
	}
	for i := range rp.BitProofs {
		if !verifyBit(rp.BitCommitments[i], rp.BitProofs[i]) {
			return status.InvalidSignature
		}
	}
	if !verifyAggregation(rp.Commitment, rp.BitCommitments, rp.BitLength, rp.AggregationProof) {
		return status.InvalidSignature
	}
	return status.Success
}
