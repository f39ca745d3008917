// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package zk implements a Pedersen-commitment zero-knowledge proof layer on
// secp256k1: Merkle-inclusion Schnorr proofs and bit-decomposition range
// proofs built from per-bit OR-proofs plus an aggregation proof.
package zk

import "github.com/luxfi/sorcha-crypto-core/status"

const (
	// ScalarSize is the byte width of a secp256k1 scalar (mod q).
	ScalarSize = 32
	// CommitmentSize is the byte width of a compressed secp256k1 point.
	CommitmentSize = 33

	// InclusionProofDataSize is len(e || sv || sr), the Schnorr proof_data
	// field from the inclusion proof's data model.
	InclusionProofDataSize = 3 * ScalarSize
	// VerificationKeySize is len(G || H), the two compressed generator
	// points an inclusion proof is checked against.
	VerificationKeySize = 2 * CommitmentSize
	// BitProofSize is len(e0 || s0 || e1 || s1) for one OR-proof.
	BitProofSize = 4 * ScalarSize
	// AggregationProofSize is len(e || s) for the residual-blinding Schnorr proof.
	AggregationProofSize = 2 * ScalarSize

	// MaxBitLength is the largest range-proof width this package supports.
	MaxBitLength = 64

	pedersenHLabel = "SORCHA-PEDERSEN-H"
	inclusionLabel = "SORCHA-INCL"
	rangeBitLabel  = "SORCHA-RANGE-BIT"
	aggregateLabel = "SORCHA-RANGE-AGG"
)

// Commitment is a compressed secp256k1 Pedersen commitment C = vG + rH.
type Commitment [CommitmentSize]byte

// InclusionProof proves knowledge of (v, r) opening Commitment, binding the
// proof to a Merkle root/path, a verification key, and a docket ID (§3's
// InclusionProof data model).
type InclusionProof struct {
	Commitment      Commitment
	E               [ScalarSize]byte
	Sv              [ScalarSize]byte
	Sr              [ScalarSize]byte
	MerkleRoot      [32]byte
	MerklePath      [][32]byte
	VerificationKey [VerificationKeySize]byte
	DocketID        []byte
}

// Bytes encodes commitment(33) ‖ e‖sv‖sr(96) ‖ merkle_root(32) ‖
// path_len(u32) ‖ {sibling(32)}* ‖ vk(66) ‖ docket_id, matching §6's wire
// format. path_len is not part of §6's byte tally but is required to
// delimit the variable-length sibling list from the fixed-size vk that
// follows it; docket_id, being last and UTF-8, consumes the remainder.
func (p InclusionProof) Bytes() []byte {
	out := make([]byte, 0, CommitmentSize+InclusionProofDataSize+32+4+len(p.MerklePath)*32+VerificationKeySize+len(p.DocketID))
	out = append(out, p.Commitment[:]...)
	out = append(out, p.E[:]...)
	out = append(out, p.Sv[:]...)
	out = append(out, p.Sr[:]...)
	out = append(out, p.MerkleRoot[:]...)
	pathLen := uint32(len(p.MerklePath))
	out = append(out, byte(pathLen>>24), byte(pathLen>>16), byte(pathLen>>8), byte(pathLen))
	for _, sibling := range p.MerklePath {
		out = append(out, sibling[:]...)
	}
	out = append(out, p.VerificationKey[:]...)
	out = append(out, p.DocketID...)
	return out
}

// InclusionProofFromBytes parses the wire format Bytes produces.
func InclusionProofFromBytes(data []byte) (InclusionProof, error) {
	var p InclusionProof
	minLen := CommitmentSize + InclusionProofDataSize + 32 + 4 + VerificationKeySize
	if len(data) < minLen {
		return p, status.Newf(status.InvalidEncoding, "inclusion proof must be at least %d bytes, got %d", minLen, len(data))
	}
	off := 0
	copy(p.Commitment[:], data[off:off+CommitmentSize])
	off += CommitmentSize
	copy(p.E[:], data[off:off+ScalarSize])
	off += ScalarSize
	copy(p.Sv[:], data[off:off+ScalarSize])
	off += ScalarSize
	copy(p.Sr[:], data[off:off+ScalarSize])
	off += ScalarSize
	copy(p.MerkleRoot[:], data[off:off+32])
	off += 32

	pathLen := uint32(data[off])<<24 | uint32(data[off+1])<<16 | uint32(data[off+2])<<8 | uint32(data[off+3])
	off += 4

	need := off + int(pathLen)*32 + VerificationKeySize
	if need < off || len(data) < need {
		return InclusionProof{}, status.Newf(status.InvalidEncoding, "inclusion proof declares %d merkle siblings but only has %d bytes remaining", pathLen, len(data)-off)
	}

	p.MerklePath = make([][32]byte, pathLen)
	for i := range p.MerklePath {
		copy(p.MerklePath[i][:], data[off:off+32])
		off += 32
	}
	copy(p.VerificationKey[:], data[off:off+VerificationKeySize])
	off += VerificationKeySize

	p.DocketID = append([]byte(nil), data[off:]...)
	return p, nil
}

// BitProof is a one-of-two OR-proof that a bit commitment opens to 0 or 1
// (§4.9 "Range proof").
type BitProof struct {
	E0 [ScalarSize]byte
	S0 [ScalarSize]byte
	E1 [ScalarSize]byte
	S1 [ScalarSize]byte
}

// Bytes encodes the proof as e0‖s0‖e1‖s1 (128 B).
func (p BitProof) Bytes() []byte {
	out := make([]byte, 0, BitProofSize)
	out = append(out, p.E0[:]...)
	out = append(out, p.S0[:]...)
	out = append(out, p.E1[:]...)
	out = append(out, p.S1[:]...)
	return out
}

// BitProofFromBytes parses a 128-byte bit proof.
func BitProofFromBytes(data []byte) (BitProof, error) {
	var p BitProof
	if len(data) != BitProofSize {
		return p, status.Newf(status.InvalidEncoding, "bit proof must be %d bytes, got %d", BitProofSize, len(data))
	}
	copy(p.E0[:], data[0:32])
	copy(p.S0[:], data[32:64])
	copy(p.E1[:], data[64:96])
	copy(p.S1[:], data[96:128])
	return p, nil
}

// AggregationProof is a Schnorr proof over the residual blinding factor
// certifying Σᵢ 2ⁱ·C_i = C.
type AggregationProof struct {
	E [ScalarSize]byte
	S [ScalarSize]byte
}

// Bytes encodes the proof as e‖s (64 B).
func (p AggregationProof) Bytes() []byte {
	out := make([]byte, 0, AggregationProofSize)
	out = append(out, p.E[:]...)
	out = append(out, p.S[:]...)
	return out
}

// AggregationProofFromBytes parses a 64-byte aggregation proof.
func AggregationProofFromBytes(data []byte) (AggregationProof, error) {
	var p AggregationProof
	if len(data) != AggregationProofSize {
		return p, status.Newf(status.InvalidEncoding, "aggregation proof must be %d bytes, got %d", AggregationProofSize, len(data))
	}
	copy(p.E[:], data[0:32])
	copy(p.S[:], data[32:64])
	return p, nil
}

// RangeProof proves a committed value lies in [0, 2^BitLength - 1]
// (§4.9 "Range proof", wire format per §6).
type RangeProof struct {
	Commitment       Commitment
	BitCommitments   []Commitment
	BitProofs        []BitProof
	AggregationProof AggregationProof
	BitLength        uint32
}

// Bytes encodes commitment(33) ‖ {bit_commit_i(33)}ᵢ ‖ {bit_proof_i(128)}ᵢ ‖
// aggregation(64) ‖ L(u32), matching §6's wire format.
func (rp RangeProof) Bytes() []byte {
	out := make([]byte, 0, CommitmentSize+len(rp.BitCommitments)*CommitmentSize+len(rp.BitProofs)*BitProofSize+AggregationProofSize+4)
	out = append(out, rp.Commitment[:]...)
	for _, c := range rp.BitCommitments {
		out = append(out, c[:]...)
	}
	for _, b := range rp.BitProofs {
		out = append(out, b.Bytes()...)
	}
	out = append(out, rp.AggregationProof.Bytes()...)
	out = append(out, byte(rp.BitLength>>24), byte(rp.BitLength>>16), byte(rp.BitLength>>8), byte(rp.BitLength))
	return out
}
