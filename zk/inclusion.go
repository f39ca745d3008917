// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"bytes"

	"github.com/luxfi/sorcha-crypto-core/hashing"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// ProveInclusion proves knowledge of (v, r) opening commitment, binding the
// proof to merkleRoot and docketID (§4.9 "Inclusion proof"), and packages
// the result with the Merkle path and verification key per §3's data model.
func ProveInclusion(commitment Commitment, opening Opening, merkleRoot [32]byte, merklePath [][32]byte, docketID []byte) (InclusionProof, error) {
	r := scalarFromBytes(opening.Blinding.Expose())

	kv, err := randScalar()
	if err != nil {
		return InclusionProof{}, status.Newf(status.KeyGenFailed, "sampling kv: %v", err)
	}
	kr, err := randScalar()
	if err != nil {
		return InclusionProof{}, status.Newf(status.KeyGenFailed, "sampling kr: %v", err)
	}

	T := pointAdd(scalarBaseMul(kv), scalarMul(pedersenH, kr))
	tBytes := T.compress()

	e := challenge(inclusionLabel, commitment[:], merkleRoot[:], docketID, tBytes[:])

	sv := addMod(kv, mulMod(e, opening.Value))
	sr := addMod(kr, mulMod(e, r))

	return InclusionProof{
		Commitment:      commitment,
		E:               scalarToBytes(e),
		Sv:              scalarToBytes(sv),
		Sr:              scalarToBytes(sr),
		MerkleRoot:      merkleRoot,
		MerklePath:      merklePath,
		VerificationKey: verificationKey(),
		DocketID:        append([]byte(nil), docketID...),
	}, nil
}

// VerifyInclusion recomputes T' = sv·G + sr·H − e·C, checks
// H(label ‖ C ‖ merkleRoot ‖ docketID ‖ T') == e, and performs the
// structural checks §4.9 requires: a 32-byte merkle root, a non-null
// commitment, and a verification key matching this package's generators.
func VerifyInclusion(proof InclusionProof) status.Code {
	C, err := decompress(proof.Commitment[:])
	if err != nil {
		return status.InvalidEncoding
	}
	if proof.VerificationKey != verificationKey() {
		return status.InvalidParameter
	}

	e := scalarFromBytes(proof.E[:])
	sv := scalarFromBytes(proof.Sv[:])
	sr := scalarFromBytes(proof.Sr[:])

	svG := scalarBaseMul(sv)
	srH := scalarMul(pedersenH, sr)
	eC := scalarMul(C, e)

	Tprime := pointAdd(pointAdd(svG, srH), pointNeg(eC))
	tBytes := Tprime.compress()

	recomputed := challenge(inclusionLabel, proof.Commitment[:], proof.MerkleRoot[:], proof.DocketID, tBytes[:])
	if recomputed.Cmp(e) != 0 {
		return status.InvalidSignature
	}
	return status.Success
}

// VerifyMerklePath recomputes the Merkle root from a leaf hash and sibling
// path using the conventional left/right ordering bit encoded per step in
// directions, and checks it equals proof.MerkleRoot. Inclusion proofs bind
// the leaf commitment to a root via the Schnorr proof above; this function
// additionally checks the root was actually derived from the claimed path.
func VerifyMerklePath(proof InclusionProof, leaf [32]byte, directions []bool) bool {
	if len(directions) != len(proof.MerklePath) {
		return false
	}
	current := leaf
	for i, sibling := range proof.MerklePath {
		if directions[i] {
			current = hashing.Sum256(sibling[:], current[:])
		} else {
			current = hashing.Sum256(current[:], sibling[:])
		}
	}
	return bytes.Equal(current[:], proof.MerkleRoot[:])
}
