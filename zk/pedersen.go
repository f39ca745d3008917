// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"math/big"

	"github.com/luxfi/sorcha-crypto-core/secretbytes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Opening is the (value, blinding) pair behind a Pedersen commitment.
// Blinding is held in a SecretBytes so it can be zeroized with Wipe;
// dropping the Opening does not zeroize it.
type Opening struct {
	Value    *big.Int
	Blinding *secretbytes.Bytes
}

// Commit computes C = v*G + r*H (§4.9).
func Commit(value, blinding *big.Int) Commitment {
	vG := scalarBaseMul(value)
	rH := scalarMul(pedersenH, blinding)
	c := pointAdd(vG, rH)
	return c.compress()
}

// CommitRandom samples a fresh blinding factor and commits to value,
// returning the commitment and the opening needed to prove it later.
func CommitRandom(value *big.Int) (Commitment, *Opening, error) {
	r, err := randScalar()
	if err != nil {
		return Commitment{}, nil, status.Newf(status.KeyGenFailed, "sampling blinding factor: %v", err)
	}
	c := Commit(value, r)
	return c, &Opening{Value: value, Blinding: secretbytes.New(r.Bytes())}, nil
}

// VerifyOpening checks that commitment == value*G + blinding*H.
func VerifyOpening(commitment Commitment, value, blinding *big.Int) bool {
	expected := Commit(value, blinding)
	return expected == commitment
}
