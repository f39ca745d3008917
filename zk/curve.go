// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/luxfi/crypto/secp256k1"
)

var curve = secp256k1.S256()

var errInvalidCommitment = errors.New("zk: invalid commitment encoding")

func randBigInt(max *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, max)
}

// order is the secp256k1 group order q.
func order() *big.Int {
	return curve.Params().N
}

// pedersenH is the nothing-up-my-sleeve generator H = HashToCurve("SORCHA-PEDERSEN-H"),
// computed once via try-and-increment (§4.9), mirroring the teacher's hashToG1
// pattern in zk/pedersen.go but over secp256k1 instead of bn254.
var pedersenH = hashToCurve(pedersenHLabel)

// hashToCurve derives a curve point deterministically from a label using
// try-and-increment: hash the label with an incrementing counter until the
// digest is a valid compressed point.
func hashToCurve(label string) point {
	counter := byte(0)
	for {
		h := sha256.Sum256(append([]byte(label), counter))
		candidate := make([]byte, 33)
		candidate[0] = 0x02
		copy(candidate[1:], h[:])
		x, y := secp256k1.DecompressPubkey(candidate)
		if x != nil && curve.IsOnCurve(x, y) {
			return point{X: x, Y: y}
		}
		counter++
	}
}

// point is an affine secp256k1 point.
type point struct {
	X, Y *big.Int
}

func basePoint() point {
	params := curve.Params()
	return point{X: params.Gx, Y: params.Gy}
}

func scalarBaseMul(k *big.Int) point {
	x, y := curve.ScalarBaseMult(modScalarBytes(k))
	return point{X: x, Y: y}
}

func scalarMul(p point, k *big.Int) point {
	x, y := curve.ScalarMult(p.X, p.Y, modScalarBytes(k))
	return point{X: x, Y: y}
}

func pointAdd(a, b point) point {
	x, y := curve.Add(a.X, a.Y, b.X, b.Y)
	return point{X: x, Y: y}
}

// pointNeg returns -P = (x, p - y) over the curve's base field.
func pointNeg(p point) point {
	y := new(big.Int).Sub(curve.Params().P, p.Y)
	return point{X: new(big.Int).Set(p.X), Y: y}
}

func (p point) compress() [CommitmentSize]byte {
	var out [CommitmentSize]byte
	copy(out[:], secp256k1.CompressPubkey(p.X, p.Y))
	return out
}

// verificationKey returns G‖H compressed (66 B), the pair of generators an
// inclusion proof is checked against (§3's InclusionProof.verification_key).
func verificationKey() [VerificationKeySize]byte {
	var out [VerificationKeySize]byte
	g := basePoint().compress()
	h := pedersenH.compress()
	copy(out[:CommitmentSize], g[:])
	copy(out[CommitmentSize:], h[:])
	return out
}

func decompress(data []byte) (point, error) {
	x, y := secp256k1.DecompressPubkey(data)
	if x == nil {
		return point{}, errInvalidCommitment
	}
	return point{X: x, Y: y}, nil
}

// modScalarBytes reduces k mod q and returns its big-endian bytes for use
// with ScalarMult/ScalarBaseMult, which interpret their scalar argument mod
// the curve order themselves but expect a non-negative representation.
func modScalarBytes(k *big.Int) []byte {
	m := new(big.Int).Mod(k, order())
	return m.Bytes()
}

// randScalar samples a uniform scalar in [1, q-1].
func randScalar() (*big.Int, error) {
	for {
		k, err := randBigInt(order())
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
