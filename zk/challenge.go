// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"crypto/sha256"
	"math/big"
)

// challenge computes e = H(label ‖ parts...) reduced mod q (§4.9's
// Fiat-Shamir construction, shared by every proof kind in this package).
func challenge(label string, parts ...[]byte) *big.Int {
	h := sha256.New()
	h.Write([]byte(label))
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)
	e := new(big.Int).SetBytes(digest)
	return e.Mod(e, order())
}

func scalarToBytes(k *big.Int) [ScalarSize]byte {
	var out [ScalarSize]byte
	b := new(big.Int).Mod(k, order()).Bytes()
	copy(out[ScalarSize-len(b):], b)
	return out
}

func scalarFromBytes(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// addMod and subMod perform scalar arithmetic mod q.
func addMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), order())
}

func subMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), order())
}

func mulMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), order())
}
