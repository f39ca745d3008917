// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cryptomodule

import (
	"encoding/base64"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/hybrid"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// HybridSign produces both halves of a hybrid signature (§4.5). Per §5's
// concurrency model, the classical and PQC halves are signed on separate
// goroutines; order of completion does not matter since the container
// records algorithm names explicitly.
func HybridSign(msg []byte, classicalTag cryptotypes.AlgorithmTag, classicalSk *SecretKey, pqcTag cryptotypes.AlgorithmTag, pqcSk *SecretKey, witnessPub cryptotypes.PublicBytes) (hybrid.Signature, error) {
	type result struct {
		sig cryptotypes.Signature
		err error
	}

	classicalCh := make(chan result, 1)
	pqcCh := make(chan result, 1)

	go func() {
		sig, err := Sign(msg, classicalTag, classicalSk)
		classicalCh <- result{sig, err}
	}()
	go func() {
		sig, err := Sign(msg, pqcTag, pqcSk)
		pqcCh <- result{sig, err}
	}()

	classicalRes := <-classicalCh
	pqcRes := <-pqcCh

	if classicalRes.err != nil {
		return hybrid.Signature{}, classicalRes.err
	}
	if pqcRes.err != nil {
		return hybrid.Signature{}, pqcRes.err
	}

	return hybrid.Signature{
		Classical: &hybrid.ClassicalHalf{
			Algorithm: classicalTag,
			SigB64:    base64.StdEncoding.EncodeToString(classicalRes.sig.Bytes),
		},
		Pqc: &hybrid.PqcHalf{
			Algorithm:     pqcTag,
			SigB64:        base64.StdEncoding.EncodeToString(pqcRes.sig.Bytes),
			WitnessPubB64: base64.StdEncoding.EncodeToString(witnessPub),
		},
	}, nil
}

// HybridVerify checks a hybrid signature under the given verification mode.
func HybridVerify(sig hybrid.Signature, msg []byte, classicalPub cryptotypes.PublicBytes, mode hybrid.Mode) status.Code {
	return hybrid.Verify(sig, msg, classicalPub, mode)
}

// HybridSignResult is the value delivered on HybridSignAsync's channel.
type HybridSignResult struct {
	Signature hybrid.Signature
	Err       error
}

// HybridSignAsync is the async wrapper §5 describes: a thin adapter so
// callers can fan this operation out alongside other work without
// blocking. The underlying signing still happens synchronously per half;
// only the wrapper itself suspends.
func HybridSignAsync(msg []byte, classicalTag cryptotypes.AlgorithmTag, classicalSk *SecretKey, pqcTag cryptotypes.AlgorithmTag, pqcSk *SecretKey, witnessPub cryptotypes.PublicBytes) <-chan HybridSignResult {
	out := make(chan HybridSignResult, 1)
	go func() {
		sig, err := HybridSign(msg, classicalTag, classicalSk, pqcTag, pqcSk, witnessPub)
		out <- HybridSignResult{Signature: sig, Err: err}
	}()
	return out
}

// HybridVerifyAsync is the async wrapper for HybridVerify.
func HybridVerifyAsync(sig hybrid.Signature, msg []byte, classicalPub cryptotypes.PublicBytes, mode hybrid.Mode) <-chan status.Code {
	out := make(chan status.Code, 1)
	go func() {
		out <- HybridVerify(sig, msg, classicalPub, mode)
	}()
	return out
}
