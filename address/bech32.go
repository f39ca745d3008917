// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address implements the Bech32 and Bech32m checksummed encodings
// used for wallet addresses, per BIP-173 and BIP-350. Only Bech32m is used
// for newly minted ws1/ws2 addresses; Bech32 decoding survives for legacy
// checks (spec.md §4.3). The checksum/charset codec itself is
// `github.com/btcsuite/btcd/btcutil/bech32`; this file only adds the
// Variant selection and the 100-character wire-format ceiling on top of it.
package address

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/luxfi/sorcha-crypto-core/status"
)

// Variant distinguishes the two checksum constants defined by BIP-173/350.
type Variant int

const (
	Bech32 Variant = iota
	Bech32m
)

// MaxLength is the wire-format constraint from spec.md §6: addresses must
// never exceed 100 characters total.
const MaxLength = 100

// Encode converts payload into 5-bit groups and delegates to the library's
// Encode (Bech32) or EncodeM (Bech32m) to produce
// "<hrp>1<charset(data)><charset(checksum)>".
func Encode(hrp string, payload []byte, v Variant) (string, error) {
	if hrp == "" {
		return "", status.New(status.InvalidEncoding, "empty hrp")
	}
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", status.Newf(status.InvalidEncoding, "bit conversion failed: %v", err)
	}

	var out string
	if v == Bech32m {
		out, err = bech32.EncodeM(hrp, data)
	} else {
		out, err = bech32.Encode(hrp, data)
	}
	if err != nil {
		return "", status.Newf(status.InvalidEncoding, "bech32 encode failed: %v", err)
	}
	if len(out) > MaxLength {
		return "", status.Newf(status.InvalidEncoding, "encoded length %d exceeds max %d", len(out), MaxLength)
	}
	return out, nil
}

// Decode delegates to the library's DecodeGeneric, which validates casing,
// charset, separator position, and checksum, then checks the matched
// encoding (Bech32 vs Bech32m) against v. A string encoded under the other
// variant never validates here.
func Decode(encoded string, v Variant) (hrp string, payload []byte, err error) {
	if len(encoded) > MaxLength {
		return "", nil, status.Newf(status.InvalidEncoding, "length %d exceeds max %d", len(encoded), MaxLength)
	}

	hrp, data, enc, err := bech32.DecodeGeneric(encoded)
	if err != nil {
		return "", nil, status.Newf(status.InvalidEncoding, "bech32 decode failed: %v", err)
	}

	wantEnc := bech32.Version0
	if v == Bech32m {
		wantEnc = bech32.VersionM
	}
	if enc != wantEnc {
		return "", nil, status.New(status.InvalidEncoding, "checksum variant mismatch")
	}

	payload, err = bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, status.Newf(status.InvalidEncoding, "bit conversion failed: %v", err)
	}
	return hrp, payload, nil
}
