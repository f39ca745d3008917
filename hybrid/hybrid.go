// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hybrid implements the classical+PQC hybrid signature container:
// structural validation, Strict/Permissive verification, and canonical
// JSON serialisation. It dispatches to the concrete signature providers
// (ed25519, nistp256, rsa4096, mldsa, slhdsa) by algorithm tag.
package hybrid

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/ed25519"
	"github.com/luxfi/sorcha-crypto-core/mldsa"
	"github.com/luxfi/sorcha-crypto-core/nistp256"
	"github.com/luxfi/sorcha-crypto-core/rsa4096"
	"github.com/luxfi/sorcha-crypto-core/slhdsa"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Mode selects how the two halves of a hybrid signature are combined
// during verification.
type Mode int

const (
	// Strict requires both halves to be present and to verify.
	Strict Mode = iota
	// Permissive accepts any present half that verifies, as long as no
	// present half fails.
	Permissive
)

// ClassicalHalf carries a classical signature over a message.
type ClassicalHalf struct {
	Algorithm cryptotypes.AlgorithmTag `json:"-"`
	SigB64    string                   `json:"sigB64"`
}

// PqcHalf carries a post-quantum signature plus the witness public key
// bound into a ws2 wallet address (see wallet package).
type PqcHalf struct {
	Algorithm     cryptotypes.AlgorithmTag `json:"-"`
	SigB64        string                   `json:"sigB64"`
	WitnessPubB64 string                   `json:"witnessPubB64"`
}

// Signature is the hybrid container: either half, or both, may be present.
type Signature struct {
	Classical *ClassicalHalf `json:"classical,omitempty"`
	Pqc       *PqcHalf       `json:"pqc,omitempty"`
}

// wireClassical and wirePqc mirror the public halves but carry the
// algorithm tag as a plain string so it round-trips through JSON; the
// exported halves keep Algorithm unexported from JSON to avoid leaking
// the internal int enum representation on the wire.
type wireClassical struct {
	Algorithm string `json:"algorithm"`
	SigB64    string `json:"sigB64"`
}

type wirePqc struct {
	Algorithm     string `json:"algorithm"`
	SigB64        string `json:"sigB64"`
	WitnessPubB64 string `json:"witnessPubB64"`
}

type wireSignature struct {
	Classical *wireClassical `json:"classical,omitempty"`
	Pqc       *wirePqc       `json:"pqc,omitempty"`
}

var algorithmByName = map[string]cryptotypes.AlgorithmTag{
	cryptotypes.Ed25519.String():    cryptotypes.Ed25519,
	cryptotypes.NISTP256.String():   cryptotypes.NISTP256,
	cryptotypes.RSA4096.String():    cryptotypes.RSA4096,
	cryptotypes.MLDSA65.String():    cryptotypes.MLDSA65,
	cryptotypes.SLHDSA128s.String(): cryptotypes.SLHDSA128s,
	cryptotypes.SLHDSA192s.String(): cryptotypes.SLHDSA192s,
}

// MarshalJSON implements the canonical camelCase, null-omitted wire format.
func (s Signature) MarshalJSON() ([]byte, error) {
	w := wireSignature{}
	if s.Classical != nil {
		w.Classical = &wireClassical{Algorithm: s.Classical.Algorithm.String(), SigB64: s.Classical.SigB64}
	}
	if s.Pqc != nil {
		w.Pqc = &wirePqc{
			Algorithm:     s.Pqc.Algorithm.String(),
			SigB64:        s.Pqc.SigB64,
			WitnessPubB64: s.Pqc.WitnessPubB64,
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON parses the canonical wire format back into a Signature.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var w wireSignature
	if err := json.Unmarshal(data, &w); err != nil {
		return status.Newf(status.InvalidEncoding, "hybrid signature decode: %v", err)
	}
	if w.Classical != nil {
		tag, ok := algorithmByName[w.Classical.Algorithm]
		if !ok {
			return status.Newf(status.InvalidEncoding, "unknown classical algorithm %q", w.Classical.Algorithm)
		}
		s.Classical = &ClassicalHalf{Algorithm: tag, SigB64: w.Classical.SigB64}
	}
	if w.Pqc != nil {
		tag, ok := algorithmByName[w.Pqc.Algorithm]
		if !ok {
			return status.Newf(status.InvalidEncoding, "unknown pqc algorithm %q", w.Pqc.Algorithm)
		}
		s.Pqc = &PqcHalf{Algorithm: tag, SigB64: w.Pqc.SigB64, WitnessPubB64: w.Pqc.WitnessPubB64}
	}
	return nil
}

// IsHybridFormat reports whether data looks like a hybrid signature
// container rather than a plain base64-encoded single signature: a
// hybrid container always starts (after whitespace) with '{'.
func IsHybridFormat(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// IsValid checks the structural validity rules of §4.5: at least one
// half present; a present classical half has a non-empty signature; a
// present PQC half has a non-empty signature and witness key. The
// Algorithm tags are not checked here.
func (s Signature) IsValid() bool {
	if s.Classical == nil && s.Pqc == nil {
		return false
	}
	if s.Classical != nil && s.Classical.SigB64 == "" {
		return false
	}
	if s.Pqc != nil && (s.Pqc.SigB64 == "" || s.Pqc.WitnessPubB64 == "") {
		return false
	}
	return true
}

func decodeB64(field, s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, status.Newf(status.InvalidEncoding, "%s is not valid base64: %v", field, err)
	}
	return b, nil
}

// verifyClassical dispatches to the concrete classical provider.
func verifyClassical(h *ClassicalHalf, msg []byte, pub cryptotypes.PublicBytes) status.Code {
	sigBytes, err := decodeB64("classical.sigB64", h.SigB64)
	if err != nil {
		return status.InvalidEncoding
	}
	sig := cryptotypes.Signature{Tag: h.Algorithm, Bytes: sigBytes}
	switch h.Algorithm {
	case cryptotypes.Ed25519:
		return ed25519.Verify(msg, sig, pub)
	case cryptotypes.NISTP256:
		return nistp256.Verify(msg, sig, pub)
	case cryptotypes.RSA4096:
		return rsa4096.Verify(msg, sig, pub)
	default:
		return status.Unsupported
	}
}

// verifyPqc dispatches to the concrete PQC provider. The witness public
// key in h is used as the verification key directly: the caller is
// responsible for having checked that it matches the wallet address
// binding via wallet.VerifyWitnessBinding before calling this.
func verifyPqc(h *PqcHalf, msg []byte) status.Code {
	sigBytes, err := decodeB64("pqc.sigB64", h.SigB64)
	if err != nil {
		return status.InvalidEncoding
	}
	witnessPub, err := decodeB64("pqc.witnessPubB64", h.WitnessPubB64)
	if err != nil {
		return status.InvalidEncoding
	}
	sig := cryptotypes.Signature{Tag: h.Algorithm, Bytes: sigBytes}
	switch h.Algorithm {
	case cryptotypes.MLDSA65:
		return mldsa.Verify(mldsa.MLDSA65, msg, sig, witnessPub)
	case cryptotypes.SLHDSA128s:
		return slhdsa.Verify(slhdsa.SHA2_128s, msg, sig, witnessPub)
	case cryptotypes.SLHDSA192s:
		return slhdsa.Verify(slhdsa.SHA2_192s, msg, sig, witnessPub)
	default:
		return status.Unsupported
	}
}

// Verify checks s over msg against the classical public key classicalPub
// according to mode. The PQC half, if present, is verified against its
// own embedded witness public key (the caller should already have
// checked that key against the wallet address it claims to represent).
func Verify(s Signature, msg []byte, classicalPub cryptotypes.PublicBytes, mode Mode) status.Code {
	if !s.IsValid() {
		return status.InvalidSignature
	}

	var classicalResult, pqcResult status.Code
	haveClassical := s.Classical != nil
	havePqc := s.Pqc != nil

	if haveClassical {
		classicalResult = verifyClassical(s.Classical, msg, classicalPub)
	}
	if havePqc {
		pqcResult = verifyPqc(s.Pqc, msg)
	}

	switch mode {
	case Strict:
		if !haveClassical || !havePqc {
			return status.InvalidSignature
		}
		if classicalResult != status.Success || pqcResult != status.Success {
			return status.InvalidSignature
		}
		return status.Success
	case Permissive:
		if haveClassical && classicalResult != status.Success {
			return status.InvalidSignature
		}
		if havePqc && pqcResult != status.Success {
			return status.InvalidSignature
		}
		if (haveClassical && classicalResult == status.Success) || (havePqc && pqcResult == status.Success) {
			return status.Success
		}
		return status.InvalidSignature
	default:
		return status.InvalidParameter
	}
}

// WitnessCommitmentHash computes SHA-256(networkTag ‖ witnessPub), the
// value a ws2 wallet address's payload hash must equal (§4.5, §4.9 of
// the wallet binding rule).
func WitnessCommitmentHash(networkTag byte, witnessPub []byte) [32]byte {
	h := sha256.New()
	h.Write([]byte{networkTag})
	h.Write(witnessPub)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
