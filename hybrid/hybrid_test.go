// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hybrid

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/ed25519"
	"github.com/luxfi/sorcha-crypto-core/mldsa"
	"github.com/luxfi/sorcha-crypto-core/status"
)

func buildHybrid(t *testing.T, msg []byte) (Signature, cryptotypes.PublicBytes) {
	t.Helper()
	classicalKS, err := ed25519.Generate()
	require.NoError(t, err)
	classicalSig, err := ed25519.Sign(msg, classicalKS.PrivateKey)
	require.NoError(t, err)

	pqcKS, err := mldsa.Generate(mldsa.MLDSA65)
	require.NoError(t, err)
	pqcSig, err := mldsa.Sign(mldsa.MLDSA65, msg, pqcKS.PrivateKey)
	require.NoError(t, err)

	sig := Signature{
		Classical: &ClassicalHalf{
			Algorithm: cryptotypes.Ed25519,
			SigB64:    base64.StdEncoding.EncodeToString(classicalSig.Bytes),
		},
		Pqc: &PqcHalf{
			Algorithm:     cryptotypes.MLDSA65,
			SigB64:        base64.StdEncoding.EncodeToString(pqcSig.Bytes),
			WitnessPubB64: base64.StdEncoding.EncodeToString(pqcKS.PublicKey),
		},
	}
	return sig, classicalKS.PublicKey
}

func TestStrictAcceptsWhenBothHalvesVerify(t *testing.T) {
	msg := []byte("hybrid strict message")
	sig, classicalPub := buildHybrid(t, msg)
	require.Equal(t, status.Success, Verify(sig, msg, classicalPub, Strict))
}

func TestStrictRejectsWhenOneHalfMissing(t *testing.T) {
	msg := []byte("hybrid strict missing half")
	sig, classicalPub := buildHybrid(t, msg)
	sig.Pqc = nil
	require.Equal(t, status.InvalidSignature, Verify(sig, msg, classicalPub, Strict))
}

func TestStrictRejectsWhenOneHalfFailsVerification(t *testing.T) {
	msg := []byte("hybrid strict tamper")
	sig, classicalPub := buildHybrid(t, msg)
	sig.Pqc.SigB64 = base64.StdEncoding.EncodeToString(make([]byte, 3309))
	require.Equal(t, status.InvalidSignature, Verify(sig, msg, classicalPub, Strict))
}

func TestPermissiveAcceptsSinglePresentVerifyingHalf(t *testing.T) {
	msg := []byte("hybrid permissive message")
	sig, classicalPub := buildHybrid(t, msg)
	sig.Pqc = nil
	require.Equal(t, status.Success, Verify(sig, msg, classicalPub, Permissive))
}

func TestPermissiveRejectsWhenPresentHalfFails(t *testing.T) {
	msg := []byte("hybrid permissive tamper")
	sig, classicalPub := buildHybrid(t, msg)
	sig.Classical.SigB64 = base64.StdEncoding.EncodeToString(make([]byte, 64))
	require.Equal(t, status.InvalidSignature, Verify(sig, msg, classicalPub, Permissive))
}

func TestIsValidStructuralRules(t *testing.T) {
	require.False(t, Signature{}.IsValid())
	require.False(t, (Signature{Classical: &ClassicalHalf{Algorithm: cryptotypes.Ed25519}}).IsValid())
	require.False(t, (Signature{Pqc: &PqcHalf{Algorithm: cryptotypes.MLDSA65, SigB64: "x"}}).IsValid())
	require.True(t, (Signature{Classical: &ClassicalHalf{Algorithm: cryptotypes.Ed25519, SigB64: "x"}}).IsValid())
}

func TestJSONRoundTripIsCanonicalAndLossless(t *testing.T) {
	msg := []byte("json round trip")
	sig, _ := buildHybrid(t, msg)

	data, err := json.Marshal(sig)
	require.NoError(t, err)
	require.True(t, IsHybridFormat(data))

	var decoded Signature
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, sig, decoded)
}

func TestJSONOmitsAbsentHalf(t *testing.T) {
	sig := Signature{Classical: &ClassicalHalf{Algorithm: cryptotypes.Ed25519, SigB64: "abc"}}
	data, err := json.Marshal(sig)
	require.NoError(t, err)
	require.NotContains(t, string(data), "pqc")
}

func TestIsHybridFormatDistinguishesPlainBase64(t *testing.T) {
	require.False(t, IsHybridFormat([]byte("c29tZS1iYXNlNjQtZGF0YQ==")))
	require.True(t, IsHybridFormat([]byte(`{"classical":{}}`)))
	require.True(t, IsHybridFormat([]byte("  \n{\"pqc\":{}}")))
}

func TestWitnessCommitmentHashIsDeterministic(t *testing.T) {
	pub := []byte{1, 2, 3, 4}
	h1 := WitnessCommitmentHash(0x02, pub)
	h2 := WitnessCommitmentHash(0x02, pub)
	require.Equal(t, h1, h2)
	h3 := WitnessCommitmentHash(0x03, pub)
	require.NotEqual(t, h1, h3)
}
