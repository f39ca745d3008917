// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package policy implements the algorithm allow/require/deprecate model
// (§4's CryptoPolicy). It reports whether a tag is allowed; the
// cryptomodule façade functions do not consult a policy themselves.
package policy

import (
	"github.com/luxfi/sorcha-crypto-core/cryptotypes"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Mode selects how strictly a hybrid signature's two halves are enforced.
type Mode int

const (
	// Permissive accepts any present half that verifies, rejecting only if
	// a present half fails.
	Permissive Mode = iota
	// Strict requires both halves present and verifying.
	Strict
)

// CryptoPolicy records which algorithms are accepted, required and
// deprecated, and which hybrid verification mode applies (§4). Callers
// check a tag with the Allows*/Enforce* methods; GenerateKeySet, Sign,
// Verify and Encrypt in cryptomodule do not apply a policy.
type CryptoPolicy struct {
	Version      int
	AcceptedSig  map[cryptotypes.AlgorithmTag]struct{}
	RequiredSig  map[cryptotypes.AlgorithmTag]struct{}
	Deprecated   map[cryptotypes.AlgorithmTag]struct{}
	AcceptedKEM  map[cryptotypes.AlgorithmTag]struct{}
	AcceptedHash map[cryptotypes.AlgorithmTag]struct{}
	Mode         Mode
}

func tagSet(tags ...cryptotypes.AlgorithmTag) map[cryptotypes.AlgorithmTag]struct{} {
	m := make(map[cryptotypes.AlgorithmTag]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return m
}

// New constructs a CryptoPolicy from explicit tag lists.
func New(version int, accepted, required, deprecated, acceptedKEM, acceptedHash []cryptotypes.AlgorithmTag, mode Mode) *CryptoPolicy {
	return &CryptoPolicy{
		Version:      version,
		AcceptedSig:  tagSet(accepted...),
		RequiredSig:  tagSet(required...),
		Deprecated:   tagSet(deprecated...),
		AcceptedKEM:  tagSet(acceptedKEM...),
		AcceptedHash: tagSet(acceptedHash...),
		Mode:         mode,
	}
}

// Validate checks the structural invariants from §4: version >= 1,
// accepted_sig ⊇ required_sig, and accepted_sig/accepted_kem/accepted_hash
// all non-empty.
func (p *CryptoPolicy) Validate() error {
	if p.Version < 1 {
		return status.Newf(status.InvalidParameter, "policy version must be >= 1, got %d", p.Version)
	}
	if len(p.AcceptedSig) == 0 {
		return status.New(status.InvalidParameter, "accepted_sig must be non-empty")
	}
	if len(p.AcceptedKEM) == 0 {
		return status.New(status.InvalidParameter, "accepted_kem must be non-empty")
	}
	if len(p.AcceptedHash) == 0 {
		return status.New(status.InvalidParameter, "accepted_hash must be non-empty")
	}
	for tag := range p.RequiredSig {
		if _, ok := p.AcceptedSig[tag]; !ok {
			return status.Newf(status.InvalidParameter, "required_sig tag %s is not in accepted_sig", tag)
		}
	}
	return nil
}

// AllowsSignature reports whether tag may be used for signing or
// verification under this policy.
func (p *CryptoPolicy) AllowsSignature(tag cryptotypes.AlgorithmTag) bool {
	_, ok := p.AcceptedSig[tag]
	return ok
}

// AllowsKEM reports whether tag may be used for key encapsulation.
func (p *CryptoPolicy) AllowsKEM(tag cryptotypes.AlgorithmTag) bool {
	_, ok := p.AcceptedKEM[tag]
	return ok
}

// AllowsHash reports whether tag may be used for hashing.
func (p *CryptoPolicy) AllowsHash(tag cryptotypes.AlgorithmTag) bool {
	_, ok := p.AcceptedHash[tag]
	return ok
}

// IsDeprecated reports whether tag is marked deprecated — still accepted,
// but callers should flag it for migration.
func (p *CryptoPolicy) IsDeprecated(tag cryptotypes.AlgorithmTag) bool {
	_, ok := p.Deprecated[tag]
	return ok
}

// IsRequired reports whether tag must be present for an operation that
// consults "required" coverage (e.g. a hybrid signature's PQC half).
func (p *CryptoPolicy) IsRequired(tag cryptotypes.AlgorithmTag) bool {
	_, ok := p.RequiredSig[tag]
	return ok
}

// EnforceSignature returns status.Success if tag is acceptable under this
// policy for signing/verification, status.PolicyViolation otherwise.
func (p *CryptoPolicy) EnforceSignature(tag cryptotypes.AlgorithmTag) status.Code {
	if !p.AllowsSignature(tag) {
		return status.PolicyViolation
	}
	return status.Success
}

// EnforceKEM returns status.Success if tag is acceptable under this policy
// for key encapsulation, status.PolicyViolation otherwise.
func (p *CryptoPolicy) EnforceKEM(tag cryptotypes.AlgorithmTag) status.Code {
	if !p.AllowsKEM(tag) {
		return status.PolicyViolation
	}
	return status.Success
}

// Store supplies the active CryptoPolicy at process start (§6
// "Collaborator interfaces"); the core consults it as a pure function.
type Store interface {
	ActivePolicy() *CryptoPolicy
}

// StaticStore is a Store backed by a single fixed policy, suitable for
// tests and single-process deployments that don't reload policy at runtime.
type StaticStore struct {
	policy *CryptoPolicy
}

// NewStaticStore wraps an already-validated policy in a Store.
func NewStaticStore(p *CryptoPolicy) *StaticStore {
	return &StaticStore{policy: p}
}

// ActivePolicy implements Store.
func (s *StaticStore) ActivePolicy() *CryptoPolicy {
	return s.policy
}
