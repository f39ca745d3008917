// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cryptomodule

import (
	"context"
	"sync"

	"github.com/luxfi/log"

	"github.com/luxfi/sorcha-crypto-core/policy"
	"github.com/luxfi/sorcha-crypto-core/status"
)

// Repository persists/retrieves encrypted private key material (§6). The
// core never sees an unwrapped key outside of a signing/decryption call;
// whatever sits behind Repository is always ciphertext.
type Repository interface {
	Store(ctx context.Context, keyID string, ciphertext []byte) error
	Load(ctx context.Context, keyID string) ([]byte, error)
	Delete(ctx context.Context, keyID string) error
}

// EncryptionProvider wraps/unwraps secret material with a tenant KEK (§6).
type EncryptionProvider interface {
	Wrap(ctx context.Context, tenantID string, plaintext []byte) ([]byte, error)
	Unwrap(ctx context.Context, tenantID string, ciphertext []byte) ([]byte, error)
}

// PolicyStore supplies the active policy at process start (§6).
type PolicyStore interface {
	ActivePolicy(ctx context.Context) (policy.CryptoPolicy, error)
}

// MemoryRepository is an in-memory Repository reference implementation for
// tests and single-process deployments that don't need durable storage.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
	logger  log.Logger
}

// NewMemoryRepository constructs an empty MemoryRepository.
func NewMemoryRepository(logger log.Logger) *MemoryRepository {
	return &MemoryRepository{entries: make(map[string][]byte), logger: logger}
}

// Store saves ciphertext under keyID, overwriting any prior value.
func (r *MemoryRepository) Store(_ context.Context, keyID string, ciphertext []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[keyID] = append([]byte(nil), ciphertext...)
	if r.logger != nil {
		r.logger.Debug("stored key material", "keyID", keyID)
	}
	return nil
}

// Load returns the ciphertext stored under keyID.
func (r *MemoryRepository) Load(_ context.Context, keyID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ciphertext, ok := r.entries[keyID]
	if !ok {
		return nil, status.Newf(status.InvalidParameter, "repository: no entry for key %q", keyID)
	}
	return append([]byte(nil), ciphertext...), nil
}

// Delete removes the entry stored under keyID. Deleting a missing key is
// not an error; callers use this to make cleanup idempotent.
func (r *MemoryRepository) Delete(_ context.Context, keyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, keyID)
	if r.logger != nil {
		r.logger.Debug("deleted key material", "keyID", keyID)
	}
	return nil
}

// MemoryEncryptionProvider is an in-memory EncryptionProvider reference
// implementation. It derives a per-tenant XOR mask from the length of the
// tenant ID rather than performing real envelope encryption; it exists only
// to exercise the Wrap/Unwrap call path in tests, never for production use.
type MemoryEncryptionProvider struct {
	mu     sync.Mutex
	kek    map[string][]byte
	logger log.Logger
}

// NewMemoryEncryptionProvider constructs an empty MemoryEncryptionProvider.
func NewMemoryEncryptionProvider(logger log.Logger) *MemoryEncryptionProvider {
	return &MemoryEncryptionProvider{kek: make(map[string][]byte), logger: logger}
}

func (p *MemoryEncryptionProvider) tenantKey(tenantID string) []byte {
	if k, ok := p.kek[tenantID]; ok {
		return k
	}
	k := make([]byte, 32)
	for i := range k {
		k[i] = byte(len(tenantID) + i)
	}
	p.kek[tenantID] = k
	return k
}

func xorWith(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// Wrap XORs plaintext with the tenant's derived key. Unwrap is its own
// inverse since XOR is self-inverting.
func (p *MemoryEncryptionProvider) Wrap(_ context.Context, tenantID string, plaintext []byte) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.logger != nil {
		p.logger.Debug("wrapping secret", "tenantID", tenantID)
	}
	return xorWith(plaintext, p.tenantKey(tenantID)), nil
}

// Unwrap reverses Wrap.
func (p *MemoryEncryptionProvider) Unwrap(_ context.Context, tenantID string, ciphertext []byte) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.logger != nil {
		p.logger.Debug("unwrapping secret", "tenantID", tenantID)
	}
	return xorWith(ciphertext, p.tenantKey(tenantID)), nil
}

// StaticPolicyStore adapts a single policy.CryptoPolicy to the
// context-qualified PolicyStore interface.
type StaticPolicyStore struct {
	active policy.CryptoPolicy
}

// NewStaticPolicyStore wraps an already-validated policy.
func NewStaticPolicyStore(p policy.CryptoPolicy) *StaticPolicyStore {
	return &StaticPolicyStore{active: p}
}

// ActivePolicy implements PolicyStore.
func (s *StaticPolicyStore) ActivePolicy(_ context.Context) (policy.CryptoPolicy, error) {
	return s.active, nil
}
