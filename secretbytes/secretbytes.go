// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package secretbytes provides an owning byte buffer for secret key
// material. Wipe overwrites it with zeros, and WithScope calls Wipe on
// every exit path including panics. There is no finalizer: a buffer that
// is never wiped is not zeroized when it is garbage-collected.
package secretbytes

import (
	"crypto/rand"
	"crypto/subtle"
	"sync"

	"github.com/luxfi/sorcha-crypto-core/status"
)

// Bytes is an exclusively-owned secret buffer. The zero value is not
// usable; construct with New or Generate. Bytes is not safe to copy by
// value — always pass *Bytes.
type Bytes struct {
	mu      sync.Mutex
	buf     []byte
	wiped   bool
}

// New takes ownership of data and returns a Bytes wrapping it. The caller
// must not retain or mutate data after this call; New copies defensively
// to enforce exclusive ownership at the API boundary.
func New(data []byte) *Bytes {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Bytes{buf: buf}
}

// Generate returns n freshly sampled secret bytes from the system CSPRNG.
func Generate(n int) (*Bytes, error) {
	if n <= 0 {
		return nil, status.New(status.InvalidParameter, "length must be positive")
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, status.Newf(status.KeyGenFailed, "csprng read failed: %v", err)
	}
	return &Bytes{buf: buf}, nil
}

// Len returns the buffer length. Safe to call after Wipe (returns 0).
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wiped {
		return 0
	}
	return len(b.buf)
}

// Expose returns the underlying bytes for the duration of a single
// operation. The returned slice aliases internal storage and must not be
// retained past the call; copy it if the caller needs a longer lifetime.
func (b *Bytes) Expose() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wiped {
		return nil
	}
	return b.buf
}

// Equal performs a constant-time comparison of the secret content.
func (b *Bytes) Equal(other *Bytes) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()
	if len(b.buf) != len(other.buf) {
		return false
	}
	return subtle.ConstantTimeCompare(b.buf, other.buf) == 1
}

// Wipe overwrites the buffer with zero bytes. Safe to call multiple times
// and safe to call from a deferred guard on every exit path.
func (b *Bytes) Wipe() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wiped {
		return
	}
	for i := range b.buf {
		b.buf[i] = 0
	}
	b.wiped = true
}

// Wiped reports whether Wipe has run. Exposed for tests that need to
// observe zeroization (property 15 in spec.md §8).
func (b *Bytes) Wiped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wiped
}

// WithScope acquires b, runs fn with the exposed bytes, and zeroizes b on
// every exit path (including a panic unwinding through fn). This is the
// scoped-ownership pattern spec.md §5 requires for every secret buffer.
func WithScope(b *Bytes, fn func(secret []byte) error) error {
	defer b.Wipe()
	return fn(b.Expose())
}
