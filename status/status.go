// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package status defines the uniform result taxonomy shared by every
// provider in the crypto core. Primitives never surface implementation
// specific errors to callers; they map them into a Code here.
package status

import (
	"errors"
	"fmt"
)

// Code is a non-overlapping status tag returned by every core operation.
type Code int

const (
	// Success indicates the operation completed and the value is present.
	Success Code = iota
	// InvalidParameter indicates caller-supplied input violated a precondition.
	InvalidParameter
	// InvalidKey indicates key material was malformed or the wrong length for its tag.
	InvalidKey
	// InvalidSignature indicates a cryptographic check returned false.
	InvalidSignature
	// KeyGenFailed indicates a CSPRNG failure or internal keygen invariant violation.
	KeyGenFailed
	// SigningFailed indicates the underlying primitive refused to sign.
	SigningFailed
	// EncryptionFailed indicates AEAD or KEM envelope sealing failed.
	EncryptionFailed
	// DecryptionFailed indicates AEAD or KEM envelope opening failed.
	DecryptionFailed
	// PolicyViolation indicates the requested algorithm is forbidden by the active policy.
	PolicyViolation
	// InvalidEncoding indicates an address or signature container failed to parse.
	InvalidEncoding
	// Unsupported indicates the algorithm tag is not known to this core.
	Unsupported
)

var names = map[Code]string{
	Success:           "Success",
	InvalidParameter:  "InvalidParameter",
	InvalidKey:        "InvalidKey",
	InvalidSignature:  "InvalidSignature",
	KeyGenFailed:      "KeyGenFailed",
	SigningFailed:     "SigningFailed",
	EncryptionFailed:  "EncryptionFailed",
	DecryptionFailed:  "DecryptionFailed",
	PolicyViolation:   "PolicyViolation",
	InvalidEncoding:   "InvalidEncoding",
	Unsupported:       "Unsupported",
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return "Unknown"
}

// Error is the uniform error shape returned by the core. It never embeds
// secret material; Detail is a human-readable, secret-free description.
type Error struct {
	Code   Code
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// New constructs a status error with the given code and detail.
func New(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Newf constructs a status error with a formatted detail.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Is allows errors.Is(err, status.New(code, "")) to match on Code alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the Code from err if it is (or wraps) a *Error, defaulting
// to Unsupported for errors the core did not itself produce.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return Unsupported
}
