// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := New(InvalidSignature, "tampered message")
	require.Equal(t, "InvalidSignature: tampered message", err.Error())

	bare := New(Success, "")
	require.Equal(t, "Success", bare.Error())
}

func TestCodeOfUnwrapsStatusError(t *testing.T) {
	err := Newf(InvalidKey, "expected %d bytes, got %d", 32, 16)
	require.Equal(t, InvalidKey, CodeOf(err))
	require.Equal(t, Success, CodeOf(nil))
	require.Equal(t, Unsupported, CodeOf(errors.New("some other error")))
}

func TestErrorIsMatchesOnCodeOnly(t *testing.T) {
	a := New(PolicyViolation, "algorithm deprecated")
	b := New(PolicyViolation, "different detail")
	c := New(InvalidParameter, "")

	require.True(t, errors.Is(a, b))
	require.False(t, errors.Is(a, c))
}
