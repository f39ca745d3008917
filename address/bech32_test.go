// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBech32mRoundTrip(t *testing.T) {
	for _, hrp := range []string{"ws1", "ws2"} {
		t.Run(hrp, func(t *testing.T) {
			data := make([]byte, 40)
			for i := range data {
				data[i] = byte(i)
			}
			encoded, err := Encode(hrp, data, Bech32m)
			require.NoError(t, err)

			gotHRP, gotData, err := Decode(encoded, Bech32m)
			require.NoError(t, err)
			require.Equal(t, hrp, gotHRP)
			require.Equal(t, data, gotData)
		})
	}
}

func TestBech32DoesNotDecodeAsBech32m(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	encoded, err := Encode("ws1", data, Bech32)
	require.NoError(t, err)

	_, _, err = Decode(encoded, Bech32m)
	require.Error(t, err)

	// But it does decode correctly as Bech32.
	hrp, gotData, err := Decode(encoded, Bech32)
	require.NoError(t, err)
	require.Equal(t, "ws1", hrp)
	require.Equal(t, data, gotData)
}

func TestBech32mDoesNotDecodeAsBech32(t *testing.T) {
	data := []byte{5, 6, 7}
	encoded, err := Encode("ws2", data, Bech32m)
	require.NoError(t, err)

	_, _, err = Decode(encoded, Bech32)
	require.Error(t, err)
}

func TestDecodeRejectsStructuralErrors(t *testing.T) {
	valid, err := Encode("ws1", []byte{1, 2, 3}, Bech32m)
	require.NoError(t, err)

	t.Run("mixed case", func(t *testing.T) {
		mixed := valid[:len(valid)-1] + "A"
		_, _, err := Decode(mixed, Bech32m)
		require.Error(t, err)
	})

	t.Run("no separator", func(t *testing.T) {
		_, _, err := Decode("wsxxxxxxxxxx", Bech32m)
		require.Error(t, err)
	})

	t.Run("truncated data", func(t *testing.T) {
		_, _, err := Decode("ws1qqqqq", Bech32m)
		require.Error(t, err)
	})

	t.Run("invalid character", func(t *testing.T) {
		tampered := []byte(valid)
		tampered[len(tampered)-1] = 'b' // 'b' is not in the charset
		_, _, err := Decode(string(tampered), Bech32m)
		require.Error(t, err)
	})

	t.Run("bad checksum", func(t *testing.T) {
		tampered := []byte(valid)
		last := tampered[len(tampered)-1]
		var replacement byte = 'q'
		if last == 'q' {
			replacement = 'p'
		}
		tampered[len(tampered)-1] = replacement
		_, _, err := Decode(string(tampered), Bech32m)
		require.Error(t, err)
	})
}
