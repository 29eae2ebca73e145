// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S7: writing a known little-endian pattern at address 2 of a zeroed
// buffer round-trips, and lands on the expected bytes.
func TestWordRoundTripKnownPattern(t *testing.T) {
	buf := NewBuffer(12)
	const want = 0x77_66_55_44_33_22_11_00

	require.NoError(t, EncodeWord(buf, 2, want))

	got, err := DecodeWord(buf, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wantBytes := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	for i, wb := range wantBytes {
		b, err := buf.ReadByte(2 + i)
		require.NoError(t, err)
		assert.Equalf(t, wb, b, "byte %d", i)
	}
}

func TestWordRoundTripNegative(t *testing.T) {
	buf := NewBuffer(32)
	want := -12345

	require.NoError(t, EncodeWord(buf, 4, want))
	got, err := DecodeWord(buf, 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWordOutOfRange(t *testing.T) {
	buf := NewBuffer(4)
	err := EncodeWord(buf, 0, 1)
	require.Error(t, err)
	var rangeErr *ErrAddressOutOfRange
	assert.ErrorAs(t, err, &rangeErr)
}
