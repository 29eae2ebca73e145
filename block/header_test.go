// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjlewis/little-scheme/mem"
)

func TestHeaderWriteReadRoundTrip(t *testing.T) {
	buf := mem.NewBuffer(128)

	h := Header{Next: 2451423, Size: 7813423, Allocd: true, Marked: false}
	const addr = 34

	require.NoError(t, h.WriteTo(buf, addr))

	got, err := ReadHeader(buf, addr)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestReadHeaderZeroedIsZeroValue(t *testing.T) {
	buf := mem.NewBuffer(64)

	got, err := ReadHeader(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, Header{}, got)
}

func TestPayloadAddr(t *testing.T) {
	assert.Equal(t, HeaderSize, PayloadAddr(0))
	assert.Equal(t, HeaderSize+40, PayloadAddr(40))
}
