// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjlewis/little-scheme/mem"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	cases := []Value{
		Nil(),
		Bool(true),
		Bool(false),
		Number(7),
		Number(-42),
		Symbol(3),
	}

	for _, v := range cases {
		buf := mem.NewBuffer(64)
		require.NoError(t, v.EncodeTo(buf, 0))

		got, err := Decode(buf, 0)
		require.NoError(t, err)
		assert.Truef(t, v.Equal(got), "want %+v got %+v", v, got)
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, PrimitiveSize, Nil().Size())
	assert.Equal(t, PrimitiveSize, Bool(true).Size())
	assert.Equal(t, PrimitiveSize, Number(1).Size())
	assert.Equal(t, PrimitiveSize, Symbol(1).Size())
	assert.Equal(t, PairSize, MakePair(Nil(), Nil()).Size())
}

// S5: Pair(Number(7), Pair(Bool(true), Nil)) round-trips, with the inner
// Pair stored out-of-line via a Box slot.
func TestPairRoundTripWithNestedPair(t *testing.T) {
	buf := mem.NewBuffer(256)

	want := MakePair(Number(7), MakePair(Bool(true), Nil()))
	addr, err := buf.Alloc(want)
	require.NoError(t, err)

	got, err := Decode(buf, addr)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	// The cdr slot must hold a Box tag, since its payload is itself a
	// Pair and cannot be inlined.
	cdrSlotAddr := addr + 1 + PrimitiveSize
	tagByte, err := buf.ReadByte(cdrSlotAddr)
	require.NoError(t, err)
	assert.Equal(t, byte(TagBox), tagByte)
}

func TestDecodeTopLevelBoxIsInvalidTag(t *testing.T) {
	buf := mem.NewBuffer(32)
	require.NoError(t, buf.WriteByte(0, byte(TagBox)))

	_, err := Decode(buf, 0)
	require.Error(t, err)
	var invalid *mem.ErrInvalidTag
	assert.ErrorAs(t, err, &invalid)
}

func TestDecodeUnknownTag(t *testing.T) {
	buf := mem.NewBuffer(32)
	require.NoError(t, buf.WriteByte(0, 0xaa))

	_, err := Decode(buf, 0)
	require.Error(t, err)
	var unknown *mem.ErrUnknownTag
	assert.ErrorAs(t, err, &unknown)
}

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	assert.Panics(t, func() { Nil().BoolVal() })
	assert.Panics(t, func() { Nil().NumberVal() })
	assert.Panics(t, func() { Nil().SymbolVal() })
	assert.Panics(t, func() { Nil().Car() })
}
