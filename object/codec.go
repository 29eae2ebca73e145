// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "github.com/wjlewis/little-scheme/mem"

// Size implements mem.Encodable. It returns PrimitiveSize for every
// non-Pair variant, and PairSize for a Pair — independent of whether the
// Pair's children end up inline or indirected, since every child slot has
// the same fixed width.
func (v Value) Size() int {
	if v.Kind == TagPair {
		return PairSize
	}
	return PrimitiveSize
}

// EncodeTo implements mem.Encodable. A primitive writes its tag followed
// by one word (a zero word for Nil). A Pair writes its tag followed by
// its two child slots, each encoded via encodeChild.
func (v Value) EncodeTo(sink mem.Sink, addr int) error {
	switch v.Kind {
	case TagNil:
		if err := sink.WriteByte(addr, byte(TagNil)); err != nil {
			return err
		}
		return mem.EncodeWord(sink, addr+1, 0)
	case TagBool:
		if err := sink.WriteByte(addr, byte(TagBool)); err != nil {
			return err
		}
		val := 0
		if v.boolVal {
			val = 1
		}
		return mem.EncodeWord(sink, addr+1, val)
	case TagNumber:
		if err := sink.WriteByte(addr, byte(TagNumber)); err != nil {
			return err
		}
		return mem.EncodeWord(sink, addr+1, v.numberVal)
	case TagSymbol:
		if err := sink.WriteByte(addr, byte(TagSymbol)); err != nil {
			return err
		}
		return mem.EncodeWord(sink, addr+1, v.symbolVal)
	case TagPair:
		if err := sink.WriteByte(addr, byte(TagPair)); err != nil {
			return err
		}
		if err := encodeChild(*v.car, sink, addr+1); err != nil {
			return err
		}
		return encodeChild(*v.cdr, sink, addr+1+PrimitiveSize)
	default:
		return &mem.ErrUnknownTag{Addr: addr, Tag: byte(v.Kind)}
	}
}

// encodeChild writes child into a Pair's fixed-width inline slot at
// slotAddr. A primitive child is written in place. A Pair child cannot be
// inlined (it would make slot size unbounded), so instead the encoder
// allocates a new block for it via sink.Alloc, writes a Box tag into the
// slot, and writes the returned address as the Box's payload.
func encodeChild(child Value, sink mem.Sink, slotAddr int) error {
	if child.Kind != TagPair {
		return child.EncodeTo(sink, slotAddr)
	}

	childAddr, err := sink.Alloc(child)
	if err != nil {
		return err
	}

	if err := sink.WriteByte(slotAddr, byte(TagBox)); err != nil {
		return err
	}
	return mem.EncodeWord(sink, slotAddr+1, childAddr)
}

// Decode reads the tagged value at addr. A Box tag observed here —
// as opposed to inside a Pair's child slot — is a programmer error: Box is
// an internal memory-representation detail, never a value in its own
// right.
func Decode(sink mem.Sink, addr int) (Value, error) {
	tagByte, err := sink.ReadByte(addr)
	if err != nil {
		return Value{}, err
	}
	tag := Tag(tagByte)

	switch tag {
	case TagBox:
		return Value{}, &mem.ErrInvalidTag{Addr: addr}
	case TagNil:
		return Nil(), nil
	case TagBool:
		w, err := mem.DecodeWord(sink, addr+1)
		if err != nil {
			return Value{}, err
		}
		return Bool(w != 0), nil
	case TagNumber:
		w, err := mem.DecodeWord(sink, addr+1)
		if err != nil {
			return Value{}, err
		}
		return Number(w), nil
	case TagSymbol:
		w, err := mem.DecodeWord(sink, addr+1)
		if err != nil {
			return Value{}, err
		}
		return Symbol(w), nil
	case TagPair:
		car, err := decodeChild(sink, addr+1)
		if err != nil {
			return Value{}, err
		}
		cdr, err := decodeChild(sink, addr+1+PrimitiveSize)
		if err != nil {
			return Value{}, err
		}
		return MakePair(car, cdr), nil
	default:
		return Value{}, &mem.ErrUnknownTag{Addr: addr, Tag: tagByte}
	}
}

// decodeChild reads a Pair's inline child slot at slotAddr. A Box tag is
// transparently dereferenced — the payload word is the address of the
// full child object, decoded recursively. Any other tag is decoded
// in-place, the same as a top-level primitive.
func decodeChild(sink mem.Sink, slotAddr int) (Value, error) {
	tagByte, err := sink.ReadByte(slotAddr)
	if err != nil {
		return Value{}, err
	}

	if Tag(tagByte) == TagBox {
		ptr, err := mem.DecodeWord(sink, slotAddr+1)
		if err != nil {
			return Value{}, err
		}
		return Decode(sink, ptr)
	}

	return Decode(sink, slotAddr)
}
