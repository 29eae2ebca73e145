// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import "github.com/wjlewis/little-scheme/mem"

const (
	allocdBit = 0x80
	markedBit = 0x40
)

// HeaderSize is the serialized size, in bytes, of a Header: two machine
// words (next, size) plus one flag byte.
const HeaderSize = 2*mem.WordSize + 1

// A Header is the metadata prefix of a block: its position in the chain
// (Next), the size of its payload in bytes (Size), whether it is currently
// handed out to a mutator (Allocd), and a scratch bit used during the GC
// mark phase (Marked).
//
// Next is the address of the next block's header, or 0 for the last block
// in the chain. Marked must be false outside of a mark phase.
type Header struct {
	Next   int
	Size   int
	Allocd bool
	Marked bool
}

// ReadHeader decodes the header at addr. Decoding a zeroed region yields
// the zero Header ({0, 0, false, false}) — the "nothing here" state, which
// a correctly maintained chain never exposes except transiently during
// construction.
func ReadHeader(sink mem.Sink, addr int) (Header, error) {
	next, err := mem.DecodeWord(sink, addr)
	if err != nil {
		return Header{}, err
	}

	size, err := mem.DecodeWord(sink, addr+mem.WordSize)
	if err != nil {
		return Header{}, err
	}

	flags, err := sink.ReadByte(addr + 2*mem.WordSize)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Next:   next,
		Size:   size,
		Allocd: flags&allocdBit != 0,
		Marked: flags&markedBit != 0,
	}, nil
}

// WriteTo encodes h at addr.
func (h Header) WriteTo(sink mem.Sink, addr int) error {
	if err := mem.EncodeWord(sink, addr, h.Next); err != nil {
		return err
	}

	if err := mem.EncodeWord(sink, addr+mem.WordSize, h.Size); err != nil {
		return err
	}

	var flags byte
	if h.Allocd {
		flags |= allocdBit
	}
	if h.Marked {
		flags |= markedBit
	}

	return sink.WriteByte(addr+2*mem.WordSize, flags)
}

// PayloadAddr returns the address of the first payload byte of the block
// whose header starts at headerAddr.
func PayloadAddr(headerAddr int) int { return headerAddr + HeaderSize }
