// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

// WordSize is the width, in bytes, of a machine word as encoded by this
// package. It is fixed for the lifetime of a heap; serialized layouts from
// a build with a different WordSize are not interchangeable, by design.
const WordSize = 8

// EncodeWord writes w as WordSize little-endian bytes starting at addr.
func EncodeWord(sink Sink, addr int, w int) error {
	for i := 0; i < WordSize; i++ {
		b := byte((w >> uint(8*i)) & 0xff)
		if err := sink.WriteByte(addr+i, b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeWord reads WordSize consecutive little-endian bytes starting at
// addr and composes them back into a word.
func DecodeWord(sink Sink, addr int) (int, error) {
	var out int
	for i := 0; i < WordSize; i++ {
		b, err := sink.ReadByte(addr + i)
		if err != nil {
			return 0, err
		}
		out |= int(b) << uint(8*i)
	}
	return out, nil
}
