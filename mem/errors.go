// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import "fmt"

// ErrAddressOutOfRange is returned by a Sink when asked to read or write an
// address outside [0, Size).
type ErrAddressOutOfRange struct {
	Addr int
	Size int
}

func (e *ErrAddressOutOfRange) Error() string {
	return fmt.Sprintf("mem: address %d out of range [0, %d)", e.Addr, e.Size)
}

// ErrOutOfMemory is returned by Sink.Alloc when no block large enough for
// the request could be found or made, even after a collection attempt.
type ErrOutOfMemory struct {
	Requested int
	HeapSize  int
}

func (e *ErrOutOfMemory) Error() string {
	return fmt.Sprintf("mem: out of memory allocating %d bytes in a %d byte heap", e.Requested, e.HeapSize)
}

// ErrUnknownTag is returned by a decoder when a tag byte does not name any
// recognized object variant.
type ErrUnknownTag struct {
	Addr int
	Tag  byte
}

func (e *ErrUnknownTag) Error() string {
	return fmt.Sprintf("mem: unknown tag byte %#02x at address %d", e.Tag, e.Addr)
}

// ErrInvalidTag is returned when a Box tag is observed at the top-level
// entry point of a decode, where only the public value universe (which
// excludes Box) is expected.
type ErrInvalidTag struct {
	Addr int
}

func (e *ErrInvalidTag) Error() string {
	return fmt.Sprintf("mem: unexpected box tag at top-level address %d", e.Addr)
}
