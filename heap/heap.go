// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/wjlewis/little-scheme/block"
	"github.com/wjlewis/little-scheme/mem"
	"github.com/wjlewis/little-scheme/object"
)

// ErrNilRootFunc is returned by New when no root oracle is supplied.
var ErrNilRootFunc = errors.New("heap: root function must not be nil")

// RootFunc returns the currently live payload addresses. It is invoked
// synchronously, once, at the start of every mark phase, and is trusted
// entirely: the heap does not itself track roots. RootFunc must be pure
// with respect to the heap — it must not call Alloc, ReadByte, WriteByte,
// or ReadObject on the heap that invokes it.
type RootFunc func() []int

// A Heap owns a single contiguous byte buffer, threaded into a chain of
// free and allocated blocks, plus the root oracle the collector consults.
// It is not safe for concurrent use: exactly one goroutine may call its
// methods at a time, and every Alloc observes the effects of every prior
// Alloc or collection synchronously, by construction.
type Heap struct {
	buf   []byte
	roots RootFunc
	log   zerolog.Logger
}

var _ mem.Sink = (*Heap)(nil)

// Option configures a Heap at construction time.
type Option func(*Heap)

// WithLogger attaches a structured logger. Heap operations emit debug-level
// events at construction and at each collection cycle; logging never
// affects control flow or return values. The default is zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(h *Heap) { h.log = log }
}

// New constructs a Heap of size total bytes, installing a single free block
// covering the whole buffer (minus its own header), and returns it. roots
// must not be nil.
func New(size int, roots RootFunc, opts ...Option) (*Heap, error) {
	if roots == nil {
		return nil, ErrNilRootFunc
	}
	if size < block.HeaderSize {
		return nil, &mem.ErrOutOfMemory{Requested: block.HeaderSize, HeapSize: size}
	}

	h := &Heap{
		buf:   make([]byte, size),
		roots: roots,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	initial := block.Header{Next: 0, Size: size - block.HeaderSize, Allocd: false}
	if err := initial.WriteTo(h, 0); err != nil {
		return nil, err
	}

	h.log.Debug().Int("size", size).Int("payload", initial.Size).Msg("heap initialized")
	return h, nil
}

// Size implements mem.Sink.
func (h *Heap) Size() int { return len(h.buf) }

// ReadByte implements mem.Sink.
func (h *Heap) ReadByte(addr int) (byte, error) {
	if addr < 0 || addr >= len(h.buf) {
		return 0, &mem.ErrAddressOutOfRange{Addr: addr, Size: len(h.buf)}
	}
	return h.buf[addr], nil
}

// WriteByte implements mem.Sink.
func (h *Heap) WriteByte(addr int, b byte) error {
	if addr < 0 || addr >= len(h.buf) {
		return &mem.ErrAddressOutOfRange{Addr: addr, Size: len(h.buf)}
	}
	h.buf[addr] = b
	return nil
}

// ReadObject decodes the tagged value at payloadAddr.
func (h *Heap) ReadObject(payloadAddr int) (object.Value, error) {
	return object.Decode(h, payloadAddr)
}

// Close is a no-op lifecycle hook: the heap is in-memory only and has
// nothing to flush or release. It exists so callers that otherwise manage
// resources symmetrically (open/close, alloc/free) can treat a Heap like
// any other owned resource.
func (h *Heap) Close() error { return nil }

// Alloc implements mem.Sink. It reserves block.HeaderSize-aware space for
// obj.Size() bytes, serializes obj into it, and returns the payload
// address. Allocation failure triggers exactly one collection attempt
// before surfacing ErrOutOfMemory.
func (h *Heap) Alloc(obj mem.Encodable) (int, error) {
	addr, err := h.allocBytes(obj.Size(), true)
	if err != nil {
		return 0, err
	}
	if err := obj.EncodeTo(h, addr); err != nil {
		return 0, err
	}
	return addr, nil
}

// allocBytes walks the chain from address 0 looking for the first free
// block large enough for n bytes. On reaching the end of the chain with no
// candidate found, it triggers a collection and retries exactly once
// before failing if attemptGC is true; otherwise it fails straight away.
func (h *Heap) allocBytes(n int, attemptGC bool) (int, error) {
	headerAddr := 0
	for {
		hdr, err := block.ReadHeader(h, headerAddr)
		if err != nil {
			return 0, err
		}

		if !hdr.Allocd && hdr.Size >= n {
			return h.claim(headerAddr, hdr, n)
		}

		if hdr.Next == 0 {
			if attemptGC {
				if err := h.collect(); err != nil {
					return 0, err
				}
				return h.allocBytes(n, false)
			}
			return 0, &mem.ErrOutOfMemory{Requested: n, HeapSize: len(h.buf)}
		}

		headerAddr = hdr.Next
	}
}

// claim marks the block at headerAddr allocated, splitting off a residual
// free block when there is room for both the requested n bytes and a new
// header; otherwise the whole block (including any slack beyond n) is
// handed out unsplit.
func (h *Heap) claim(headerAddr int, hdr block.Header, n int) (int, error) {
	if hdr.Size >= n+block.HeaderSize {
		residueAddr := headerAddr + block.HeaderSize + n
		residue := block.Header{
			Next:   hdr.Next,
			Size:   hdr.Size - n - block.HeaderSize,
			Allocd: false,
		}

		hdr.Size = n
		hdr.Next = residueAddr
		hdr.Allocd = true

		if err := residue.WriteTo(h, residueAddr); err != nil {
			return 0, err
		}
	} else {
		hdr.Allocd = true
	}

	if err := hdr.WriteTo(h, headerAddr); err != nil {
		return 0, err
	}
	return block.PayloadAddr(headerAddr), nil
}
