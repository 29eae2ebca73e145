// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/wjlewis/little-scheme/block"

// Stats records a snapshot of the chain's occupancy. It can be requested
// at any time; unlike the original's allocator this never mutates state.
type Stats struct {
	TotalBytes int // sum of headerSize+size over every block
	AllocBytes int // payload bytes currently handed out
	FreeBytes  int // payload bytes currently free
	Blocks     int // total number of blocks in the chain
	FreeBlocks int // number of free blocks in the chain
}

// Stats walks the chain and reports its current occupancy.
func (h *Heap) Stats() (Stats, error) {
	var s Stats
	headerAddr := 0

	for {
		hdr, err := block.ReadHeader(h, headerAddr)
		if err != nil {
			return Stats{}, err
		}

		s.TotalBytes += block.HeaderSize + hdr.Size
		s.Blocks++
		if hdr.Allocd {
			s.AllocBytes += hdr.Size
		} else {
			s.FreeBytes += hdr.Size
			s.FreeBlocks++
		}

		if hdr.Next == 0 {
			return s, nil
		}
		headerAddr = hdr.Next
	}
}
