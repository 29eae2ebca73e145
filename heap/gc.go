// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/wjlewis/little-scheme/block"

// collect runs one full mark-and-sweep cycle. The two phases are
// sequential and never interleaved with mutator activity.
func (h *Heap) collect() error {
	h.log.Debug().Msg("gc: starting collection")

	marked, err := h.mark()
	if err != nil {
		return err
	}

	freed, err := h.sweep()
	if err != nil {
		return err
	}

	h.log.Debug().
		Int("marked_blocks", marked).
		Int("bytes_freed", freed).
		Msg("gc: collection complete")
	return nil
}

// mark seeds a work-list from the root oracle and walks outward, setting
// the marked bit on every reachable block's header exactly once. It
// returns the number of blocks newly marked.
func (h *Heap) mark() (int, error) {
	worklist := append([]int(nil), h.roots()...)
	marked := 0

	for len(worklist) > 0 {
		addr := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		headerAddr := addr - block.HeaderSize
		hdr, err := block.ReadHeader(h, headerAddr)
		if err != nil {
			return marked, err
		}

		if hdr.Marked {
			continue
		}

		hdr.Marked = true
		if err := hdr.WriteTo(h, headerAddr); err != nil {
			return marked, err
		}
		marked++

		kids, err := children(h, addr)
		if err != nil {
			return marked, err
		}
		worklist = append(worklist, kids...)
	}

	return marked, nil
}

// sweep walks the chain from address 0, freeing every unmarked block and
// coalescing runs of adjacent free blocks into one, then clears every
// marked bit. It returns the number of payload bytes reclaimed (blocks
// that were allocated before this sweep and are free after it).
//
// The coalesced block's size is grown to cover every absorbed neighbor,
// including each neighbor's own header — the surviving block's next
// pointer then skips straight past all of them. The inner coalescing loop
// stops as soon as it reaches the sentinel (next == 0), never dereferences
// through it.
func (h *Heap) sweep() (int, error) {
	freed := 0
	headerAddr := 0

	for {
		hdr, err := block.ReadHeader(h, headerAddr)
		if err != nil {
			return freed, err
		}

		if !hdr.Marked {
			if hdr.Allocd {
				freed += hdr.Size
			}
			hdr.Allocd = false

			next := hdr.Next
			for next != 0 {
				neighbor, err := block.ReadHeader(h, next)
				if err != nil {
					return freed, err
				}
				if neighbor.Marked {
					break
				}

				if neighbor.Allocd {
					freed += neighbor.Size
				}
				hdr.Size += block.HeaderSize + neighbor.Size
				next = neighbor.Next
			}
			hdr.Next = next
		}

		hdr.Marked = false
		if err := hdr.WriteTo(h, headerAddr); err != nil {
			return freed, err
		}

		if hdr.Next == 0 {
			return freed, nil
		}
		headerAddr = hdr.Next
	}
}
