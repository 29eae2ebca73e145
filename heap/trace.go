// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/wjlewis/little-scheme/mem"
	"github.com/wjlewis/little-scheme/object"
)

// children returns the payload addresses referenced directly by the
// object at addr. It never recurses — the mark loop owns traversal — and
// it never fully decodes the object: it reads only the tag bytes at the
// fixed offsets a Pair's child slots occupy, which is the property that
// makes tracing cheap and correct independent of how deep the structure
// reachable from addr actually is.
func children(sink mem.Sink, addr int) ([]int, error) {
	tagByte, err := sink.ReadByte(addr)
	if err != nil {
		return nil, err
	}
	if object.Tag(tagByte) != object.TagPair {
		return nil, nil
	}

	var out []int
	for _, slot := range [2]int{addr + 1, addr + 1 + object.PrimitiveSize} {
		slotTag, err := sink.ReadByte(slot)
		if err != nil {
			return nil, err
		}
		if object.Tag(slotTag) != object.TagBox {
			continue
		}

		ptr, err := mem.DecodeWord(sink, slot+1)
		if err != nil {
			return nil, err
		}
		out = append(out, ptr)
	}
	return out, nil
}
