// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "github.com/wjlewis/little-scheme/mem"

// Tag identifies which variant of the dynamic value universe follows a
// tag byte in memory.
type Tag byte

// Recognized tags. Box exists only in memory, as the payload of a Pair's
// indirected child slot; it is never the top-level tag of a value handed
// back to a mutator.
const (
	TagBox Tag = iota
	TagNil
	TagBool
	TagNumber
	TagSymbol
	TagPair
)

// PrimitiveSize is the serialized size, in bytes, of any non-Pair tagged
// value (and of a Pair's inline child slot): one tag byte plus one machine
// word.
const PrimitiveSize = 1 + mem.WordSize

// PairSize is the serialized size, in bytes, of a Pair: one tag byte plus
// two fixed-size child slots.
const PairSize = 1 + 2*PrimitiveSize
