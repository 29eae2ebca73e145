// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object implements the tagged serialization scheme for the
// dynamic value universe: nil, booleans, integers, symbols, and cons
// pairs, each prefixed by a one-byte tag. A Pair's children are either
// stored inline (primitives) or indirected through a Box pointer to a
// separately allocated block (nested pairs) — Box never appears in the
// public Value universe, only inside a heap's memory representation.
package object
