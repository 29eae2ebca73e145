// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements a byte-addressable managed heap: a first-fit
// free-list allocator over a single fixed-size buffer, and a mark-and-sweep
// collector that reclaims unreachable blocks, driven by a caller-supplied
// root-set oracle. It is the component everything else in this repository
// (block headers, tagged objects) is assembled into.
package heap
