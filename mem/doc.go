// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mem defines the byte-sink abstraction every layout codec in this
// repository is written against: a minimal read/write/alloc contract, plus
// the little-endian machine-word codec that is the single source of truth
// for multi-byte primitive layout.
//
// Nothing in this package knows about block headers or tagged objects; it
// exists so the header and object codecs can be exercised against a plain
// byte buffer, independent of any particular allocator.
package mem
