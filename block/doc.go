// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block reads and writes the metadata prefix of every memory block
// in the heap: the next-block pointer, the payload size, and the
// allocated/marked flag bits. It knows nothing about what a block's
// payload contains; that is the object package's job.
package block
