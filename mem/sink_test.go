// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBytes struct {
	n int
}

func (f fixedBytes) Size() int { return f.n }
func (f fixedBytes) EncodeTo(sink Sink, addr int) error {
	for i := 0; i < f.n; i++ {
		if err := sink.WriteByte(addr+i, byte(i)); err != nil {
			return err
		}
	}
	return nil
}

func TestBufferAllocBumps(t *testing.T) {
	buf := NewBuffer(16)

	a1, err := buf.Alloc(fixedBytes{4})
	require.NoError(t, err)
	assert.Equal(t, 0, a1)

	a2, err := buf.Alloc(fixedBytes{4})
	require.NoError(t, err)
	assert.Equal(t, 4, a2)
}

func TestBufferAllocOutOfMemory(t *testing.T) {
	buf := NewBuffer(4)
	_, err := buf.Alloc(fixedBytes{5})
	require.Error(t, err)
	var oom *ErrOutOfMemory
	assert.ErrorAs(t, err, &oom)
}

func TestBufferReadWriteOutOfRange(t *testing.T) {
	buf := NewBuffer(2)
	_, err := buf.ReadByte(2)
	require.Error(t, err)

	err = buf.WriteByte(-1, 1)
	require.Error(t, err)
}
