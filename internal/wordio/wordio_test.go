// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package wordio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x00, 0x00, 0x2a}
	r := MakeReader(buf)
	require.Equal(t, 2, r.Remaining())

	w, ok := r.Peek()
	require.True(t, ok)
	require.Equal(t, uint32(0xdeadbeef), w)
	require.Equal(t, 0, r.Offset())

	w, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, uint32(0xdeadbeef), w)
	w, ok = r.Next()
	require.True(t, ok)
	require.Equal(t, uint32(42), w)
	require.Equal(t, 8, r.Offset())

	_, ok = r.Next()
	require.False(t, ok)
	_, ok = r.Peek()
	require.False(t, ok)
}

func TestReaderShortTail(t *testing.T) {
	// A trailing partial word is never returned.
	r := MakeReader([]byte{1, 2, 3, 4, 5, 6})
	require.Equal(t, 1, r.Remaining())
	_, ok := r.Next()
	require.True(t, ok)
	_, ok = r.Next()
	require.False(t, ok)
}

func TestWriter(t *testing.T) {
	buf := make([]byte, 12)
	w := MakeWriter(buf)
	require.Equal(t, 3, w.Remaining())

	w.Put(0x01020304)
	w.Put(0xfffffffe)
	require.Equal(t, 2, w.Len())
	require.Equal(t, 1, w.Remaining())
	require.Equal(t, []byte{1, 2, 3, 4, 0xff, 0xff, 0xff, 0xfe, 0, 0, 0, 0}, buf)

	w.Put(7)
	require.Equal(t, 0, w.Remaining())
	require.Panics(t, func() { w.Put(8) })
}

func TestWriterUnaligned(t *testing.T) {
	require.Panics(t, func() { MakeWriter(make([]byte, 5)) })
}
