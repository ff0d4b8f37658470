// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

import (
	"encoding/binary"
	"testing"

	"github.com/seisio/e1/internal/base"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	testCases := []Header{
		{ByteLength: 1024, SampleCount: 500, DiffOrder: 2, Check: 12345},
		{ByteLength: 12, SampleCount: 1, DiffOrder: 0, Check: -1},
		{ByteLength: MaxBlockBytes, SampleCount: MaxBlockSamples, DiffOrder: MaxDiffOrder, Check: -(1 << 23)},
		{ByteLength: 28, SampleCount: 5, Uncompressed: true},
	}
	for _, h := range testCases {
		buf := make([]byte, h.ByteLength)
		h.encode(buf)
		got, err := ParseHeader(buf)
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
}

func TestHeaderCheckTruncation(t *testing.T) {
	// The check field holds 24 bits; the encoder stores the low 24 bits of
	// the final sample and the parser sign-extends them.
	h := Header{ByteLength: 16, SampleCount: 2, DiffOrder: 1, Check: 250000000}
	buf := make([]byte, h.ByteLength)
	h.encode(buf)
	got, err := ParseHeader(buf)
	require.NoError(t, err)
	require.Equal(t, check24(250000000), got.Check)
}

func TestParseHeaderErrors(t *testing.T) {
	// mk builds a buf-of-bufLen prefixed with an encoded raw header.
	mk := func(byteLength, sampleCount int, word uint32, bufLen int) []byte {
		buf := make([]byte, bufLen)
		binary.BigEndian.PutUint16(buf[0:2], uint16(byteLength))
		binary.BigEndian.PutUint16(buf[2:4], uint16(sampleCount))
		binary.BigEndian.PutUint32(buf[4:8], word)
		return buf
	}
	const compressed, raw = 0, uncompressedBit

	testCases := []struct {
		name string
		buf  []byte
		is   func(error) bool
	}{
		{"truncated", make([]byte, 7), base.IsLengthError},
		{"unaligned-length", mk(14, 1, compressed, 16), base.IsLengthError},
		{"length-below-min", mk(8, 1, compressed, 16), base.IsLengthError},
		{"length-above-max", mk(MaxBlockBytes + 4, 1, compressed, MaxBlockBytes + 4), base.IsLengthError},
		{"length-past-buffer", mk(16, 1, compressed, 12), base.IsLengthError},
		{"zero-samples", mk(12, 0, compressed, 12), base.IsSampleCountError},
		{"too-many-samples", mk(MaxBlockBytes, MaxBlockSamples+1, compressed, MaxBlockBytes), base.IsSampleCountError},
		{"uncompressed-short", mk(12, 2, raw, 12), base.IsLengthError},
		{"bad-diff-order", mk(12, 1, uint32(MaxDiffOrder+1)<<24, 12), base.IsDiffOrderError},
		{"compressed-short", mk(12, 5, compressed, 12), base.IsSampleCountError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHeader(tc.buf)
			require.Error(t, err)
			require.True(t, tc.is(err), "%v", err)
		})
	}
}

func TestParseHeaderPadding(t *testing.T) {
	// Writers pad non-final blocks to the nominal size, so the declared
	// length routinely exceeds what the samples need.
	h := Header{ByteLength: 1024, SampleCount: 4, DiffOrder: 1, Check: 42}
	buf := make([]byte, h.ByteLength)
	h.encode(buf)
	got, err := ParseHeader(buf)
	require.NoError(t, err)
	require.Equal(t, 4, got.SampleCount)
}
