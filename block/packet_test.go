// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/seisio/e1/internal/wordio"
	"github.com/stretchr/testify/require"
)

func TestPutGetBits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		n := uint(1 + rng.Intn(28))
		pos := uint(rng.Intn(64 - int(n) + 1))
		v := rng.Uint32() & (1<<n - 1)
		var words [2]uint32
		putBits(&words, pos, n, v)
		require.Equal(t, v, getBits(words, pos, n), "pos=%d n=%d", pos, n)
	}
}

func TestSignExtend(t *testing.T) {
	testCases := []struct {
		v    uint32
		n    uint
		want int32
	}{
		{0x00, 7, 0},
		{0x3f, 7, 63},
		{0x40, 7, -64},
		{0x7f, 7, -1},
		{0x0ff, 9, 255},
		{0x100, 9, -256},
		{0x1fe, 9, -2},
		{0x7ffffff, 28, 1<<27 - 1},
		{0x8000000, 28, -(1 << 27)},
		{0xffffff, 24, -1},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, signExtend(tc.v, tc.n), "v=%#x n=%d", tc.v, tc.n)
	}
}

func TestAbsU32(t *testing.T) {
	require.Equal(t, uint32(0), absU32(0))
	require.Equal(t, uint32(7), absU32(7))
	require.Equal(t, uint32(7), absU32(-7))
	require.Equal(t, uint32(math.MaxInt32), absU32(math.MaxInt32))
	require.Equal(t, uint32(1<<31), absU32(math.MinInt32))
}

func TestShapeDispatch(t *testing.T) {
	// The leading 4 bits of a packet's first word select its shape; short
	// tags claim every index sharing their prefix.
	want := [16]Shape{
		Shape9Bit, Shape9Bit, Shape9Bit, Shape9Bit,
		Shape9Bit, Shape9Bit, Shape9Bit, Shape9Bit,
		Shape10Bit, Shape10Bit, Shape10Bit, Shape10Bit,
		Shape7Bit, Shape12Bit, Shape15Bit, Shape28Bit,
	}
	require.Equal(t, want, shapeByIndex)
}

func TestShapeGeometry(t *testing.T) {
	// Every shape fills its words exactly: tag bits plus data bits is a
	// whole number of words with nothing left over.
	for s := Shape(0); int(s) < NumShapes; s++ {
		info := &shapeTable[s]
		require.Equal(t, 32*info.words, int(info.tagLen)+info.samples*int(info.bits), "%s", s)
		require.Equal(t, uint32(1)<<(info.bits-1), info.maxAbs, "%s", s)
	}
}

// TestPacketGolden pins the exact wire layout of each shape against
// hand-assembled words.
func TestPacketGolden(t *testing.T) {
	testCases := []struct {
		shape Shape
		vals  []int32
		words []uint32
	}{
		// tag 1100, then 1, -1, 63, -64 as 7-bit fields.
		{Shape7Bit, []int32{1, -1, 63, -64}, []uint32{0xc03fdfc0}},
		// tag 0, then 1, -1, 2, -2, 3, 255, -256 as 9-bit fields spanning
		// the word boundary inside the fourth sample.
		{Shape9Bit, []int32{1, -1, 2, -2, 3, 255, -256}, []uint32{0x007fe02f, 0xf00dff00}},
		// tag 10, then 5, -5, 511 as 10-bit fields.
		{Shape10Bit, []int32{5, -5, 511}, []uint32{0x805fedff}},
		// tag 1101, then 2047, -2048, 1, -1, 0 as 12-bit fields.
		{Shape12Bit, []int32{2047, -2048, 1, -1, 0}, []uint32{0xd7ff8000, 0x01fff000}},
		// tag 1110, then 1, -1, 16383, -16384 as 15-bit fields.
		{Shape15Bit, []int32{1, -1, 16383, -16384}, []uint32{0xe0003fff, 0xdfffc000}},
		// tag 1111, single 28-bit field.
		{Shape28Bit, []int32{-1}, []uint32{0xffffffff}},
		{Shape28Bit, []int32{1<<27 - 1}, []uint32{0xf7ffffff}},
	}
	for _, tc := range testCases {
		t.Run(tc.shape.String(), func(t *testing.T) {
			buf := make([]byte, 4*tc.shape.Words())
			w := wordio.MakeWriter(buf)
			putPacket(&w, tc.shape, tc.vals)
			for i, want := range tc.words {
				require.Equal(t, want, binary.BigEndian.Uint32(buf[4*i:]), "word %d", i)
			}

			r := wordio.MakeReader(buf)
			var dst [maxPacketSamples]int32
			s, n, ok := nextPacket(&r, dst[:])
			require.True(t, ok)
			require.Equal(t, tc.shape, s)
			require.Equal(t, len(tc.vals), n)
			require.Equal(t, tc.vals, dst[:n])
		})
	}
}

func TestPacketRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for s := Shape(0); int(s) < NumShapes; s++ {
		info := &shapeTable[s]
		for trial := 0; trial < 200; trial++ {
			vals := make([]int32, info.samples)
			for i := range vals {
				vals[i] = int32(rng.Uint32()%(2*info.maxAbs)) - int32(info.maxAbs)
			}
			buf := make([]byte, 4*info.words)
			w := wordio.MakeWriter(buf)
			putPacket(&w, s, vals)
			r := wordio.MakeReader(buf)
			var dst [maxPacketSamples]int32
			got, n, ok := nextPacket(&r, dst[:])
			require.True(t, ok)
			require.Equal(t, s, got)
			require.Equal(t, vals, dst[:n])
		}
	}
}

func TestPackPackets(t *testing.T) {
	pack := func(diffs []int32, words int) (consumed int, counts [NumShapes]uint64, buf []byte) {
		buf = make([]byte, 4*words)
		w := wordio.MakeWriter(buf)
		consumed = packPackets(&w, diffs, &counts)
		return consumed, counts, buf[:4*w.Len()]
	}

	t.Run("priority", func(t *testing.T) {
		// Eight samples under 2^6 pack as two 7-bit packets, even though
		// larger shapes would also fit them.
		consumed, counts, _ := pack([]int32{0, 1, -1, 63, -63, 2, -2, 3}, 16)
		require.Equal(t, 8, consumed)
		require.Equal(t, uint64(2), counts[Shape7Bit])
		require.Equal(t, uint64(2), sumCounts(counts))
	})

	t.Run("mixed", func(t *testing.T) {
		// 600 rules out 7-, 9- and 10-bit shapes for any packet holding it;
		// the leading zeros go out as a 10-bit triple and the remainder as
		// one 15-bit packet.
		consumed, counts, _ := pack([]int32{0, 0, 0, 600, 0, 0, 0}, 16)
		require.Equal(t, 7, consumed)
		require.Equal(t, uint64(1), counts[Shape10Bit])
		require.Equal(t, uint64(1), counts[Shape15Bit])
		require.Equal(t, uint64(2), sumCounts(counts))
	})

	t.Run("writer-full", func(t *testing.T) {
		consumed, counts, _ := pack([]int32{1, 2, 3, 4, 5, 6, 7, 8}, 1)
		require.Equal(t, 4, consumed)
		require.Equal(t, uint64(1), counts[Shape7Bit])
	})

	t.Run("oversized-sample", func(t *testing.T) {
		// A magnitude at or above 2^27 fits no shape: packing stops in
		// front of it and the block ends early.
		consumed, counts, _ := pack([]int32{0, 0, 0, 1 << 27}, 16)
		require.Equal(t, 3, consumed)
		require.Equal(t, uint64(1), counts[Shape10Bit])
		require.Equal(t, uint64(1), sumCounts(counts))
	})

	t.Run("tail", func(t *testing.T) {
		// Two trailing samples fit no multi-sample shape and fall through
		// to 28-bit singles.
		consumed, counts, _ := pack([]int32{4, -4}, 16)
		require.Equal(t, 2, consumed)
		require.Equal(t, uint64(2), counts[Shape28Bit])
	})
}

func sumCounts(counts [NumShapes]uint64) uint64 {
	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}
