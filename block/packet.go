// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

import "github.com/seisio/e1/internal/wordio"

// putBits writes the low n bits of v into words at bit position pos,
// counting from the most significant bit of words[0]. The field may span
// the word boundary.
func putBits(words *[2]uint32, pos, n uint, v uint32) {
	end := pos + n
	switch {
	case end <= 32:
		words[0] |= v << (32 - end)
	case pos >= 32:
		words[1] |= v << (64 - end)
	default:
		words[0] |= v >> (end - 32)
		words[1] |= v << (64 - end)
	}
}

// getBits reads the n-bit field at bit position pos, counting from the most
// significant bit of words[0].
func getBits(words [2]uint32, pos, n uint) uint32 {
	end := pos + n
	switch {
	case end <= 32:
		return (words[0] >> (32 - end)) & (1<<n - 1)
	case pos >= 32:
		return (words[1] >> (64 - end)) & (1<<n - 1)
	default:
		hi := words[0] << (end - 32)
		lo := words[1] >> (64 - end)
		return (hi | lo) & (1<<n - 1)
	}
}

// signExtend interprets the low n bits of v as a two's-complement value and
// sign-extends it to 32 bits.
func signExtend(v uint32, n uint) int32 {
	return int32(v<<(32-n)) >> (32 - n)
}

// absU32 returns |v| as a uint32. Unlike a naive negation this is exact for
// the minimum int32 value.
func absU32(v int32) uint32 {
	if v < 0 {
		return uint32(-int64(v))
	}
	return uint32(v)
}

// fits reports whether every sample's magnitude is below maxAbs.
func fits(samples []int32, maxAbs uint32) bool {
	for _, v := range samples {
		if absU32(v) >= maxAbs {
			return false
		}
	}
	return true
}

// putPacket writes one packet of shape s carrying vals to w. The caller
// guarantees len(vals) matches the shape's sample count, that every value
// fits the shape's bit width, and that the writer has room for the shape's
// words.
func putPacket(w *wordio.Writer, s Shape, vals []int32) {
	info := &shapeTable[s]
	var words [2]uint32
	words[0] = info.tag << 28
	pos := info.tagLen
	mask := uint32(1)<<info.bits - 1
	for _, v := range vals {
		putBits(&words, pos, info.bits, uint32(v)&mask)
		pos += info.bits
	}
	for i := 0; i < info.words; i++ {
		w.Put(words[i])
	}
}

// nextPacket decodes the packet at r's cursor into dst, returning the
// packet's shape and sample count. ok is false if the payload is exhausted
// before the packet's words could be read. dst must have room for
// maxPacketSamples values.
func nextPacket(r *wordio.Reader, dst []int32) (s Shape, n int, ok bool) {
	var words [2]uint32
	words[0], ok = r.Next()
	if !ok {
		return 0, 0, false
	}
	s = shapeByIndex[words[0]>>28]
	info := &shapeTable[s]
	if info.words == 2 {
		words[1], ok = r.Next()
		if !ok {
			return 0, 0, false
		}
	}
	pos := info.tagLen
	for i := 0; i < info.samples; i++ {
		dst[i] = signExtend(getBits(words, pos, info.bits), info.bits)
		pos += info.bits
	}
	return s, info.samples, true
}

// packPackets greedily packs diffs into w, trying shapes in priority order
// and taking the first whose upcoming samples all fit. It returns the
// number of samples consumed and increments counts per emitted shape.
//
// Packing stops when the writer is full, the input is exhausted, or the
// next sample's magnitude exceeds every shape (possible for samples beyond
// the bounded selection prefix); the last case finalizes the current block
// early and the remaining samples start a new block.
func packPackets(w *wordio.Writer, diffs []int32, counts *[NumShapes]uint64) (consumed int) {
outer:
	for consumed < len(diffs) && w.Remaining() > 0 {
		rem := diffs[consumed:]
		for s := Shape(0); int(s) < NumShapes; s++ {
			info := &shapeTable[s]
			if len(rem) < info.samples || w.Remaining() < info.words {
				continue
			}
			if !fits(rem[:info.samples], info.maxAbs) {
				continue
			}
			putPacket(w, s, rem[:info.samples])
			counts[s]++
			consumed += info.samples
			continue outer
		}
		// The next sample needs more than 28 bits: split early, never error.
		break
	}
	return consumed
}
