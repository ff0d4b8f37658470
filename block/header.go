// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

import (
	"encoding/binary"

	"github.com/seisio/e1/internal/base"
)

const (
	// HeaderLen is the length in bytes of a block header.
	HeaderLen = 8

	// MinBlockBytes is the smallest legal block byte budget: a header plus
	// one payload word (one uncompressed sample).
	MinBlockBytes = HeaderLen + 4

	// MaxBlockBytes is the largest legal block, compressed or not.
	MaxBlockBytes = 16384

	// MaxBlockSamples is the largest sample count a block can declare. The
	// densest packing stores four 7-bit samples per payload word, one byte
	// per sample.
	MaxBlockSamples = MaxBlockBytes - HeaderLen
)

const (
	uncompressedBit = 1 << 28
	checkMask       = 1<<24 - 1
)

// Header is the 8-byte prefix of every block. On the wire it is three
// big-endian fields: a uint16 byte length (header included), a uint16
// sample count, and one uint32 word packing the uncompressed flag (bit 28),
// the difference order (bits 27-24) and the check value (bits 23-0).
type Header struct {
	// ByteLength is the total encoded size of the block in bytes,
	// including the header. Always a multiple of 4.
	ByteLength int
	// SampleCount is the number of samples the block represents.
	SampleCount int
	// Uncompressed indicates the payload is SampleCount raw big-endian
	// int32 values with no differencing and no check value.
	Uncompressed bool
	// DiffOrder is the number of difference passes applied before packing.
	// Meaningless when Uncompressed is set.
	DiffOrder int
	// Check is the block's final re-integrated sample truncated to 24 bits
	// (sign-extended here for comparison). Meaningless when Uncompressed is
	// set.
	Check int32
}

// check24 truncates v to its low 24 bits and sign-extends the result, the
// form in which block check values are compared.
func check24(v int32) int32 {
	return int32(uint32(v)<<8) >> 8
}

// encode writes the header into buf, which must hold at least HeaderLen
// bytes.
func (h Header) encode(buf []byte) {
	binary.BigEndian.PutUint16(buf[0:2], uint16(h.ByteLength))
	binary.BigEndian.PutUint16(buf[2:4], uint16(h.SampleCount))
	var w uint32
	if h.Uncompressed {
		w = uncompressedBit
	} else {
		w = uint32(h.DiffOrder)<<24 | uint32(h.Check)&checkMask
	}
	binary.BigEndian.PutUint32(buf[4:8], w)
}

// ParseHeader decodes and validates the header of the block at the start of
// buf. buf may extend past the block; it must not end before it.
//
// Structural validation enforced here:
//   - at least HeaderLen bytes available and ByteLength within buf
//     (LengthError);
//   - ByteLength a multiple of 4, within [MinBlockBytes, MaxBlockBytes]
//     (LengthError);
//   - SampleCount nonzero and at most MaxBlockSamples (SampleCountError);
//   - the payload large enough for SampleCount: compressed packing stores
//     at least one byte per sample, uncompressed exactly four
//     (SampleCountError / LengthError);
//   - DiffOrder at most MaxDiffOrder for compressed blocks
//     (DiffOrderError).
//
// ByteLength may exceed the bytes the samples need: the writer pads every
// non-final block (and, under FullEnd, the final one) to the nominal block
// size, and the padding is never decoded.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLen {
		return Header{}, base.LengthErrorf("e1/block: truncated header: %d bytes", len(buf))
	}
	w := binary.BigEndian.Uint32(buf[4:8])
	h := Header{
		ByteLength:   int(binary.BigEndian.Uint16(buf[0:2])),
		SampleCount:  int(binary.BigEndian.Uint16(buf[2:4])),
		Uncompressed: w&uncompressedBit != 0,
		DiffOrder:    int(w>>24) & 0xf,
		Check:        signExtend(w&checkMask, 24),
	}
	switch {
	case h.ByteLength%4 != 0:
		return Header{}, base.LengthErrorf("e1/block: block length %d not a multiple of 4", h.ByteLength)
	case h.ByteLength < MinBlockBytes || h.ByteLength > MaxBlockBytes:
		return Header{}, base.LengthErrorf("e1/block: block length %d outside [%d, %d]",
			h.ByteLength, MinBlockBytes, MaxBlockBytes)
	case h.ByteLength > len(buf):
		return Header{}, base.LengthErrorf("e1/block: block length %d exceeds remaining %d bytes",
			h.ByteLength, len(buf))
	case h.SampleCount == 0 || h.SampleCount > MaxBlockSamples:
		return Header{}, base.SampleCountErrorf("e1/block: sample count %d outside [1, %d]",
			h.SampleCount, MaxBlockSamples)
	}
	if h.Uncompressed {
		if h.ByteLength < HeaderLen+4*h.SampleCount {
			return Header{}, base.LengthErrorf(
				"e1/block: uncompressed block of %d bytes cannot hold %d samples",
				h.ByteLength, h.SampleCount)
		}
		return h, nil
	}
	if h.DiffOrder > MaxDiffOrder {
		return Header{}, base.DiffOrderErrorf("e1/block: difference order %d exceeds %d",
			h.DiffOrder, MaxDiffOrder)
	}
	if h.ByteLength < HeaderLen+h.SampleCount {
		return Header{}, base.SampleCountErrorf(
			"e1/block: block of %d bytes cannot hold %d samples", h.ByteLength, h.SampleCount)
	}
	return h, nil
}
