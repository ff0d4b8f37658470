// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

// Shape identifies one of the six fixed packet geometries. The declaration
// order is the encoder's priority order: the encoder takes the first shape
// whose upcoming samples all fit its per-sample bit width.
type Shape uint8

const (
	// Shape7Bit packs 4 samples of 7 bits each into 1 word.
	Shape7Bit Shape = iota
	// Shape9Bit packs 7 samples of 9 bits each into 2 words.
	Shape9Bit
	// Shape10Bit packs 3 samples of 10 bits each into 1 word.
	Shape10Bit
	// Shape12Bit packs 5 samples of 12 bits each into 2 words.
	Shape12Bit
	// Shape15Bit packs 4 samples of 15 bits each into 2 words.
	Shape15Bit
	// Shape28Bit packs 1 sample of 28 bits into 1 word.
	Shape28Bit

	// NumShapes is the number of packet shapes.
	NumShapes int = iota
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Shape7Bit:
		return "7-bit"
	case Shape9Bit:
		return "9-bit"
	case Shape10Bit:
		return "10-bit"
	case Shape12Bit:
		return "12-bit"
	case Shape15Bit:
		return "15-bit"
	case Shape28Bit:
		return "28-bit"
	default:
		panic("unreachable")
	}
}

// shapeInfo describes the fixed geometry of one packet shape. Samples are
// packed most-significant-sample-first into big-endian words immediately
// after the tag bits.
type shapeInfo struct {
	samples int    // samples per packet
	words   int    // words per packet
	bits    uint   // bits per sample
	tag     uint32 // tag value within the 4-bit dispatch space
	tagLen  uint   // significant tag bits; data starts at this bit
	maxAbs  uint32 // 1 << (bits-1); a sample fits if |v| < maxAbs
}

// shapeTable is the single source of truth for packet geometry, shared by
// the encoder and the decoder. The wire format describes the 7-bit shape's
// tag as the 2-bit prefix "11" followed by two always-zero bits; in the
// 4-bit dispatch space that is exactly the entry 1100, so it is listed here
// with tagLen 4.
var shapeTable = [NumShapes]shapeInfo{
	Shape7Bit:  {samples: 4, words: 1, bits: 7, tag: 0b1100, tagLen: 4, maxAbs: 1 << 6},
	Shape9Bit:  {samples: 7, words: 2, bits: 9, tag: 0b0000, tagLen: 1, maxAbs: 1 << 8},
	Shape10Bit: {samples: 3, words: 1, bits: 10, tag: 0b1000, tagLen: 2, maxAbs: 1 << 9},
	Shape12Bit: {samples: 5, words: 2, bits: 12, tag: 0b1101, tagLen: 4, maxAbs: 1 << 11},
	Shape15Bit: {samples: 4, words: 2, bits: 15, tag: 0b1110, tagLen: 4, maxAbs: 1 << 14},
	Shape28Bit: {samples: 1, words: 1, bits: 28, tag: 0b1111, tagLen: 4, maxAbs: 1 << 27},
}

// maxPacketSamples is the largest samples-per-packet across all shapes.
const maxPacketSamples = 7

// shapeByIndex maps the leading 4 bits of a packet's first word to its
// shape. Shapes with short tag prefixes are replicated across every 4-bit
// value sharing the prefix.
var shapeByIndex [16]Shape

func init() {
	for s := Shape(0); int(s) < NumShapes; s++ {
		info := &shapeTable[s]
		span := uint32(1) << (4 - info.tagLen)
		for i := uint32(0); i < span; i++ {
			shapeByIndex[info.tag+i] = s
		}
	}
}

// Samples returns the number of samples a packet of this shape carries.
func (s Shape) Samples() int { return shapeTable[s].samples }

// Words returns the number of 32-bit words a packet of this shape occupies.
func (s Shape) Words() int { return shapeTable[s].words }

// Bits returns the per-sample bit width of this shape.
func (s Shape) Bits() int { return int(shapeTable[s].bits) }
