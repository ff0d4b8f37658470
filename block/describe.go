// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

import (
	"github.com/seisio/e1/internal/binfmt"
	"github.com/seisio/e1/internal/wordio"
)

// Describe returns an annotated hexdump of the block at the start of blk:
// the header fields, every packet with its shape and decoded difference
// values (pre-integration), and any padding. Intended for debugging and
// stream inspection tooling.
func Describe(blk []byte) (string, error) {
	h, err := ParseHeader(blk)
	if err != nil {
		return "", err
	}
	f := binfmt.New(blk[:h.ByteLength])
	f.HexBytesln(2, "block length: %d bytes", h.ByteLength)
	f.HexBytesln(2, "sample count: %d", h.SampleCount)

	if h.Uncompressed {
		f.HexBytesln(4, "uncompressed, check unset")
		for i := 0; i < h.SampleCount; i++ {
			f.HexBytesln(4, "sample[%d] = %d", i, int32(uint32(f.PeekUint(4))))
		}
	} else {
		f.HexBytesln(4, "diff order %d, check %#06x", h.DiffOrder, uint32(h.Check)&checkMask)
		r := wordio.MakeReader(blk[HeaderLen:h.ByteLength])
		var vals [maxPacketSamples]int32
		for n := 0; n < h.SampleCount; {
			before := r.Offset()
			s, cnt, ok := nextPacket(&r, vals[:])
			if !ok {
				f.CommentLine("payload exhausted after %d of %d samples", n, h.SampleCount)
				break
			}
			f.HexBytesln(r.Offset()-before, "%s packet: %v", s, vals[:cnt])
			n += cnt
		}
	}
	if f.More() {
		f.HexBytesln(f.Remaining(), "padding")
	}
	return f.String(), nil
}
