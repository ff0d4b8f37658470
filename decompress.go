// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package e1

import (
	"github.com/seisio/e1/block"
	"github.com/seisio/e1/internal/base"
)

// Decompress extracts samples [offset, offset+count) from a compressed
// stream. totalSamples and totalBytes are the stream's claimed totals,
// normally carried by whatever catalog stores the stream; Stat recovers
// them from the stream itself when no catalog is at hand.
//
// Blocks entirely before the requested range are skipped by header walking
// without decoding, so the cost is proportional to the blocks skipped plus
// the samples requested, not to the stream size.
//
// offset and count must describe a range within [0, totalSamples]; anything
// else is an ArgumentError. A stream that ends before yielding the
// requested range is a LengthError.
func Decompress(stream []byte, totalSamples, totalBytes, offset, count int) ([]int32, error) {
	switch {
	case totalSamples < 0:
		return nil, base.ArgumentErrorf("e1: negative total sample count %d", totalSamples)
	case offset < 0 || offset > totalSamples:
		return nil, base.ArgumentErrorf("e1: offset %d outside [0, %d]", offset, totalSamples)
	case count < 0 || offset+count > totalSamples:
		return nil, base.ArgumentErrorf("e1: count %d at offset %d exceeds %d total samples",
			count, offset, totalSamples)
	}
	switch {
	case totalBytes%4 != 0:
		return nil, base.LengthErrorf("e1: stream length %d not a multiple of 4", totalBytes)
	case totalBytes < 0 || totalBytes > len(stream):
		return nil, base.LengthErrorf("e1: stream length %d inconsistent with %d byte buffer",
			totalBytes, len(stream))
	}
	out := make([]int32, 0, count)
	if count == 0 {
		return out, nil
	}

	stream = stream[:totalBytes]
	var dec block.Decoder
	for pos := 0; len(stream) > 0 && len(out) < count; {
		h, err := block.ParseHeader(stream)
		if err != nil {
			return nil, err
		}
		if pos+h.SampleCount <= offset {
			pos += h.SampleCount
			stream = stream[h.ByteLength:]
			continue
		}
		samples, _, err := dec.Decode(stream)
		if err != nil {
			return nil, err
		}
		lo := max(offset-pos, 0)
		hi := min(h.SampleCount, offset+count-pos)
		out = append(out, samples[lo:hi]...)
		pos += h.SampleCount
		stream = stream[h.ByteLength:]
	}
	if len(out) < count {
		return nil, base.LengthErrorf("e1: stream ends after %d of %d requested samples",
			len(out), count)
	}
	return out, nil
}

// StreamInfo summarizes a compressed stream.
type StreamInfo struct {
	// Blocks is the number of blocks in the stream.
	Blocks int
	// Samples is the total number of samples the stream represents.
	Samples int
	// Bytes is the total encoded size, the sum of declared block lengths.
	Bytes int
}

// Stat walks a stream's block headers without decoding any payload and
// returns the stream's totals, suitable as the totalSamples and totalBytes
// arguments to Decompress.
func Stat(stream []byte) (StreamInfo, error) {
	var info StreamInfo
	for off := 0; off < len(stream); {
		h, err := block.ParseHeader(stream[off:])
		if err != nil {
			return StreamInfo{}, err
		}
		info.Blocks++
		info.Samples += h.SampleCount
		info.Bytes += h.ByteLength
		off += h.ByteLength
	}
	return info, nil
}
