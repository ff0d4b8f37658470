// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package e1

import "github.com/seisio/e1/block"

// A Compressor turns sample buffers into compressed streams. The zero value
// uses DefaultBlockBytes and FullEnd framing. Fields are read on each
// Compress call and never written, so one Compressor may serve concurrent
// callers.
type Compressor struct {
	// BlockBytes is the nominal encoded size of each block, including its
	// header. It must be a multiple of 4 within [MinBlockBytes,
	// MaxBlockBytes]; zero selects DefaultBlockBytes.
	BlockBytes int

	// End selects the final block's framing.
	End EndPolicy

	// Metrics, if non-nil, accumulates counters for every block this
	// Compressor encodes.
	Metrics *Metrics
}

// Compress appends the compressed stream for samples to dst and returns the
// extended buffer. An empty input appends nothing and is not an error.
func (c *Compressor) Compress(dst []byte, samples []int32) ([]byte, error) {
	blockBytes := c.BlockBytes
	if blockBytes == 0 {
		blockBytes = DefaultBlockBytes
	}
	enc, err := block.NewEncoder(blockBytes)
	if err != nil {
		return dst, err
	}
	start := len(dst)
	for off := 0; off < len(samples); {
		var n int
		var st block.Stats
		dst, n, st = enc.EncodeNext(dst, samples[off:], c.End)
		off += n
		if c.Metrics != nil {
			c.Metrics.trackBlock(st)
		}
	}
	if c.Metrics != nil {
		c.Metrics.BytesIn.Add(uint64(4 * len(samples)))
		c.Metrics.BytesOut.Add(uint64(len(dst) - start))
	}
	return dst, nil
}

// Compress compresses samples into a new stream of blockBytes-sized blocks,
// framing the final block according to end.
func Compress(samples []int32, blockBytes int, end EndPolicy) ([]byte, error) {
	c := Compressor{BlockBytes: blockBytes, End: end}
	return c.Compress(nil, samples)
}
