// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package e1 implements a block-oriented, lossless compression codec for
// 32-bit signed integer time series, designed for continuous seismic
// waveform recordings.
//
// A compressed stream is a concatenation of self-describing blocks. Each
// block applies up to four first-difference passes to its samples, chosen
// adaptively to minimize encoded size, then bit-packs the differences into
// fixed-shape packets of 7 to 28 bits per sample. Samples that no
// difference order brings under 28 signed bits are stored in raw
// uncompressed blocks. Compressed blocks carry a 24-bit truncation of their
// final sample as an integrity check.
//
// Streams support random access: Decompress walks block headers without
// decoding to skip ahead, then decodes only the blocks overlapping the
// requested sample range.
//
// All state is per-call or per-value; distinct Compressor and Decoder
// values may be used concurrently.
package e1

import "github.com/seisio/e1/block"

// EndPolicy selects how the final block of a stream declares its length.
type EndPolicy = block.EndPolicy

const (
	// FullEnd pads the final block to the nominal block size.
	FullEnd = block.FullEnd
	// ShortEnd truncates the final block's declared length to the bytes
	// used.
	ShortEnd = block.ShortEnd
)

const (
	// DefaultBlockBytes is the block size used when a Compressor does not
	// specify one. It matches the reference budget for the default
	// single-channel waveform datatype.
	DefaultBlockBytes = 1024

	// MinBlockBytes is the smallest legal block size: a header plus one
	// uncompressed sample.
	MinBlockBytes = block.MinBlockBytes

	// MaxBlockBytes is the largest legal block size.
	MaxBlockBytes = block.MaxBlockBytes

	// MaxBlockSamples is the largest number of samples one block can
	// represent.
	MaxBlockSamples = block.MaxBlockSamples

	// HeaderLen is the length in bytes of a block header.
	HeaderLen = block.HeaderLen

	// MaxDiffOrder is the deepest difference order the codec applies.
	MaxDiffOrder = block.MaxDiffOrder
)
