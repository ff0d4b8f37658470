// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package block implements the atomic unit of an e1 compressed stream: a
// self-describing block of up to MaxBlockBytes bytes holding an 8-byte
// header and either bit-packed difference packets or raw 32-bit samples.
//
// A stream is a plain concatenation of blocks with no separate index; block
// N+1 is found by skipping block N's declared byte length. The stream loop
// lives in the parent e1 package; this package encodes and decodes one
// block at a time.
package block

import (
	"encoding/binary"

	"github.com/seisio/e1/internal/base"
	"github.com/seisio/e1/internal/wordio"
)

// EndPolicy selects how the final block of a stream declares its length.
// It is a per-stream, caller-selected policy, not a per-block decision.
type EndPolicy uint8

const (
	// FullEnd pads the final block to the nominal block byte budget, like
	// every other block. Streams keep a uniform block size on disk.
	FullEnd EndPolicy = iota
	// ShortEnd truncates the final block's declared byte length to exactly
	// the bytes used.
	ShortEnd
)

// String implements fmt.Stringer.
func (p EndPolicy) String() string {
	switch p {
	case FullEnd:
		return "full-end"
	case ShortEnd:
		return "short-end"
	default:
		panic("unreachable")
	}
}

// Stats describes one encoded block.
type Stats struct {
	// Bytes is the block's declared byte length.
	Bytes int
	// Samples is the number of samples the block represents.
	Samples int
	// Uncompressed indicates the raw fallback path was taken.
	Uncompressed bool
	// DiffOrder is the selected difference order (compressed blocks).
	DiffOrder int
	// Packets counts emitted packets per shape (compressed blocks).
	Packets [NumShapes]uint64
}

// An Encoder encodes sample buffers into blocks of a fixed byte budget. It
// owns its working buffers, so distinct Encoders may be used concurrently;
// a single Encoder must not.
type Encoder struct {
	blockBytes   int
	payloadWords int
	df           differencer
}

// NewEncoder returns an Encoder producing blocks of blockBytes bytes.
// blockBytes must be a multiple of 4 within [MinBlockBytes, MaxBlockBytes];
// anything else is an ArgumentError.
func NewEncoder(blockBytes int) (*Encoder, error) {
	switch {
	case blockBytes%4 != 0:
		return nil, base.ArgumentErrorf("e1/block: block budget %d not a multiple of 4", blockBytes)
	case blockBytes < MinBlockBytes || blockBytes > MaxBlockBytes:
		return nil, base.ArgumentErrorf("e1/block: block budget %d outside [%d, %d]",
			blockBytes, MinBlockBytes, MaxBlockBytes)
	}
	return &Encoder{
		blockBytes:   blockBytes,
		payloadWords: blockBytes/4 - HeaderLen/4,
	}, nil
}

// BlockBytes returns the encoder's nominal block size.
func (e *Encoder) BlockBytes() int { return e.blockBytes }

// EncodeNext encodes one block covering a prefix of samples, appending it
// to dst. It returns the extended buffer, the number of samples consumed
// (always at least 1 for non-empty input) and the block's stats.
//
// A block that consumes the entire remaining input is the stream's final
// block and declares its length according to end; every other block
// declares the full nominal size, zero-padded.
func (e *Encoder) EncodeNext(dst []byte, samples []int32, end EndPolicy) ([]byte, int, Stats) {
	if len(samples) == 0 {
		return dst, 0, Stats{}
	}
	// The packer may fill the whole payload with 7-bit packets, four
	// samples per word, so offer it up to blockBytes samples. The magnitude
	// bound backing order selection covers only the first payloadWords
	// samples; the packer re-checks each packet and splits early on
	// overflow beyond that prefix.
	window := min(len(samples), e.blockBytes)
	bounded := min(len(samples), e.payloadWords)
	e.df.compute(samples[:window], bounded)
	order := e.df.choose()
	if order < 0 {
		return e.encodeRaw(dst, samples, end)
	}

	off := len(dst)
	dst = append(dst, make([]byte, e.blockBytes)...)
	w := wordio.MakeWriter(dst[off+HeaderLen : off+e.blockBytes])
	var st Stats
	consumed := packPackets(&w, e.df.d[order][:window], &st.Packets)

	byteLength := e.blockBytes
	if consumed == len(samples) && end == ShortEnd {
		byteLength = HeaderLen + 4*w.Len()
		dst = dst[:off+byteLength]
	}
	Header{
		ByteLength:  byteLength,
		SampleCount: consumed,
		DiffOrder:   order,
		Check:       samples[consumed-1],
	}.encode(dst[off:])

	st.Bytes = byteLength
	st.Samples = consumed
	st.DiffOrder = order
	return dst, consumed, st
}

// encodeRaw emits an uncompressed block: no difference order keeps every
// magnitude in the bounded window under 2^27, so the samples are stored as
// raw big-endian words. Check values are not set on uncompressed data.
func (e *Encoder) encodeRaw(dst []byte, samples []int32, end EndPolicy) ([]byte, int, Stats) {
	n := min(len(samples), e.payloadWords)
	byteLength := e.blockBytes
	if n == len(samples) && end == ShortEnd {
		byteLength = HeaderLen + 4*n
	}
	off := len(dst)
	dst = append(dst, make([]byte, byteLength)...)
	Header{
		ByteLength:   byteLength,
		SampleCount:  n,
		Uncompressed: true,
	}.encode(dst[off:])
	for i, v := range samples[:n] {
		binary.BigEndian.PutUint32(dst[off+HeaderLen+4*i:], uint32(v))
	}
	return dst, n, Stats{Bytes: byteLength, Samples: n, Uncompressed: true}
}

// A Decoder decodes single blocks, reusing an internal sample buffer across
// calls. Distinct Decoders may be used concurrently; a single Decoder must
// not.
type Decoder struct {
	scratch []int32
}

// Decode decodes the block at the start of blk. The returned slice aliases
// the decoder's internal buffer and is valid only until the next Decode
// call; callers keeping samples must copy them out.
func (d *Decoder) Decode(blk []byte) ([]int32, Header, error) {
	h, err := ParseHeader(blk)
	if err != nil {
		return nil, Header{}, err
	}
	// Packets are whole: the last one may overshoot the declared count by
	// up to maxPacketSamples-1 before the mismatch is detected.
	if err := d.grow(h.SampleCount + maxPacketSamples - 1); err != nil {
		return nil, Header{}, err
	}
	out := d.scratch[:h.SampleCount]

	if h.Uncompressed {
		payload := blk[HeaderLen : HeaderLen+4*h.SampleCount]
		for i := range out {
			out[i] = int32(binary.BigEndian.Uint32(payload[4*i:]))
		}
		return out, h, nil
	}

	r := wordio.MakeReader(blk[HeaderLen:h.ByteLength])
	n := 0
	for n < h.SampleCount {
		_, cnt, ok := nextPacket(&r, d.scratch[n:n+maxPacketSamples])
		if !ok {
			return nil, Header{}, base.LengthErrorf(
				"e1/block: payload exhausted after %d of %d samples", n, h.SampleCount)
		}
		n += cnt
	}
	if n != h.SampleCount {
		return nil, Header{}, base.SampleCountErrorf(
			"e1/block: decoded %d samples, header declares %d", n, h.SampleCount)
	}

	integrate(out, h.DiffOrder)
	if got := check24(out[len(out)-1]); got != h.Check {
		return nil, Header{}, base.ChecksumErrorf(
			"e1/block: check value %#x != header %#x", got, h.Check)
	}
	return out, h, nil
}

// grow ensures the decoder's sample buffer holds n values. The bound is a
// backstop; ParseHeader already rejects counts above MaxBlockSamples.
func (d *Decoder) grow(n int) error {
	if n > MaxBlockSamples+maxPacketSamples {
		return base.AllocationErrorf("e1/block: working buffer of %d samples exceeds maximum %d",
			n, MaxBlockSamples+maxPacketSamples)
	}
	if cap(d.scratch) < n {
		d.scratch = make([]int32, n)
	}
	d.scratch = d.scratch[:cap(d.scratch)]
	return nil
}
