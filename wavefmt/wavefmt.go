// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package wavefmt converts disk-native waveform sample encodings to and
// from the 32-bit signed integer domain the e1 codec operates on.
//
// Datatype codes follow the CSS 3.0 waveform conventions: s1/s2/s3/s4 are
// big-endian signed integers of that many bytes, i1/i2/i4 little-endian
// signed integers, t4/t8 big-endian IEEE floats and f4/f8 little-endian
// IEEE floats. The codes e0..e9 and E0..E9 denote e1-compressed streams
// themselves; they carry no sample layout, only a block byte budget, see
// BlockBytes.
package wavefmt

import (
	"encoding/binary"
	"math"

	"github.com/seisio/e1/internal/base"
)

type codec struct {
	width int
	get   func(b []byte) int32
	put   func(b []byte, v int32)
}

var codecs = map[string]codec{
	"s1": {1,
		func(b []byte) int32 { return int32(int8(b[0])) },
		func(b []byte, v int32) { b[0] = byte(clamp(v, 1<<7)) }},
	"s2": {2,
		func(b []byte) int32 { return int32(int16(binary.BigEndian.Uint16(b))) },
		func(b []byte, v int32) { binary.BigEndian.PutUint16(b, uint16(clamp(v, 1<<15))) }},
	"s3": {3,
		func(b []byte) int32 {
			u := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
			return int32(u<<8) >> 8
		},
		func(b []byte, v int32) {
			u := uint32(clamp(v, 1<<23))
			b[0], b[1], b[2] = byte(u>>16), byte(u>>8), byte(u)
		}},
	"s4": {4,
		func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) },
		func(b []byte, v int32) { binary.BigEndian.PutUint32(b, uint32(v)) }},
	"i1": {1,
		func(b []byte) int32 { return int32(int8(b[0])) },
		func(b []byte, v int32) { b[0] = byte(clamp(v, 1<<7)) }},
	"i2": {2,
		func(b []byte) int32 { return int32(int16(binary.LittleEndian.Uint16(b))) },
		func(b []byte, v int32) { binary.LittleEndian.PutUint16(b, uint16(clamp(v, 1<<15))) }},
	"i4": {4,
		func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
		func(b []byte, v int32) { binary.LittleEndian.PutUint32(b, uint32(v)) }},
	"t4": {4,
		func(b []byte) int32 { return roundFloat(float64(math.Float32frombits(binary.BigEndian.Uint32(b)))) },
		func(b []byte, v int32) { binary.BigEndian.PutUint32(b, math.Float32bits(float32(v))) }},
	"t8": {8,
		func(b []byte) int32 { return roundFloat(math.Float64frombits(binary.BigEndian.Uint64(b))) },
		func(b []byte, v int32) { binary.BigEndian.PutUint64(b, math.Float64bits(float64(v))) }},
	"f4": {4,
		func(b []byte) int32 { return roundFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))) },
		func(b []byte, v int32) { binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v))) }},
	"f8": {8,
		func(b []byte) int32 { return roundFloat(math.Float64frombits(binary.LittleEndian.Uint64(b))) },
		func(b []byte, v int32) { binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v))) }},
}

// clamp limits v to the signed range [-bound, bound-1].
func clamp(v, bound int32) int32 {
	if v >= bound {
		return bound - 1
	}
	if v < -bound {
		return -bound
	}
	return v
}

// roundFloat rounds to the nearest integer, halves away from zero, clamping
// to the int32 range. NaN maps to zero.
func roundFloat(f float64) int32 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Round(f)
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	if f <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(f)
}

// SampleWidth returns the size in bytes of one sample of the given
// datatype.
func SampleWidth(datatype string) (int, error) {
	c, ok := codecs[datatype]
	if !ok {
		return 0, base.TypeErrorf("e1/wavefmt: unknown datatype %q", datatype)
	}
	return c.width, nil
}

// Normalize converts raw disk-native samples of the given datatype into
// int32 values. Floats are rounded to the nearest integer and clamped to
// the int32 range.
func Normalize(raw []byte, datatype string) ([]int32, error) {
	c, ok := codecs[datatype]
	if !ok {
		return nil, base.TypeErrorf("e1/wavefmt: unknown datatype %q", datatype)
	}
	if len(raw)%c.width != 0 {
		return nil, base.LengthErrorf("e1/wavefmt: %d bytes is not a multiple of the %d-byte %s sample",
			len(raw), c.width, datatype)
	}
	out := make([]int32, len(raw)/c.width)
	for i := range out {
		out[i] = c.get(raw[i*c.width:])
	}
	return out, nil
}

// Denormalize converts int32 samples back to the given datatype's
// disk-native layout. Values outside an integer datatype's range are
// clamped to its extremes.
func Denormalize(samples []int32, datatype string) ([]byte, error) {
	c, ok := codecs[datatype]
	if !ok {
		return nil, base.TypeErrorf("e1/wavefmt: unknown datatype %q", datatype)
	}
	out := make([]byte, len(samples)*c.width)
	for i, v := range samples {
		c.put(out[i*c.width:], v)
	}
	return out, nil
}

// BlockBytes returns the nominal compressed block size associated with an
// e-compressed datatype code: e0 is 1024 bytes and eN is N*2048 for N in
// 1..8; E0 is 1200 bytes and EN is (N+1)*400 for N in 1..9.
func BlockBytes(datatype string) (int, error) {
	if len(datatype) == 2 && datatype[1] >= '0' && datatype[1] <= '9' {
		n := int(datatype[1] - '0')
		switch datatype[0] {
		case 'e':
			switch {
			case n == 0:
				return 1024, nil
			case n <= 8:
				return n * 2048, nil
			}
		case 'E':
			if n == 0 {
				return 1200, nil
			}
			return (n + 1) * 400, nil
		}
	}
	return 0, base.TypeErrorf("e1/wavefmt: %q is not an e-compressed datatype", datatype)
}
