// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package block

// MaxDiffOrder is the maximum number of first-difference passes applied to
// a block's samples before packing. Differencing was designed for 24-bit
// field data; each pass can add one bit of magnitude, so four passes always
// stay within the 28-bit packet limit for such data.
const MaxDiffOrder = 4

// magOverflow has every bit at or above position 27 set. A difference
// buffer whose OR-of-absolute-values intersects this mask contains a value
// that cannot be stored in any packet shape.
const magOverflow = 0xf8000000

// differencer holds the working buffers for difference computation and
// order selection. Each Encoder owns one, so concurrent encoders never
// share scratch state. The zero value is ready for use.
type differencer struct {
	// d[j] holds the j-times-differenced window: d[0] is the samples
	// themselves; d[j][0] = d[j-1][0] and d[j][i] = d[j-1][i] - d[j-1][i-1].
	d [MaxDiffOrder + 1][]int32
	// sum[j] is the sum of absolute values of d[j] over the whole window.
	sum [MaxDiffOrder + 1]float64
	// orBits[j] is the OR of absolute values of d[j] over the bounded
	// prefix of the window.
	orBits [MaxDiffOrder + 1]uint32
}

// compute fills the difference buffers for samples. Magnitude bounds
// (orBits) are tracked over the first bounded samples only: those are the
// samples the packet encoder is guaranteed to fit. Samples past the bound
// may still be packed into the same block when they happen to fit; the
// encoder re-checks every magnitude and splits the block early if one does
// not.
func (df *differencer) compute(samples []int32, bounded int) {
	n := len(samples)
	for j := 0; j <= MaxDiffOrder; j++ {
		if cap(df.d[j]) < n {
			df.d[j] = make([]int32, n)
		}
		df.d[j] = df.d[j][:n]
		df.sum[j] = 0
		df.orBits[j] = 0
	}
	for i := 0; i < n; i++ {
		df.d[0][i] = samples[i]
		for j := 1; j <= MaxDiffOrder; j++ {
			if i == 0 {
				df.d[j][0] = samples[0]
				continue
			}
			df.d[j][i] = df.d[j-1][i] - df.d[j-1][i-1]
		}
		for j := 0; j <= MaxDiffOrder; j++ {
			a := absU32(df.d[j][i])
			df.sum[j] += float64(a)
			if i < bounded {
				df.orBits[j] |= a
			}
		}
	}
}

// choose selects the difference order for the computed window: the order
// with the smallest absolute sum among those whose bounded-prefix
// magnitudes all fit in 28 signed bits, ties going to the lower order.
// It returns -1 if no order qualifies; the window must then be stored as
// an uncompressed block.
//
// The magnitude check must run on the differences, not the input: a
// difference can overflow the bound even when both operands are within it
// (e.g. (2^28-1) - (-1)), and differencing can equally bring out-of-range
// inputs back under it.
func (df *differencer) choose() int {
	chosen := -1
	for j := 0; j <= MaxDiffOrder; j++ {
		if df.orBits[j]&magOverflow != 0 {
			continue
		}
		if chosen < 0 || df.sum[j] < df.sum[chosen] {
			chosen = j
		}
	}
	return chosen
}

// integrate inverts order difference passes by repeated prefix summation.
// Additions may wrap; the result is exact for any input the encoder
// accepted, since a 28-bit difference re-integrated at most four times
// stays within 32 bits.
func integrate(out []int32, order int) {
	for ; order > 0; order-- {
		for i := 1; i < len(out); i++ {
			out[i] += out[i-1]
		}
	}
}
