// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package base

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMarks(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		is       func(error) bool
	}{
		{LengthErrorf("declared %d bytes", 100), ErrLength, IsLengthError},
		{SampleCountErrorf("decoded %d of %d", 3, 7), ErrSampleCount, IsSampleCountError},
		{DiffOrderErrorf("order %d", 9), ErrDiffOrder, IsDiffOrderError},
		{ChecksumErrorf("check %x != %x", 1, 2), ErrChecksum, IsChecksumError},
		{ArgumentErrorf("offset %d", -1), ErrArgument, IsArgumentError},
		{TypeErrorf("datatype %q", "z9"), ErrType, IsTypeError},
		{AllocationErrorf("%d samples", 1 << 40), ErrAllocation, IsAllocationError},
	}
	sentinels := []error{
		ErrLength, ErrSampleCount, ErrDiffOrder, ErrChecksum,
		ErrArgument, ErrType, ErrAllocation,
	}
	for _, c := range cases {
		require.True(t, c.is(c.err), "%v", c.err)
		// Each error carries exactly one mark from the taxonomy.
		n := 0
		for _, s := range sentinels {
			if errors.Is(c.err, s) {
				n++
			}
		}
		require.Equal(t, 1, n, "%v", c.err)
	}
}

func TestErrorMarkSurvivesWrap(t *testing.T) {
	err := errors.Wrapf(ChecksumErrorf("check 0x1 != 0x2"), "block at offset %d", 4096)
	require.True(t, IsChecksumError(err))
	require.False(t, IsLengthError(err))
}
