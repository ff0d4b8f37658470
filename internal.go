// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package e1

import "github.com/seisio/e1/internal/base"

// Every error the codec returns is marked with exactly one of these
// sentinels; match with errors.Is or the predicates below.
var (
	// ErrLength marks errors where a declared byte length is inconsistent
	// with the buffer it describes, or is not a multiple of the word size.
	ErrLength = base.ErrLength

	// ErrSampleCount marks errors where a decoded sample count does not
	// match a block's declared count, or a declared count exceeds the
	// maximum working size.
	ErrSampleCount = base.ErrSampleCount

	// ErrDiffOrder marks errors where a block header carries a difference
	// order outside {0..4}.
	ErrDiffOrder = base.ErrDiffOrder

	// ErrChecksum marks errors where a block's re-integrated final sample
	// does not match the header check value.
	ErrChecksum = base.ErrChecksum

	// ErrArgument marks errors caused by invalid caller-supplied offsets,
	// counts or block budgets.
	ErrArgument = base.ErrArgument

	// ErrType marks errors caused by an unsupported or unknown sample
	// datatype.
	ErrType = base.ErrType

	// ErrAllocation marks errors where backing storage for a working
	// buffer could not be obtained within the configured limits.
	ErrAllocation = base.ErrAllocation
)

// IsLengthError returns true if the error is marked with ErrLength.
func IsLengthError(err error) bool { return base.IsLengthError(err) }

// IsSampleCountError returns true if the error is marked with
// ErrSampleCount.
func IsSampleCountError(err error) bool { return base.IsSampleCountError(err) }

// IsDiffOrderError returns true if the error is marked with ErrDiffOrder.
func IsDiffOrderError(err error) bool { return base.IsDiffOrderError(err) }

// IsChecksumError returns true if the error is marked with ErrChecksum.
func IsChecksumError(err error) bool { return base.IsChecksumError(err) }

// IsArgumentError returns true if the error is marked with ErrArgument.
func IsArgumentError(err error) bool { return base.IsArgumentError(err) }

// IsTypeError returns true if the error is marked with ErrType.
func IsTypeError(err error) bool { return base.IsTypeError(err) }

// IsAllocationError returns true if the error is marked with ErrAllocation.
func IsAllocationError(err error) bool { return base.IsAllocationError(err) }
