// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package base defines the error taxonomy shared by the e1 codec packages.
//
// Every failure the codec can report is marked with exactly one of the
// sentinel errors below. Errors are detected at the point of violation and
// returned immediately; the codec never returns partial results alongside
// an error and never retries internally.
package base

import "github.com/cockroachdb/errors"

var (
	// ErrLength marks errors where a declared byte length is inconsistent
	// with the buffer it describes, or is not a multiple of the word size.
	ErrLength = errors.New("e1: length error")

	// ErrSampleCount marks errors where a decoded sample count does not
	// match a block's declared count, or a declared count exceeds the
	// maximum working size.
	ErrSampleCount = errors.New("e1: sample count error")

	// ErrDiffOrder marks errors where a block header carries a difference
	// order outside {0..4}.
	ErrDiffOrder = errors.New("e1: difference order error")

	// ErrChecksum marks errors where a block's re-integrated final sample
	// does not match the header check value.
	ErrChecksum = errors.New("e1: checksum error")

	// ErrArgument marks errors caused by invalid caller-supplied offsets,
	// counts or block budgets.
	ErrArgument = errors.New("e1: argument error")

	// ErrType marks errors caused by an unsupported or unknown sample
	// datatype.
	ErrType = errors.New("e1: datatype error")

	// ErrAllocation marks errors where backing storage for a working
	// buffer could not be obtained within the configured limits.
	ErrAllocation = errors.New("e1: allocation error")
)

// LengthErrorf formats an error marked with ErrLength.
func LengthErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrLength)
}

// SampleCountErrorf formats an error marked with ErrSampleCount.
func SampleCountErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrSampleCount)
}

// DiffOrderErrorf formats an error marked with ErrDiffOrder.
func DiffOrderErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDiffOrder)
}

// ChecksumErrorf formats an error marked with ErrChecksum.
func ChecksumErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrChecksum)
}

// ArgumentErrorf formats an error marked with ErrArgument.
func ArgumentErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrArgument)
}

// TypeErrorf formats an error marked with ErrType.
func TypeErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrType)
}

// AllocationErrorf formats an error marked with ErrAllocation.
func AllocationErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrAllocation)
}

// IsLengthError returns true if the error is marked with ErrLength.
func IsLengthError(err error) bool { return errors.Is(err, ErrLength) }

// IsSampleCountError returns true if the error is marked with ErrSampleCount.
func IsSampleCountError(err error) bool { return errors.Is(err, ErrSampleCount) }

// IsDiffOrderError returns true if the error is marked with ErrDiffOrder.
func IsDiffOrderError(err error) bool { return errors.Is(err, ErrDiffOrder) }

// IsChecksumError returns true if the error is marked with ErrChecksum.
func IsChecksumError(err error) bool { return errors.Is(err, ErrChecksum) }

// IsArgumentError returns true if the error is marked with ErrArgument.
func IsArgumentError(err error) bool { return errors.Is(err, ErrArgument) }

// IsTypeError returns true if the error is marked with ErrType.
func IsTypeError(err error) bool { return errors.Is(err, ErrType) }

// IsAllocationError returns true if the error is marked with ErrAllocation.
func IsAllocationError(err error) bool { return errors.Is(err, ErrAllocation) }
