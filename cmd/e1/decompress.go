// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"os"

	"github.com/seisio/e1"
	"github.com/seisio/e1/internal/base"
	"github.com/seisio/e1/wavefmt"
	"github.com/spf13/cobra"
)

var decompressConfig struct {
	datatype  string
	offset    int
	count     int
	maxBuffer int
}

var decompressCmd = &cobra.Command{
	Use:   "decompress <input> <output>",
	Short: "decompress an e1 stream into a raw waveform file",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecompress,
}

func init() {
	decompressCmd.Flags().StringVarP(
		&decompressConfig.datatype, "type", "t", "s4",
		"output sample datatype (s1/s2/s3/s4, i1/i2/i4, t4/t8, f4/f8)")
	decompressCmd.Flags().IntVar(
		&decompressConfig.offset, "offset", 0,
		"first sample to extract")
	decompressCmd.Flags().IntVarP(
		&decompressConfig.count, "count", "n", -1,
		"number of samples to extract (-1 means through the end)")
	decompressCmd.Flags().IntVar(
		&decompressConfig.maxBuffer, "max-buffer", 1<<30,
		"largest decoded sample buffer in bytes (0 means unlimited)")
}

func runDecompress(cmd *cobra.Command, args []string) error {
	stream, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	info, err := e1.Stat(stream)
	if err != nil {
		return err
	}

	count := decompressConfig.count
	if count < 0 {
		count = info.Samples - decompressConfig.offset
	}
	if m := decompressConfig.maxBuffer; m > 0 && 4*count > m {
		return base.AllocationErrorf(
			"e1: decoding %d samples needs %d bytes, above the %d byte buffer limit",
			count, 4*count, m)
	}

	samples, err := e1.Decompress(stream, info.Samples, info.Bytes, decompressConfig.offset, count)
	if err != nil {
		return err
	}
	raw, err := wavefmt.Denormalize(samples, decompressConfig.datatype)
	if err != nil {
		return err
	}
	return os.WriteFile(args[1], raw, 0666)
}
