// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"os"

	"github.com/seisio/e1"
	"github.com/seisio/e1/wavefmt"
	"github.com/spf13/cobra"
)

var compressConfig struct {
	datatype   string
	etype      string
	blockBytes int
	shortEnd   bool
	verbose    bool
}

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "compress a raw waveform file into an e1 stream",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(
		&compressConfig.datatype, "type", "t", "s4",
		"input sample datatype (s1/s2/s3/s4, i1/i2/i4, t4/t8, f4/f8)")
	compressCmd.Flags().StringVar(
		&compressConfig.etype, "etype", "",
		"e-compressed datatype code selecting the block size (e0..e8, E0..E9)")
	compressCmd.Flags().IntVarP(
		&compressConfig.blockBytes, "block-bytes", "b", 0,
		"block size in bytes (overrides --etype; 0 means the e0 default)")
	compressCmd.Flags().BoolVar(
		&compressConfig.shortEnd, "short-end", false,
		"truncate the final block instead of padding it to the block size")
	compressCmd.Flags().BoolVarP(
		&compressConfig.verbose, "verbose", "v", false,
		"print compression metrics")
}

func runCompress(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	samples, err := wavefmt.Normalize(raw, compressConfig.datatype)
	if err != nil {
		return err
	}

	blockBytes := compressConfig.blockBytes
	if blockBytes == 0 && compressConfig.etype != "" {
		if blockBytes, err = wavefmt.BlockBytes(compressConfig.etype); err != nil {
			return err
		}
	}
	end := e1.FullEnd
	if compressConfig.shortEnd {
		end = e1.ShortEnd
	}

	m := &e1.Metrics{}
	c := e1.Compressor{BlockBytes: blockBytes, End: end, Metrics: m}
	stream, err := c.Compress(nil, samples)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], stream, 0666); err != nil {
		return err
	}
	if compressConfig.verbose {
		fmt.Println(m)
	}
	return nil
}
