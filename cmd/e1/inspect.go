// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/seisio/e1"
	"github.com/seisio/e1/block"
	"github.com/seisio/e1/internal/base"
	"github.com/spf13/cobra"
)

var inspectConfig struct {
	limit      int
	verbose    bool
	plot       bool
	plotWidth  int
	plotHeight int
	maxBuffer  int
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "print the block structure of an e1 stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVarP(
		&inspectConfig.limit, "limit", "l", 0,
		"maximum number of blocks to list (0 means all)")
	inspectCmd.Flags().BoolVarP(
		&inspectConfig.verbose, "verbose", "v", false,
		"print an annotated hexdump of each listed block")
	inspectCmd.Flags().BoolVar(
		&inspectConfig.plot, "plot", false,
		"plot the decoded waveform")
	inspectCmd.Flags().IntVar(
		&inspectConfig.plotWidth, "plot-width", 80,
		"plot width in characters")
	inspectCmd.Flags().IntVar(
		&inspectConfig.plotHeight, "plot-height", 10,
		"plot height in characters")
	inspectCmd.Flags().IntVar(
		&inspectConfig.maxBuffer, "max-buffer", 1<<30,
		"largest decoded sample buffer in bytes for --plot (0 means unlimited)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	stream, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"#", "Offset", "Bytes", "Samples", "Encoding", "Check"})
	var info e1.StreamInfo
	listed := 0
	for off := 0; off < len(stream); {
		h, err := block.ParseHeader(stream[off:])
		if err != nil {
			return err
		}
		if inspectConfig.limit == 0 || listed < inspectConfig.limit {
			encoding := fmt.Sprintf("order %d", h.DiffOrder)
			check := fmt.Sprintf("%06x", uint32(h.Check)&(1<<24-1))
			if h.Uncompressed {
				encoding, check = "raw", "-"
			}
			tbl.Append([]string{
				strconv.Itoa(info.Blocks),
				strconv.Itoa(off),
				strconv.Itoa(h.ByteLength),
				strconv.Itoa(h.SampleCount),
				encoding,
				check,
			})
			listed++
		}
		info.Blocks++
		info.Samples += h.SampleCount
		info.Bytes += h.ByteLength
		off += h.ByteLength
	}
	tbl.Render()

	ratio := float64(0)
	if info.Bytes > 0 {
		ratio = float64(4*info.Samples) / float64(info.Bytes)
	}
	fmt.Printf("%s blocks, %s samples, %s compressed, ratio %.2f\n",
		crhumanize.Count(info.Blocks, crhumanize.Compact),
		crhumanize.Count(info.Samples, crhumanize.Compact),
		crhumanize.Bytes(info.Bytes, crhumanize.Compact, crhumanize.OmitI),
		ratio)

	if inspectConfig.verbose {
		listed = 0
		for off := 0; off < len(stream); {
			if inspectConfig.limit != 0 && listed >= inspectConfig.limit {
				break
			}
			dump, err := block.Describe(stream[off:])
			if err != nil {
				return err
			}
			h, _ := block.ParseHeader(stream[off:])
			fmt.Printf("\nblock %d at offset %d:\n%s", listed, off, dump)
			off += h.ByteLength
			listed++
		}
	}

	if inspectConfig.plot {
		if m := inspectConfig.maxBuffer; m > 0 && 4*info.Samples > m {
			return base.AllocationErrorf(
				"e1: decoding %d samples needs %d bytes, above the %d byte buffer limit",
				info.Samples, 4*info.Samples, m)
		}
		samples, err := e1.Decompress(stream, info.Samples, info.Bytes, 0, info.Samples)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(downsample(samples, inspectConfig.plotWidth),
			asciigraph.Height(inspectConfig.plotHeight)))
	}
	return nil
}

// downsample buckets samples into at most width means, enough resolution
// for a terminal plot.
func downsample(samples []int32, width int) []float64 {
	if width < 1 || len(samples) == 0 {
		return nil
	}
	if len(samples) <= width {
		out := make([]float64, len(samples))
		for i, v := range samples {
			out[i] = float64(v)
		}
		return out
	}
	out := make([]float64, width)
	for b := range out {
		lo := b * len(samples) / width
		hi := (b + 1) * len(samples) / width
		var sum float64
		for _, v := range samples[lo:hi] {
			sum += float64(v)
		}
		out[b] = sum / float64(hi-lo)
	}
	return out
}
