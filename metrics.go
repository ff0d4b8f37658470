// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package e1

import (
	"sync/atomic"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/seisio/e1/block"
)

// Metrics accumulates compression counters. Attach one to a Compressor to
// observe it; a single Metrics may be shared by concurrent Compressors.
type Metrics struct {
	// Blocks is the number of blocks encoded.
	Blocks atomic.Uint64
	// RawBlocks is the number of blocks that took the uncompressed
	// fallback.
	RawBlocks atomic.Uint64
	// Samples is the total number of samples encoded.
	Samples atomic.Uint64
	// BytesIn is the total input size, four bytes per sample.
	BytesIn atomic.Uint64
	// BytesOut is the total encoded stream size.
	BytesOut atomic.Uint64
	// Packets counts emitted packets per shape.
	Packets [block.NumShapes]atomic.Uint64

	// BlockSize, if non-nil, observes the declared byte length of every
	// encoded block. The histogram is provided by the caller, typically
	// registered with a prometheus registry.
	BlockSize prometheus.Histogram
}

func (m *Metrics) trackBlock(st block.Stats) {
	m.Blocks.Add(1)
	if st.Uncompressed {
		m.RawBlocks.Add(1)
	}
	m.Samples.Add(uint64(st.Samples))
	for s, c := range st.Packets {
		if c != 0 {
			m.Packets[s].Add(c)
		}
	}
	if m.BlockSize != nil {
		m.BlockSize.Observe(float64(st.Bytes))
	}
}

// String implements fmt.Stringer.
func (m *Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

var _ redact.SafeFormatter = (*Metrics)(nil)

// SafeFormat implements redact.SafeFormatter.
func (m *Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	in := m.BytesIn.Load()
	out := m.BytesOut.Load()
	w.Printf("blocks: %s (%s raw)  samples: %s  in: %s  out: %s",
		crhumanize.Count(m.Blocks.Load(), crhumanize.Compact),
		crhumanize.Count(m.RawBlocks.Load(), crhumanize.Compact),
		crhumanize.Count(m.Samples.Load(), crhumanize.Compact),
		crhumanize.Bytes(in, crhumanize.Compact, crhumanize.OmitI),
		crhumanize.Bytes(out, crhumanize.Compact, crhumanize.OmitI))
	if out > 0 {
		w.Printf("  ratio: %.2f", redact.Safe(float64(in)/float64(out)))
	}
	w.SafeString("\npackets:")
	for s := block.Shape(0); int(s) < block.NumShapes; s++ {
		w.Printf(" %s=%s", redact.SafeString(s.String()),
			crhumanize.Count(m.Packets[s].Load(), crhumanize.Compact))
	}
}
