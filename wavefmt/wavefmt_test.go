// Copyright 2025 The E1 Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package wavefmt

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/seisio/e1/internal/base"
	"github.com/stretchr/testify/require"
)

func TestDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/convert", func(t *testing.T, d *datadriven.TestData) string {
		var typ string
		d.ScanArgs(t, "type", &typ)
		switch d.Cmd {
		case "normalize":
			raw, err := hex.DecodeString(strings.Join(strings.Fields(d.Input), ""))
			require.NoError(t, err)
			samples, err := Normalize(raw, typ)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			fields := make([]string, len(samples))
			for i, v := range samples {
				fields[i] = strconv.FormatInt(int64(v), 10)
			}
			return strings.Join(fields, " ")

		case "denormalize":
			var samples []int32
			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.ParseInt(f, 10, 32)
				require.NoError(t, err)
				samples = append(samples, int32(v))
			}
			raw, err := Denormalize(samples, typ)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return hex.EncodeToString(raw)

		case "block-bytes":
			n, err := BlockBytes(typ)
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return strconv.Itoa(n)

		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestIntegerRoundTrip(t *testing.T) {
	// Every integer datatype round-trips values within its range.
	ranges := map[string]int32{
		"s1": 1 << 7, "i1": 1 << 7,
		"s2": 1 << 15, "i2": 1 << 15,
		"s3": 1 << 23,
	}
	rng := rand.New(rand.NewSource(61))
	for typ, bound := range ranges {
		samples := make([]int32, 1000)
		for i := range samples {
			samples[i] = int32(rng.Uint32()%uint32(2*bound)) - bound
		}
		raw, err := Denormalize(samples, typ)
		require.NoError(t, err)
		got, err := Normalize(raw, typ)
		require.NoError(t, err)
		require.Equal(t, samples, got, "type %s", typ)
	}

	for _, typ := range []string{"s4", "i4"} {
		samples := make([]int32, 1000)
		for i := range samples {
			samples[i] = int32(rng.Uint32())
		}
		raw, err := Denormalize(samples, typ)
		require.NoError(t, err)
		got, err := Normalize(raw, typ)
		require.NoError(t, err)
		require.Equal(t, samples, got, "type %s", typ)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	// Float datatypes hold any int32 exactly at width 8; at width 4 only
	// values within the float32 mantissa, so test those within 2^24.
	rng := rand.New(rand.NewSource(67))
	for _, typ := range []string{"t4", "t8", "f4", "f8"} {
		samples := make([]int32, 1000)
		for i := range samples {
			samples[i] = int32(rng.Uint32()%(1<<25)) - 1<<24
		}
		raw, err := Denormalize(samples, typ)
		require.NoError(t, err)
		got, err := Normalize(raw, typ)
		require.NoError(t, err)
		require.Equal(t, samples, got, "type %s", typ)
	}
}

func TestSampleWidth(t *testing.T) {
	widths := map[string]int{
		"s1": 1, "s2": 2, "s3": 3, "s4": 4,
		"i1": 1, "i2": 2, "i4": 4,
		"t4": 4, "t8": 8, "f4": 4, "f8": 8,
	}
	for typ, want := range widths {
		w, err := SampleWidth(typ)
		require.NoError(t, err)
		require.Equal(t, want, w, "type %s", typ)
	}
	_, err := SampleWidth("e0")
	require.Error(t, err)
	require.True(t, base.IsTypeError(err))
}

func TestBlockBytes(t *testing.T) {
	budgets := map[string]int{
		"e0": 1024, "e1": 2048, "e4": 8192, "e8": 16384,
		"E0": 1200, "E1": 800, "E5": 2400, "E9": 4000,
	}
	for typ, want := range budgets {
		n, err := BlockBytes(typ)
		require.NoError(t, err)
		require.Equal(t, want, n, "type %s", typ)
	}
	for _, typ := range []string{"e9", "s4", "e", "E", "ee", "f0", ""} {
		_, err := BlockBytes(typ)
		require.Error(t, err, "type %q", typ)
		require.True(t, base.IsTypeError(err))
	}
}
