// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"math"

	"golang.org/x/perf/benchfmt"

	"github.com/aclements/termplot/internal/data"
)

// A benchReader collects one metric from Go benchmark results [1].
//
// Each distinct benchmark becomes a series, in the order benchmarks
// first appear. A benchmark is identified by its full name and the
// "pkg" configuration in effect for its results, so same-named
// benchmarks from different packages are separate series. The i'th
// result of a benchmark is the benchmark's sample in row i. Results
// that don't report the metric and malformed result lines are
// ignored.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
type benchReader struct {
	unit string

	// maxSeries is the number of series that can be labeled.
	// Benchmarks beyond that are dropped.
	maxSeries int

	reader *benchfmt.Reader
	series []benchSeries
	index  map[benchKey]int
}

type benchKey struct {
	pkg, name string
}

type benchSeries struct {
	key  benchKey
	runs []float64
}

func newBenchReader(unit string, maxSeries int) *benchReader {
	return &benchReader{unit: unit, maxSeries: maxSeries, index: make(map[benchKey]int)}
}

func (b *benchReader) read(r io.Reader) error {
	// File configuration does not carry across inputs.
	if b.reader == nil {
		b.reader = benchfmt.NewReader(r, "")
	} else {
		b.reader.Reset(r, "")
	}
	for b.reader.Scan() {
		res, ok := b.reader.Result().(*benchfmt.Result)
		if !ok {
			// Syntax errors and unit metadata.
			continue
		}
		v, ok := benchValue(res, b.unit)
		if !ok {
			continue
		}
		// res is reused by the next Scan, so copy what we keep.
		key := benchKey{res.GetConfig("pkg"), res.Name.String()}
		s, ok := b.index[key]
		if !ok {
			if len(b.series) == b.maxSeries {
				continue
			}
			s = len(b.series)
			b.index[key] = s
			b.series = append(b.series, benchSeries{key: key})
		}
		b.series[s].runs = append(b.series[s].runs, v)
	}
	return b.reader.Err()
}

// benchValue returns res's measurement in unit. unit may be either
// the unit as written in the input (eg, ns/op) or its tidied form (eg,
// sec/op).
func benchValue(res *benchfmt.Result, unit string) (float64, bool) {
	for _, v := range res.Values {
		if v.OrigUnit != "" && v.OrigUnit == unit {
			return v.OrigValue, true
		}
		if v.Unit == unit {
			return v.Value, true
		}
	}
	return 0, false
}

// data returns the collected results. X is the run number.
func (b *benchReader) data() *data.Data {
	d := new(data.Data)
	nrows := 0
	for _, s := range b.series {
		if len(s.runs) > nrows {
			nrows = len(s.runs)
		}
	}
	ys := make([]float64, len(b.series))
	for row := 0; row < nrows; row++ {
		for i, s := range b.series {
			if row < len(s.runs) {
				ys[i] = s.runs[row]
			} else {
				ys[i] = math.NaN()
			}
		}
		d.AddRow(float64(row), ys...)
	}
	if len(b.series) > 0 {
		d.Names = b.names()
	}
	return d
}

// names returns the label of each series. Benchmarks are labeled by
// name alone unless that name appears in more than one package.
func (b *benchReader) names() []string {
	pkgs := make(map[string]int)
	for _, s := range b.series {
		pkgs[s.key.name]++
	}
	names := make([]string, len(b.series))
	for i, s := range b.series {
		names[i] = s.key.name
		if pkgs[s.key.name] > 1 && s.key.pkg != "" {
			names[i] = s.key.pkg + "." + s.key.name
		}
	}
	return names
}
