// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/termplot/internal/check"
	"github.com/aclements/termplot/internal/frame"
)

// Histogram returns a histogram of the Y values ys with one bin per
// canvas column of f. Each finite value is recorded in the column it
// would occupy if it were plotted on the horizontal axis of f.
// Non-finite values are not recorded.
func Histogram(ys []float64, f *frame.Frame) *stats.LinearHist {
	minY, _ := f.YBounds()
	_, rangeY := f.Ranges()
	width, _ := f.Size()
	plotWidth := float64(f.PlotWidth())

	h := stats.NewLinearHist(0, float64(width), width)
	for _, y := range ys {
		if !isFinite(y) {
			continue
		}
		col := math.Round(plotWidth * (y - minY) / rangeY)
		h.Add(col)
	}
	return h
}

// CDF returns the cumulative distribution of each Y series of d.
//
// f must be the frame of d. Each series is binned into the canvas
// columns of f, as by Histogram. In the result, X is the value of
// each bin, in the units of d's Y values, and series s has the
// fraction of series s's samples at or below that bin. All series
// share the same bins. A series that ends before the others repeats
// its last fraction, or is NaN if it has no samples.
func CDF(d *Data, f *frame.Frame) *Data {
	minY, _ := f.YBounds()
	_, rangeY := f.Ranges()
	plotWidth := float64(f.PlotWidth())

	out := &Data{
		Ys: make([][]float64, len(d.Ys)),
	}
	if d.Names != nil {
		out.Names = append([]string(nil), d.Names...)
	}
	for s, ys := range d.Ys {
		_, counts, _ := Histogram(ys, f).Counts()

		// Only walk up to the last non-empty bin.
		last := -1
		var total uint
		for i, n := range counts {
			if n > 0 {
				last = i
			}
			total += n
		}

		var cum uint
		ps := make([]float64, 0, last+1)
		for i := 0; i <= last; i++ {
			cum += counts[i]
			x := minY + (float64(i)/plotWidth)*rangeY
			if i >= len(out.Xs) {
				out.Xs = append(out.Xs, x)
			} else if out.Xs[i] != x {
				check.Failf("series %d bin %d at x = %v, want %v", s, i, x, out.Xs[i])
			}
			ps = append(ps, float64(cum)/float64(total))
		}
		out.Ys[s] = ps
	}

	for s, ps := range out.Ys {
		pad := math.NaN()
		if len(ps) > 0 {
			pad = ps[len(ps)-1]
		}
		for len(ps) < len(out.Xs) {
			ps = append(ps, pad)
		}
		out.Ys[s] = ps
	}
	return out
}
