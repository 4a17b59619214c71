// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data holds the data matrix of a plot and the stages that
// transform and draw it.
//
// A Data is one X column and any number of Y series, all of the same
// length. Missing samples are NaN. Transformations (Log10X, Log10Y,
// CDF) return a new Data and never modify their input.
package data

import (
	"fmt"
	"math"
)

// Data is a table of samples. Row i has X value Xs[i] and Y value
// Ys[s][i] for each series s.
type Data struct {
	// Flipped exchanges the X and Y axes when framing and drawing.
	// The stored values are not changed.
	Flipped bool

	Xs []float64
	Ys [][]float64

	// Names optionally labels each series. If non-nil, it has one
	// entry per series.
	Names []string
}

// AddRow appends a row with X value x and Y values ys. ys[s] is the
// value of series s; series beyond len(ys) get NaN for this row. If
// ys has more values than there are series, the new series are
// created and back-filled with NaN for all previous rows.
func (d *Data) AddRow(x float64, ys ...float64) {
	n := len(d.Xs)
	for s, y := range ys {
		if s == len(d.Ys) {
			d.Ys = append(d.Ys, nans(n))
			if d.Names != nil {
				d.Names = append(d.Names, "")
			}
		}
		d.Ys[s] = append(d.Ys[s], y)
	}
	for s := len(ys); s < len(d.Ys); s++ {
		d.Ys[s] = append(d.Ys[s], math.NaN())
	}
	d.Xs = append(d.Xs, x)
}

// Len returns the number of rows in d.
func (d *Data) Len() int {
	return len(d.Xs)
}

// Check returns an error if some series of d is not the same length
// as d.Xs, or d.Names does not match the number of series.
func (d *Data) Check() error {
	for s, ys := range d.Ys {
		if len(ys) != len(d.Xs) {
			return fmt.Errorf("series %d has %d rows, want %d", s, len(ys), len(d.Xs))
		}
	}
	if d.Names != nil && len(d.Names) != len(d.Ys) {
		return fmt.Errorf("%d series names for %d series", len(d.Names), len(d.Ys))
	}
	return nil
}

// AxisValues returns the values spanned by the horizontal and
// vertical axes of a plot of d.
func (d *Data) AxisValues() (x, y [][]float64) {
	if d.Flipped {
		return d.Ys, [][]float64{d.Xs}
	}
	return [][]float64{d.Xs}, d.Ys
}

// Log10X returns a copy of d with log10 applied to every X value.
func Log10X(d *Data) *Data {
	d2 := d.clone()
	log10(d2.Xs)
	return d2
}

// Log10Y returns a copy of d with log10 applied to every Y value.
func Log10Y(d *Data) *Data {
	d2 := d.clone()
	for _, ys := range d2.Ys {
		log10(ys)
	}
	return d2
}

// log10 replaces every value in xs with its base-10 logarithm, except
// for 0, which is left alone.
func log10(xs []float64) {
	for i, x := range xs {
		if x != 0 {
			xs[i] = math.Log10(x)
		}
	}
}

func (d *Data) clone() *Data {
	d2 := &Data{
		Flipped: d.Flipped,
		Xs:      append([]float64(nil), d.Xs...),
		Ys:      make([][]float64, len(d.Ys)),
	}
	for s, ys := range d.Ys {
		d2.Ys[s] = append([]float64(nil), ys...)
	}
	if d.Names != nil {
		d2.Names = append([]string(nil), d.Names...)
	}
	return d2
}

func nans(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.NaN()
	}
	return xs
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
