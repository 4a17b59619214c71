// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame computes the bounds of a plot and maps data
// coordinates to canvas cells.
package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Pad is the number of rows and columns of margin reserved by the
// coordinate mapping.
const Pad = 2

// CrossPad controls when an axis that does not include zero is
// extended to include it. The axis is extended if the data lies
// within CrossPad times its own range of zero.
const CrossPad = 2.0

// ErrNoData is returned by New if an axis has no finite values.
var ErrNoData = errors.New("no finite values")

// ErrRange is returned by New if the extent of an axis is too large
// to represent.
var ErrRange = errors.New("range of values overflows")

// Values is implemented by data sets that can be framed.
type Values interface {
	// AxisValues returns the values spanned by the horizontal (x)
	// and vertical (y) axes.
	AxisValues() (x, y [][]float64)
}

// A Frame is the bounds of a plot on a width × height canvas. A Frame
// is immutable; if the data changes, compute a new Frame.
type Frame struct {
	width, height int

	minX, maxX, rangeX float64
	minY, maxY, rangeY float64
}

// New computes a Frame for plotting v on a width × height canvas.
func New(width, height int, v Values) (*Frame, error) {
	xv, yv := v.AxisValues()
	minX, maxX, ok := finiteBounds(xv)
	if !ok {
		return nil, fmt.Errorf("x axis: %w", ErrNoData)
	}
	minY, maxY, ok := finiteBounds(yv)
	if !ok {
		return nil, fmt.Errorf("y axis: %w", ErrNoData)
	}

	f := &Frame{width: width, height: height}
	f.minX, f.maxX, f.rangeX = axisBounds(minX, maxX)
	f.minY, f.maxY, f.rangeY = axisBounds(minY, maxY)
	if math.IsInf(f.rangeX, 0) {
		return nil, fmt.Errorf("x axis [%v, %v]: %w", minX, maxX, ErrRange)
	}
	if math.IsInf(f.rangeY, 0) {
		return nil, fmt.Errorf("y axis [%v, %v]: %w", minY, maxY, ErrRange)
	}
	return f, nil
}

// axisBounds returns the extent of an axis for data spanning [min,
// max].
func axisBounds(min, max float64) (float64, float64, float64) {
	// A zero range would divide by zero when mapping.
	if min == max {
		max = min + 1
	}
	rng := max - min

	// If the data doesn't cross zero, start (or end) the axis at
	// zero, unless the data is so far from zero relative to its
	// range that it would be squashed into a few cells.
	if !(min <= 0 && max >= 0) {
		if min > 0 && min-rng*CrossPad < 0 {
			min = 0
			rng = max
		} else if max < 0 && max+rng*CrossPad > 0 {
			max = 0
			rng = -min
		}
	}
	return min, max, rng
}

// finiteBounds returns the minimum and maximum finite value in vss.
func finiteBounds(vss [][]float64) (min, max float64, ok bool) {
	var finite []float64
	for _, vs := range vss {
		for _, v := range vs {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = append(finite, v)
			}
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(finite)
	return min, max, true
}

// Size returns the canvas dimensions f was computed for.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// XBounds returns the extent of the horizontal axis.
func (f *Frame) XBounds() (min, max float64) {
	return f.minX, f.maxX
}

// YBounds returns the extent of the vertical axis.
func (f *Frame) YBounds() (min, max float64) {
	return f.minY, f.maxY
}

// Ranges returns the lengths of the horizontal and vertical axes.
// Both are always positive.
func (f *Frame) Ranges() (x, y float64) {
	return f.rangeX, f.rangeY
}

// XScale returns the scale mapping the horizontal axis to [0, 1].
func (f *Frame) XScale() scale.Linear {
	return scale.Linear{Min: f.minX, Max: f.maxX}
}

// YScale returns the scale mapping the vertical axis to [0, 1].
func (f *Frame) YScale() scale.Linear {
	return scale.Linear{Min: f.minY, Max: f.maxY}
}

// PlotWidth returns the number of column steps between the minimum
// and maximum of the horizontal axis.
func (f *Frame) PlotWidth() int {
	return f.width - Pad
}

// XToColumn returns the canvas column of x. The result may be outside
// the canvas if x is outside the frame.
func (f *Frame) XToColumn(x float64) int {
	return int(math.Round(float64(f.width-Pad) * f.XScale().Map(x)))
}

// YToRow returns the canvas row of y. Row 0 is the top of the canvas,
// so larger values of y map to smaller rows. The result may be
// outside the canvas if y is outside the frame.
func (f *Frame) YToRow(y float64) int {
	fromBottom := int(math.Round(float64(f.height-Pad) * f.YScale().Map(y)))
	return f.height - fromBottom - 1
}

// PointToCell returns the canvas row and column of point (x, y).
func (f *Frame) PointToCell(x, y float64) (row, column int) {
	return f.YToRow(y), f.XToColumn(x)
}
