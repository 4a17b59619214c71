// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"

	"github.com/aclements/termplot/internal/canvas"
	"github.com/aclements/termplot/internal/check"
	"github.com/aclements/termplot/internal/frame"
)

// A Mode selects how samples are drawn into a canvas.
type Mode int

const (
	// Dot draws each sample with its series' mark. When samples
	// from several series land in the same cell, the last series
	// drawn wins.
	Dot Mode = iota

	// Count draws the number of samples in each cell. A cell with
	// one sample shows that sample's series mark; cells with more
	// show the count in base 36, saturating at '#'.
	Count
)

func (m Mode) String() string {
	switch m {
	case Dot:
		return "dot"
	case Count:
		return "count"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// boundsSlack is how far outside the frame a drawn X value may fall
// before it is treated as a frame/data mismatch.
const boundsSlack = 0.001

// Draw draws the samples of d into c using the mapping of f. f must
// have been computed over d.
//
// Samples with a non-finite Y value are missing and are not drawn.
// Rows with a non-finite X value are skipped entirely.
func Draw(d *Data, c *canvas.Canvas, f *frame.Frame, mode Mode) {
	minX, maxX := f.XBounds()
	for row, x := range d.Xs {
		if !isFinite(x) {
			continue
		}
		for s, ys := range d.Ys {
			y := ys[row]
			if !isFinite(y) {
				continue
			}
			// h is the value that maps to the horizontal axis.
			h := x
			if d.Flipped {
				h = y
			}
			if h < minX-boundsSlack || h > maxX+boundsSlack {
				check.Failf("value %v of data point (%v, %v) outside frame x bounds [%v, %v]", h, x, y, minX, maxX)
			}
			var cellRow, cellCol int
			if d.Flipped {
				cellRow, cellCol = f.YToRow(x), f.XToColumn(y)
			} else {
				cellRow, cellCol = f.PointToCell(x, y)
			}
			cell, ok := c.Cell(cellRow, cellCol)
			if !ok {
				check.Failf("invalid cell (%d, %d) for data point (%v, %v)", cellRow, cellCol, x, y)
			}
			switch mode {
			case Dot:
				*cell = canvas.SeriesCell(s)
			case Count:
				*cell = countNext(*cell, s, cellRow, cellCol)
			default:
				check.Failf("unknown drawing mode %v", mode)
			}
		}
	}
}

// countNext returns the state of cell after one more sample from
// series s lands in it.
func countNext(cell canvas.Cell, s, row, col int) canvas.Cell {
	switch cell.Kind {
	case canvas.Blank, canvas.Axis:
		// First sample keeps its mark so lone points can still
		// be told apart.
		return canvas.SeriesCell(s)
	case canvas.Series:
		return canvas.CountCell(2)
	case canvas.Count:
		return canvas.CountCell(cell.Count() + 1)
	case canvas.Saturated:
		return cell
	}
	check.Failf("cell at (%d, %d) held unexpected %v value", row, col, cell.Kind)
	panic("unreachable")
}
