// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"github.com/aclements/termplot/internal/canvas"
	"github.com/aclements/termplot/internal/check"
)

// tickEvery is the spacing of tick marks along an axis, in cells.
const tickEvery = 5

// DrawAxes draws the X = 0 and Y = 0 axes of f into c.
//
// An axis whose zero is outside the frame is replaced by a dotted
// line along the edge of the frame nearest to zero.
func (f *Frame) DrawAxes(c *canvas.Canvas) {
	x0Visible := f.minX <= 0 && f.maxX >= 0
	y0Visible := f.minY <= 0 && f.maxY >= 0

	var vertX, horizY float64
	if !x0Visible {
		if f.minX > 0 {
			vertX = f.minX
		} else {
			vertX = f.maxX
		}
	}
	if !y0Visible {
		if f.minY > 0 {
			horizY = f.minY
		} else {
			horizY = f.maxY
		}
	}
	horizRow, _ := f.PointToCell(0, horizY)
	_, vertCol := f.PointToCell(vertX, 0)

	// Vertical axis (X = 0).
	for row := 0; row < f.height; row++ {
		var g byte
		switch {
		case x0Visible && row%tickEvery == 0:
			g = '+'
		case x0Visible:
			g = '|'
		case row%tickEvery == 0:
			g = '.'
		default:
			g = ' '
		}
		cell, ok := c.Cell(row, vertCol)
		if !ok {
			check.Failf("invalid cell (%d, %d) for vertical axis at x = %v", row, vertCol, vertX)
		}
		*cell = canvas.AxisCell(g)
	}

	// Horizontal axis (Y = 0).
	for col := 0; col < f.width; col++ {
		var g byte
		switch {
		case y0Visible && col%tickEvery == 0:
			g = '+'
		case y0Visible:
			g = '-'
		case col%tickEvery == 0:
			g = '.'
		default:
			g = ' '
		}
		cell, ok := c.Cell(horizRow, col)
		if !ok {
			check.Failf("invalid cell (%d, %d) for horizontal axis at y = %v", horizRow, col, horizY)
		}
		*cell = canvas.AxisCell(g)
	}

	cell, ok := c.Cell(horizRow, vertCol)
	if !ok {
		check.Failf("invalid axis intersection (%d, %d)", horizRow, vertCol)
	}
	*cell = canvas.AxisCell('+')
}
