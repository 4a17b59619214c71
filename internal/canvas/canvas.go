// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas implements a fixed-size grid of text cells.
//
// Cells are stored as tagged values rather than display bytes. A
// cell is blank, an axis glyph, a single series' mark, an overlap
// count, or saturated. Bytes are only produced when the canvas is
// serialized by Rows or String.
package canvas

import (
	"bytes"
	"fmt"
	"strings"
)

// DefaultMarks is the default mark alphabet. Series i is drawn with
// DefaultMarks[i].
const DefaultMarks = "@*^!~%ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// reserved are the glyphs used by blank cells, axes, and overlap
// counts. No mark may use one of these.
const reserved = " +-.|#0123456789abcdefghijklmnopqrstuvwxyz"

// MaxCount is the largest overlap count a cell can display. It is
// shown as 'z'; one more overlap saturates the cell.
const MaxCount = 35

// A Kind is the kind of content held by a Cell.
type Kind uint8

const (
	Blank Kind = iota
	Axis
	Series
	Count
	Saturated
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Axis:
		return "axis"
	case Series:
		return "series"
	case Count:
		return "count"
	case Saturated:
		return "saturated"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MaxSeries is the number of distinct series a Cell can record.
const MaxSeries = 1 << 8

// A Cell is one character position of a Canvas. The zero Cell is
// blank.
type Cell struct {
	Kind Kind

	// v is the axis glyph, series index, or overlap count,
	// depending on Kind.
	v uint8
}

// AxisCell returns an Axis cell showing glyph g. A blank glyph
// returns a Blank cell.
func AxisCell(g byte) Cell {
	if g == ' ' {
		return Cell{}
	}
	return Cell{Kind: Axis, v: g}
}

// SeriesCell returns a cell marked by series s, which must be in [0,
// MaxSeries).
func SeriesCell(s int) Cell {
	if s < 0 || s >= MaxSeries {
		panic(fmt.Sprintf("series %d out of range", s))
	}
	return Cell{Kind: Series, v: uint8(s)}
}

// CountCell returns a cell holding overlap count n. Counts above
// MaxCount saturate.
func CountCell(n int) Cell {
	if n > MaxCount {
		return Cell{Kind: Saturated}
	}
	if n < 2 {
		panic(fmt.Sprintf("overlap count %d out of range", n))
	}
	return Cell{Kind: Count, v: uint8(n)}
}

// AxisGlyph returns the glyph of an Axis cell.
func (c Cell) AxisGlyph() byte {
	return c.v
}

// Series returns the series index of a Series cell.
func (c Cell) Series() int {
	return int(c.v)
}

// Count returns the overlap count of a Count cell, in [2, MaxCount].
func (c Cell) Count() int {
	return int(c.v)
}

// A Canvas is a rows × columns grid of cells. Row 0 is the top row.
type Canvas struct {
	stride int
	cells  []Cell
	marks  string
}

// New returns a blank canvas with the given dimensions. Series cells
// are displayed using the glyphs in marks.
func New(rows, columns int, marks string) *Canvas {
	if rows < 0 || columns < 0 {
		panic("negative canvas dimensions")
	}
	return &Canvas{
		stride: columns,
		cells:  make([]Cell, rows*columns),
		marks:  marks,
	}
}

// Size returns the number of rows and columns in c.
func (c *Canvas) Size() (rows, columns int) {
	if c.stride == 0 {
		return 0, 0
	}
	return len(c.cells) / c.stride, c.stride
}

// Marks returns the mark alphabet of c.
func (c *Canvas) Marks() string {
	return c.marks
}

// Cell returns the cell at (row, column). It returns nil, false if
// the position is outside the canvas.
func (c *Canvas) Cell(row, column int) (*Cell, bool) {
	rows, columns := c.Size()
	if row < 0 || row >= rows || column < 0 || column >= columns {
		return nil, false
	}
	return &c.cells[row*c.stride+column], true
}

// Glyph returns the display byte for cell.
func (c *Canvas) Glyph(cell Cell) byte {
	switch cell.Kind {
	case Blank:
		return ' '
	case Axis:
		return cell.AxisGlyph()
	case Series:
		if cell.Series() >= len(c.marks) {
			panic(fmt.Sprintf("series %d has no mark", cell.Series()))
		}
		return c.marks[cell.Series()]
	case Count:
		if cell.Count() < 2 || cell.Count() > MaxCount {
			panic(fmt.Sprintf("count %d out of range", cell.Count()))
		}
		return "0123456789abcdefghijklmnopqrstuvwxyz"[cell.Count()]
	case Saturated:
		return '#'
	}
	panic(fmt.Sprintf("bad cell kind %v", cell.Kind))
}

// Rows returns the display bytes of each row of c, top to bottom.
func (c *Canvas) Rows() [][]byte {
	rows, columns := c.Size()
	out := make([][]byte, rows)
	buf := make([]byte, rows*columns)
	for i := range out {
		row := buf[i*columns : (i+1)*columns : (i+1)*columns]
		for j, cell := range c.cells[i*columns : (i+1)*columns] {
			row[j] = c.Glyph(cell)
		}
		out[i] = row
	}
	return out
}

// String returns the rows of c, each followed by a newline.
func (c *Canvas) String() string {
	var buf bytes.Buffer
	for _, row := range c.Rows() {
		buf.Write(row)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// ValidateMarks checks that marks is usable as a mark alphabet. Every
// mark must be a distinct printable ASCII character that cannot be
// confused with a blank, axis, or count glyph.
func ValidateMarks(marks string) error {
	if marks == "" {
		return fmt.Errorf("mark alphabet is empty")
	}
	seen := make(map[byte]bool)
	for i := 0; i < len(marks); i++ {
		m := marks[i]
		if m <= ' ' || m > '~' {
			return fmt.Errorf("mark %q is not a printable ASCII character", m)
		}
		if strings.IndexByte(reserved, m) >= 0 {
			return fmt.Errorf("mark %q collides with an axis or count glyph", m)
		}
		if seen[m] {
			return fmt.Errorf("mark %q appears more than once", m)
		}
		seen[m] = true
	}
	return nil
}
