// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/aclements/termplot/internal/data"
)

// A tableReader reads rows of numbers into a data set. Each input line
// is one row. Fields are separated by white space or commas.
//
// Unless rowIndexX is set, the first field of a line is its X value
// and the remaining fields are Y values for series 0, 1, and so on.
// If rowIndexX is set, the X value is the line number (counting from
// 0 across all inputs) and every field is a Y value.
//
// Fields that aren't numbers are missing values, not errors. Lines
// with no fields are skipped.
type tableReader struct {
	d         *data.Data
	rowIndexX bool

	// maxSeries is the number of series that can be labeled.
	// Fields beyond that are dropped.
	maxSeries int

	line int
}

// read adds every line of r to t. Lines may be arbitrarily long.
func (t *tableReader) read(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			t.addLine(line)
			t.line++
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (t *tableReader) addLine(line string) {
	f := strings.FieldsFunc(line, isSep)
	if len(f) == 0 {
		return
	}
	var x float64
	if t.rowIndexX {
		x = float64(t.line)
	} else {
		x, f = parseValue(f[0]), f[1:]
	}
	if len(f) > t.maxSeries {
		f = f[:t.maxSeries]
	}
	ys := make([]float64, len(f))
	for i, field := range f {
		ys[i] = parseValue(field)
	}
	t.d.AddRow(x, ys...)
}

func isSep(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// parseValue parses s as a sample value. It returns NaN if s is not a
// finite number.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
