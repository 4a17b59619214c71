// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders a data set as a text scatter plot.
//
// Render runs the plotting pipeline as a sequence of stages, each
// producing a new value from the last:
//
//	log transforms → frame → CDF → frame → axes → points
//
// The optional stages are controlled by Options.
package plot

import (
	"errors"
	"fmt"

	"github.com/aclements/termplot/internal/canvas"
	"github.com/aclements/termplot/internal/check"
	"github.com/aclements/termplot/internal/data"
	"github.com/aclements/termplot/internal/frame"
)

// Default plot dimensions.
const (
	DefaultWidth  = 72
	DefaultHeight = 40
)

// Options control how a plot is rendered.
type Options struct {
	// Width and Height are the canvas dimensions in characters.
	Width, Height int

	// Mode selects how samples are drawn.
	Mode data.Mode

	// Marks is the mark alphabet. If empty, canvas.DefaultMarks
	// is used.
	Marks string

	// LogX and LogY apply a base-10 logarithm to the X or Y values
	// before framing.
	LogX, LogY bool

	// RowIndexX indicates the X values are input row numbers
	// rather than values read from the input.
	RowIndexX bool

	// Transpose plots X on the vertical axis.
	Transpose bool

	// CDF plots the cumulative distribution of each Y series
	// instead of the samples themselves.
	CDF bool

	// NoAxes suppresses the axis lines.
	NoAxes bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mode:   data.Dot,
		Marks:  canvas.DefaultMarks,
	}
}

// Alphabet returns the mark alphabet of o.
func (o *Options) Alphabet() string {
	if o.Marks == "" {
		return canvas.DefaultMarks
	}
	return o.Marks
}

// Validate returns an error if o is not a usable set of options.
func (o *Options) Validate() error {
	if o.Width <= frame.Pad || o.Height <= frame.Pad {
		return fmt.Errorf("plot dimensions %dx%d too small; need at least %dx%d", o.Width, o.Height, frame.Pad+1, frame.Pad+1)
	}
	switch o.Mode {
	case data.Dot, data.Count:
	default:
		return fmt.Errorf("unknown drawing mode %v", o.Mode)
	}
	if err := canvas.ValidateMarks(o.Alphabet()); err != nil {
		return err
	}
	if o.CDF {
		if o.RowIndexX {
			return errors.New("CDF is only over the Y value; the row index X would have no effect")
		}
		if o.LogX {
			return errors.New("CDF is only over the Y value and changes the axes; logarithmic X would have no effect")
		}
		if o.Transpose {
			return errors.New("CDF is only over the Y value; transposing would have no effect")
		}
	}
	return nil
}

// A Result is a rendered plot.
type Result struct {
	// Data is the data that was drawn, after all transformations.
	Data *data.Data

	// Frame is the frame Data was drawn in.
	Frame *frame.Frame

	// Canvas is the drawn plot.
	Canvas *canvas.Canvas
}

// Render plots d according to opts. d is not modified.
//
// If the pipeline detects an internal inconsistency, Render returns a
// *check.Error describing it.
func Render(d *data.Data, opts Options) (res *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := d.Check(); err != nil {
		return nil, err
	}
	marks := opts.Alphabet()
	if len(d.Ys) > len(marks) {
		return nil, fmt.Errorf("%d series, but only %d marks", len(d.Ys), len(marks))
	}

	defer check.Catch(&err)

	if opts.Transpose {
		d2 := *d
		d2.Flipped = !d2.Flipped
		d = &d2
	}
	if opts.LogX {
		d = data.Log10X(d)
	}
	if opts.LogY {
		d = data.Log10Y(d)
	}

	f, err := frame.New(opts.Width, opts.Height, d)
	if err != nil {
		return nil, err
	}
	if opts.CDF {
		d = data.CDF(d, f)
		f, err = frame.New(opts.Width, opts.Height, d)
		if err != nil {
			return nil, fmt.Errorf("framing CDF: %w", err)
		}
	}

	c := canvas.New(opts.Height, opts.Width, marks)
	if !opts.NoAxes {
		f.DrawAxes(c)
	}
	data.Draw(d, c, f, opts.Mode)
	return &Result{Data: d, Frame: f, Canvas: c}, nil
}
