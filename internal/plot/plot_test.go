// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aclements/termplot/internal/data"
	"github.com/aclements/termplot/internal/frame"
)

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		mod  func(o *Options)
		ok   bool
	}{
		{"default", func(o *Options) {}, true},
		{"count", func(o *Options) { o.Mode = data.Count }, true},
		{"cdf", func(o *Options) { o.CDF = true }, true},
		{"cdf log y", func(o *Options) { o.CDF, o.LogY = true, true }, true},
		{"empty marks", func(o *Options) { o.Marks = "" }, true},
		{"cdf row index", func(o *Options) { o.CDF, o.RowIndexX = true, true }, false},
		{"cdf log x", func(o *Options) { o.CDF, o.LogX = true, true }, false},
		{"cdf transpose", func(o *Options) { o.CDF, o.Transpose = true, true }, false},
		{"narrow", func(o *Options) { o.Width = 2 }, false},
		{"short", func(o *Options) { o.Height = 0 }, false},
		{"bad mode", func(o *Options) { o.Mode = 7 }, false},
		{"bad marks", func(o *Options) { o.Marks = "@+" }, false},
	} {
		o := DefaultOptions()
		test.mod(&o)
		err := o.Validate()
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		} else if !test.ok && err == nil {
			t.Errorf("%s: want error", test.name)
		}
	}
}

func line() *data.Data {
	d := new(data.Data)
	d.AddRow(0, 1)
	d.AddRow(1, 2)
	d.AddRow(2, 3)
	return d
}

func TestRender(t *testing.T) {
	res, err := Render(line(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	rows := res.Canvas.Rows()
	if len(rows) != DefaultHeight || len(rows[0]) != DefaultWidth {
		t.Fatalf("canvas is %dx%d", len(rows[0]), len(rows))
	}
	for _, p := range []struct{ row, col int }{{26, 0}, {14, 35}, {1, 70}} {
		if g := rows[p.row][p.col]; g != '@' {
			t.Errorf("(%d, %d) = %q, want '@'", p.row, p.col, g)
		}
	}
	if got, want := strings.Count(res.Canvas.String(), "@"), 3; got != want {
		t.Errorf("%d marks, want %d", got, want)
	}
	// The Y axis is pinned to 0, so the X axis runs along the
	// bottom row.
	if got := string(rows[39][:6]); got != "+----+" {
		t.Errorf("bottom row starts %q", got)
	}
	if min, max := res.Frame.YBounds(); min != 0 || max != 3 {
		t.Errorf("YBounds() = %v, %v", min, max)
	}
}

func TestRenderNoAxes(t *testing.T) {
	opts := DefaultOptions()
	opts.NoAxes = true
	res, err := Render(line(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if s := res.Canvas.String(); strings.ContainsAny(s, "+-|.") {
		t.Errorf("canvas has axis glyphs:\n%s", s)
	}
}

func TestRenderPure(t *testing.T) {
	d := line()
	opts := DefaultOptions()
	opts.LogX, opts.LogY, opts.Transpose = true, true, true
	if _, err := Render(d, opts); err != nil {
		t.Fatal(err)
	}
	if d.Flipped || d.Xs[2] != 2 || d.Ys[0][2] != 3 {
		t.Errorf("input modified: %+v", d)
	}
}

func TestRenderCDF(t *testing.T) {
	d := new(data.Data)
	for i := 0; i < 20; i++ {
		d.AddRow(float64(i), float64(i%5), float64(i%3)+10)
	}
	opts := DefaultOptions()
	opts.CDF = true
	res, err := Render(d, opts)
	if err != nil {
		t.Fatal(err)
	}
	if min, max := res.Frame.YBounds(); min != 0 || max != 1 {
		t.Errorf("YBounds() = %v, %v, want 0, 1", min, max)
	}
	if len(res.Data.Ys) != 2 {
		t.Fatalf("%d series, want 2", len(res.Data.Ys))
	}
	for s, ps := range res.Data.Ys {
		if last := ps[len(ps)-1]; last != 1 {
			t.Errorf("series %d ends at %v", s, last)
		}
	}
}

func TestRenderCount(t *testing.T) {
	d := new(data.Data)
	d.AddRow(1, 1, 1, 1)
	d.AddRow(2, 2)
	opts := DefaultOptions()
	opts.Mode = data.Count
	res, err := Render(d, opts)
	if err != nil {
		t.Fatal(err)
	}
	s := res.Canvas.String()
	if !strings.Contains(s, "3") || !strings.Contains(s, "@") {
		t.Errorf("count plot:\n%s", s)
	}
}

func TestRenderErrors(t *testing.T) {
	nan := math.NaN()
	empty := new(data.Data)
	empty.AddRow(nan, nan)
	if _, err := Render(empty, DefaultOptions()); !errors.Is(err, frame.ErrNoData) {
		t.Errorf("no data: got %v, want ErrNoData", err)
	}

	many := new(data.Data)
	many.AddRow(0, 1, 2, 3)
	opts := DefaultOptions()
	opts.Marks = "@*"
	if _, err := Render(many, opts); err == nil {
		t.Error("too many series: want error")
	}

	ragged := &data.Data{Xs: []float64{0, 1}, Ys: [][]float64{{1}}}
	if _, err := Render(ragged, DefaultOptions()); err == nil {
		t.Error("ragged data: want error")
	}

	opts = DefaultOptions()
	opts.CDF, opts.LogX = true, true
	if _, err := Render(line(), opts); err == nil {
		t.Error("invalid options: want error")
	}
}
