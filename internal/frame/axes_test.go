// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/aclements/termplot/internal/canvas"
	"github.com/aclements/termplot/internal/check"
)

func TestDrawAxes(t *testing.T) {
	for _, test := range []struct {
		name   string
		xs, ys []float64
		want   []string
	}{
		{
			"origin",
			[]float64{-5, 5}, []float64{-3, 3},
			[]string{
				"     +      ",
				"     |      ",
				"     |      ",
				"+----+----+-",
				"     |      ",
				"     +      ",
				"     |      ",
			},
		},
		{
			"boundary",
			[]float64{5, 7}, []float64{5, 7},
			[]string{
				".           ",
				"            ",
				"            ",
				"            ",
				"            ",
				".           ",
				"+    .    . ",
			},
		},
		{
			"negative boundary",
			// X stays [-7, -5], so the vertical line is at
			// max x, the right edge of the plot area.
			[]float64{-7, -5}, []float64{-3, 3},
			[]string{
				"          . ",
				"            ",
				"            ",
				"+----+----+-",
				"            ",
				"          . ",
				"            ",
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			f, err := New(12, 7, xy(test.xs, test.ys))
			if err != nil {
				t.Fatal(err)
			}
			c := canvas.New(7, 12, canvas.DefaultMarks)
			f.DrawAxes(c)
			want := strings.Join(test.want, "\n") + "\n"
			if got := c.String(); got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestDrawAxesOffCanvas(t *testing.T) {
	f, err := New(12, 7, xy([]float64{-5, 5}, []float64{-3, 3}))
	if err != nil {
		t.Fatal(err)
	}
	c := canvas.New(3, 3, canvas.DefaultMarks)
	err = func() (err error) {
		defer check.Catch(&err)
		f.DrawAxes(c)
		return nil
	}()
	var cerr *check.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("want *check.Error, got %v", err)
	}
}
