// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/aclements/termplot/internal/data"
	"github.com/aclements/termplot/internal/plot"
)

// writePlot writes a one-line header giving the bounds of res and, in
// dot mode, the series legend, followed by the plot itself.
func writePlot(w io.Writer, res *plot.Result, opts plot.Options) error {
	bw := bufio.NewWriter(w)

	minX, maxX := res.Frame.XBounds()
	minY, maxY := res.Frame.YBounds()
	xLabel, yLabel := "x", "y"
	if opts.LogX {
		xLabel = "log x"
	}
	if opts.LogY {
		yLabel = "log y"
	}
	if opts.CDF {
		// X is now in the units of the input Y values.
		xLabel, yLabel = "y", "cdf"
		if opts.LogY {
			xLabel = "log y"
		}
	}
	if opts.Transpose {
		// The frame's horizontal axis is the Y values.
		xLabel, yLabel = yLabel, xLabel
	}
	fmt.Fprintf(bw, "    %s: [%s - %s]", xLabel, formatFloat(minX), formatFloat(maxX))
	fmt.Fprintf(bw, "    %s: [%s - %s]", yLabel, formatFloat(minY), formatFloat(maxY))

	if opts.Mode == data.Dot {
		marks := res.Canvas.Marks()
		bw.WriteString(" -- ")
		for s := range res.Data.Ys {
			if s > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "%d: %c", s, marks[s])
			if res.Data.Names != nil && res.Data.Names[s] != "" {
				fmt.Fprintf(bw, " %s", res.Data.Names[s])
			}
		}
	}
	bw.WriteString("\n")

	bw.WriteString(res.Canvas.String())
	bw.WriteString("\n")
	return bw.Flush()
}

// formatFloat formats v in the shortest decimal form that reads back
// as v, without an exponent.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
