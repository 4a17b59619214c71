// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command termplot plots numeric series as text in the terminal.
//
// termplot reads rows of numbers from its input files (or standard
// input) and prints a scatter plot of them. By default, the first
// number on each line is the X value and each following number is a
// Y value for series 0, 1, 2, and so on. Values that can't be parsed
// are treated as missing.
//
// For example, to plot the latency distribution of a benchmark:
//
//	go test -bench . -count 50 | termplot -bench ns/op -cdf
//
// Plots are drawn in one of two modes. In "dot" mode (the default),
// each series is drawn with its own mark, listed in the header line.
// In "count" mode, each cell shows how many points landed in it: a
// lone point shows its series' mark, 2 through 9 and a through z count
// overlapping points, and # marks more than 35.
//
// If an axis doesn't cross zero, termplot extends it to zero when the
// data is reasonably close to it. Otherwise, a dotted line marks the
// edge of the data nearest zero.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/termplot/internal/data"
	"github.com/aclements/termplot/internal/plot"
)

func main() {
	log.SetPrefix("termplot: ")
	log.SetFlags(0)

	var (
		dims      = dimsFlag{plot.DefaultWidth, plot.DefaultHeight}
		logAxes   logFlag
		mode      = modeFlag(data.Dot)
		flagRow   = flag.Bool("r", false, "use the input line number as the X value")
		flagT     = flag.Bool("t", false, "transpose: plot X on the vertical axis")
		flagCDF   = flag.Bool("cdf", false, "plot the cumulative distribution of each Y series")
		flagA     = flag.Bool("A", false, "don't draw axes")
		flagMarks = flag.String("marks", plot.DefaultOptions().Marks, "use `glyphs` as the series marks")
		flagBench = flag.String("bench", "", "read Go benchmark results and plot metric `unit` (eg, ns/op)")
	)
	flag.Var(&dims, "d", "plot dimensions as `WxH`, wide, or term")
	flag.Var(&logAxes, "l", "log scale `axis` x or y; may be repeated")
	flag.Var(&mode, "m", "drawing `mode`: dot or count")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := plot.Options{
		Width:     dims.width,
		Height:    dims.height,
		Mode:      data.Mode(mode),
		Marks:     *flagMarks,
		LogX:      logAxes.x,
		LogY:      logAxes.y,
		RowIndexX: *flagRow,
		Transpose: *flagT,
		CDF:       *flagCDF,
		NoAxes:    *flagA,
	}
	if *flagBench != "" && *flagRow {
		log.Fatal("-r has no effect with -bench; X is always the run number")
	}
	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if err := run(os.Stdout, paths, opts, *flagBench); err != nil {
		log.Fatal(err)
	}
}

// run reads the inputs at paths, plots them according to opts, and
// writes the plot to w. If benchUnit is non-empty, the inputs are
// read as Go benchmark results and the benchUnit metric is plotted.
func run(w io.Writer, paths []string, opts plot.Options, benchUnit string) error {
	var readOne func(io.Reader) error
	var result func() *data.Data

	maxSeries := len(opts.Alphabet())
	if benchUnit != "" {
		br := newBenchReader(benchUnit, maxSeries)
		readOne, result = br.read, br.data
	} else {
		tr := &tableReader{d: new(data.Data), rowIndexX: opts.RowIndexX, maxSeries: maxSeries}
		readOne, result = tr.read, func() *data.Data { return tr.d }
	}

	for _, path := range paths {
		if err := readPath(path, readOne); err != nil {
			return err
		}
	}

	d := result()
	if benchUnit != "" && len(d.Ys) == 0 {
		return fmt.Errorf("no benchmark results with unit %s", benchUnit)
	}
	res, err := plot.Render(d, opts)
	if err != nil {
		return err
	}
	return writePlot(w, res, opts)
}

// readPath calls read on the contents of path, or on stdin if path is
// "-".
func readPath(path string, read func(io.Reader) error) error {
	if path == "-" {
		if err := read(os.Stdin); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := read(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
