// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/aclements/termplot/internal/data"
	"github.com/aclements/termplot/internal/plot"
)

// dimsFlag is the plot size given by -d.
type dimsFlag struct {
	width, height int
}

// presets are the named sizes accepted by -d, in addition to "term".
var presets = map[string]dimsFlag{
	"default": {plot.DefaultWidth, plot.DefaultHeight},
	"wide":    {90, 25},
}

func (x *dimsFlag) String() string {
	return fmt.Sprintf("%dx%d", x.width, x.height)
}

func (x *dimsFlag) Set(s string) error {
	if p, ok := presets[s]; ok {
		*x = p
		return nil
	}
	if s == "term" {
		return x.setTerm()
	}
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return fmt.Errorf("must be WxH (eg, 72x40, which is the default), wide, or term")
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return fmt.Errorf("parse width: %w", err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return fmt.Errorf("parse height: %w", err)
	}
	x.width, x.height = width, height
	return nil
}

// setTerm sets x to fill the terminal on stdout, leaving room for the
// header line and the trailing blank line.
func (x *dimsFlag) setTerm() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return err
	}
	x.width, x.height = width, height-2
	return nil
}

// logFlag records the axes given to -l.
type logFlag struct {
	x, y bool
}

func (x *logFlag) String() string {
	var axes []string
	if x.x {
		axes = append(axes, "x")
	}
	if x.y {
		axes = append(axes, "y")
	}
	return strings.Join(axes, ",")
}

func (x *logFlag) Set(s string) error {
	switch s {
	case "x":
		x.x = true
	case "y":
		x.y = true
	case "c":
		return fmt.Errorf("log c is not yet supported")
	default:
		return fmt.Errorf("takes x, y, or c")
	}
	return nil
}

// modeFlag is the drawing mode given by -m.
type modeFlag data.Mode

func (x *modeFlag) String() string {
	return data.Mode(*x).String()
}

func (x *modeFlag) Set(s string) error {
	switch s {
	case "dot":
		*x = modeFlag(data.Dot)
	case "count":
		*x = modeFlag(data.Count)
	default:
		return fmt.Errorf("takes dot (the default) or count")
	}
	return nil
}
