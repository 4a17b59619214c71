// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check reports internal-consistency failures in the plotting
// pipeline.
//
// A consistency failure means two stages of the pipeline disagree
// about the data they were handed (for example, a frame built over
// one data set used to draw another). These are programmer errors,
// not input errors, so they are raised with Failf, which panics. A
// caller that renders one plot at a time can use Catch to turn such a
// panic back into an error for that render only.
package check

import "fmt"

// An Error describes an internal-consistency failure.
type Error struct {
	format string
	a      []interface{}
}

func (e *Error) Error() string {
	return "internal error: " + fmt.Sprintf(e.format, e.a...)
}

// Failf panics with an *Error for the given message.
func Failf(format string, a ...interface{}) {
	panic(&Error{format, a})
}

// Catch recovers a panic raised by Failf and stores it in *err. Any
// other panic is re-raised. It must be called directly by defer.
func Catch(err *error) {
	e := recover()
	if e2, ok := e.(*Error); ok {
		*err = e2
	} else if e != nil {
		panic(e)
	}
}
