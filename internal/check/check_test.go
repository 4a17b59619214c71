// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"errors"
	"strings"
	"testing"
)

func TestCatch(t *testing.T) {
	err := func() (err error) {
		defer Catch(&err)
		Failf("cell (%d, %d) out of range", 3, 4)
		return nil
	}()
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if got, want := err.Error(), "internal error: cell (3, 4) out of range"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCatchNoPanic(t *testing.T) {
	err := func() (err error) {
		defer Catch(&err)
		return nil
	}()
	if err != nil {
		t.Errorf("want nil, got %v", err)
	}
}

func TestCatchRepanics(t *testing.T) {
	defer func() {
		e := recover()
		s, ok := e.(string)
		if !ok || !strings.Contains(s, "other") {
			t.Errorf("want re-raised string panic, got %v", e)
		}
	}()
	func() (err error) {
		defer Catch(&err)
		panic("other failure")
	}()
	t.Fatal("panic was swallowed")
}
