// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package meter

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/lis3dh"
	"github.com/maruel/ansi256"
)

func TestSpan(t *testing.T) {
	for _, tc := range []struct {
		v      float64
		lo, hi int
	}{
		{0, 16, 17},
		{2, 16, 33},
		{-2, 0, 17},
		{1, 16, 25},
		{-1, 8, 17},
		{5, 16, 33},
		{-5, 0, 17},
		{math.NaN(), 16, 17},
	} {
		lo, hi := span(tc.v, 2, 33)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("span(%g) = [%d, %d), want [%d, %d)", tc.v, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{Width: 9, Scale: 4, W: &buf})
	if s := d.String(); s != "Meter{Width:9 Scale:±4g}" {
		t.Errorf("String() = %q", s)
	}
	if err := d.Write(lis3dh.Accel3{X: 4, Y: -2, Z: 0}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\r\033[0m") {
		t.Errorf("line does not start with a reset: %q", out)
	}
	for _, want := range []string{"X ", "Y ", "Z ", "+4.000", "-2.000", "+0.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	lit := ansi256.Default.Block(axisColors[0])
	if n := strings.Count(out, lit); n != 5 {
		t.Errorf("X axis lit %d cells, want 5", n)
	}

	buf.Reset()
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\n\033[0m" {
		t.Errorf("Halt() wrote %q", buf.String())
	}
}

func TestDefaults(t *testing.T) {
	for _, o := range []*Opts{{}, nil} {
		d := New(o)
		if d.width != 33 || d.scale != 2 || d.w == nil {
			t.Errorf("unexpected defaults %s", d)
		}
	}
}
