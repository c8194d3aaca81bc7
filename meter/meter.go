// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package meter displays acceleration samples as three bar graphs on the
// terminal using ANSI color codes.
//
// Each axis gets a bar centered on zero; cells fill toward the right for
// positive values and toward the left for negative ones.
package meter

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/GermanBionicSystems/lis3dh"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	Width   int     // Cells per axis, 33 when zero.
	Scale   float64 // Full scale in g, 2 when zero. Values beyond are clipped.
	Palette *ansi256.Palette
	W       io.Writer // Defaults to stdout.

	_ struct{}
}

// Dev is a terminal accelerometer meter.
type Dev struct {
	w       io.Writer
	width   int
	scale   float64
	palette ansi256.Palette

	buf bytes.Buffer
}

var (
	background = color.NRGBA{0x20, 0x20, 0x20, 0xFF}
	axisColors = [3]color.NRGBA{
		{0xFF, 0x40, 0x40, 0xFF},
		{0x40, 0xFF, 0x40, 0xFF},
		{0x40, 0x80, 0xFF, 0xFF},
	}
)

// New returns a Dev that displays at the console. A nil opts selects the
// defaults.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       w,
		width:   opts.Width,
		scale:   opts.Scale,
		palette: *p,
	}
	if d.width <= 0 {
		d.width = 33
	}
	if d.scale <= 0 {
		d.scale = 2
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("Meter{Width:%d Scale:±%gg}", d.width, d.scale)
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes and moves to the next line.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write redraws the current line with the sample a.
func (d *Dev) Write(a lis3dh.Accel3) error {
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i, v := range [3]float64{a.X, a.Y, a.Z} {
		_, _ = fmt.Fprintf(&d.buf, "%c ", "XYZ"[i])
		lo, hi := span(v, d.scale, d.width)
		for c := 0; c < d.width; c++ {
			col := background
			if c >= lo && c < hi {
				col = axisColors[i]
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(col))
		}
		_, _ = fmt.Fprintf(&d.buf, "\033[0m %+7.3f ", v)
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// span returns the half open range of cells lit for value v. The center
// cell is always lit.
func span(v, scale float64, width int) (int, int) {
	center := width / 2
	if math.IsNaN(v) {
		return center, center + 1
	}
	n := int(math.Round(math.Abs(v) / scale * float64(width-1-center)))
	if n > width-1-center {
		n = width - 1 - center
	}
	if n > center {
		n = center
	}
	if v < 0 {
		return center - n, center + 1
	}
	return center, center + 1 + n
}
