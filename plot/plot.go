// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package plot renders a trace of acceleration samples to an image.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/lis3dh"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultOpts is a 640x240 trace of ±2g.
var DefaultOpts = Opts{
	Width:    640,
	Height:   240,
	Scale:    2,
	FontSize: 12,
}

// Opts represents the options of a trace.
type Opts struct {
	Width    int
	Height   int
	Scale    float64 // Vertical range in g, values beyond are clipped.
	FontSize float64
	Title    string
}

// AxisColors are the colors of the X, Y and Z traces.
var AxisColors = [3]color.NRGBA{
	{0xD0, 0x20, 0x20, 0xFF},
	{0x20, 0x90, 0x20, 0xFF},
	{0x20, 0x40, 0xD0, 0xFF},
}

const margin = 48

// Render draws samples, oldest on the left.
func Render(samples []lis3dh.Accel3, opts *Opts) (image.Image, error) {
	dc, err := draw(samples, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG draws samples and encodes the result as PNG to w.
func WritePNG(w io.Writer, samples []lis3dh.Accel3, opts *Opts) error {
	dc, err := draw(samples, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}

func draw(samples []lis3dh.Accel3, opts *Opts) (*gg.Context, error) {
	if len(samples) == 0 {
		return nil, errors.New("plot: no samples")
	}
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Width <= 2*margin || o.Height <= 2*margin {
		return nil, fmt.Errorf("plot: %dx%d is too small", o.Width, o.Height)
	}
	if o.Scale <= 0 {
		o.Scale = DefaultOpts.Scale
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultOpts.FontSize
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: o.FontSize}))

	p := projection{o: o, n: len(samples)}
	dc.SetLineWidth(1)
	for i := -2; i <= 2; i++ {
		g := float64(i) * o.Scale / 2
		y := p.y(g)
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(margin, y, float64(o.Width-margin), y)
		dc.Stroke()
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(fmt.Sprintf("%+.3gg", g), margin-6, y, 1, 0.5)
	}

	dc.SetLineWidth(1.5)
	for axis, c := range AxisColors {
		dc.SetColor(c)
		if len(samples) == 1 {
			dc.DrawPoint(p.x(0), p.y(component(samples[0], axis)), 2)
			dc.Fill()
		} else {
			for i, s := range samples {
				if i == 0 {
					dc.MoveTo(p.x(i), p.y(component(s, axis)))
				} else {
					dc.LineTo(p.x(i), p.y(component(s, axis)))
				}
			}
			dc.Stroke()
		}
		dc.DrawStringAnchored("XYZ"[axis:axis+1], float64(o.Width-margin)+8+float64(axis)*12, margin/2, 0, 0.5)
	}

	if o.Title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(o.Title, float64(o.Width)/2, margin/2, 0.5, 0.5)
	}
	return dc, nil
}

func component(a lis3dh.Accel3, axis int) float64 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// projection maps sample index and acceleration to pixel coordinates.
type projection struct {
	o Opts
	n int
}

func (p projection) x(i int) float64 {
	w := float64(p.o.Width - 2*margin)
	if p.n < 2 {
		return margin + w/2
	}
	return margin + w*float64(i)/float64(p.n-1)
}

func (p projection) y(g float64) float64 {
	if g > p.o.Scale {
		g = p.o.Scale
	} else if g < -p.o.Scale {
		g = -p.o.Scale
	}
	h := float64(p.o.Height - 2*margin)
	return margin + h/2 - g/p.o.Scale*h/2
}
