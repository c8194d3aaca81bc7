// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/GermanBionicSystems/lis3dh"
)

func sine(n int) []lis3dh.Accel3 {
	s := make([]lis3dh.Accel3, n)
	for i := range s {
		a := 2 * math.Pi * float64(i) / float64(n)
		s[i] = lis3dh.Accel3{X: math.Sin(a), Y: math.Cos(a), Z: 1}
	}
	return s
}

func countInk(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xFFFF || g != 0xFFFF || bl != 0xFFFF {
				n++
			}
		}
	}
	return n
}

func TestRender(t *testing.T) {
	img, err := Render(sine(100), nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 240 {
		t.Errorf("bounds = %v", b)
	}
	if countInk(img) == 0 {
		t.Error("nothing drawn")
	}
}

func TestRenderSingleSample(t *testing.T) {
	img, err := Render([]lis3dh.Accel3{{X: 10, Y: -10}}, &Opts{Width: 200, Height: 120, Title: "clipped"})
	if err != nil {
		t.Fatal(err)
	}
	if countInk(img) == 0 {
		t.Error("nothing drawn")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, nil); err == nil {
		t.Error("Render() accepted no samples")
	}
	if _, err := Render(sine(4), &Opts{Width: 10, Height: 10}); err == nil {
		t.Error("Render() accepted a tiny image")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	o := DefaultOpts
	o.Scale = 4
	if err := WritePNG(&buf, sine(32), &o); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != o.Width || b.Dy() != o.Height {
		t.Errorf("bounds = %v", b)
	}
}

func TestProjection(t *testing.T) {
	p := projection{o: DefaultOpts, n: 5}
	if y := p.y(0); y != 120 {
		t.Errorf("y(0) = %g, want 120", y)
	}
	if y := p.y(2); y != margin {
		t.Errorf("y(2) = %g, want %d", y, margin)
	}
	if y := p.y(-3); y != float64(DefaultOpts.Height-margin) {
		t.Errorf("y(-3) = %g, want clipped", y)
	}
	if x := p.x(0); x != margin {
		t.Errorf("x(0) = %g", x)
	}
	if x := p.x(4); x != float64(DefaultOpts.Width-margin) {
		t.Errorf("x(4) = %g", x)
	}
	if x := (projection{o: DefaultOpts, n: 1}).x(0); x != 320 {
		t.Errorf("single sample x = %g, want centered", x)
	}
}
