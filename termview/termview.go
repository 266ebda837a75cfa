// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termview implements a display.Drawer that renders to the terminal
// using ANSI color codes.
//
// It is a drop-in stand-in for the physical panel: point the same drawing
// code at it to preview layouts without wiring up the OLED.
package termview

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H default to the 128x128 panel geometry.
	W int
	H int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Writer defaults to a colorable stdout.
	Writer io.Writer
}

// Dev is a 2D panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of pixel and text layout.
func New(opts *Opts) *Dev {
	o := *opts
	if o.W == 0 {
		o.W = 128
	}
	if o.H == 0 {
		o.H = 128
	}
	p := o.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := o.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		bounds:  image.Rect(0, 0, o.W, o.H),
		palette: *p,
	}
}

func (d *Dev) String() string {
	return "TermView"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so later output is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer. The whole emulated panel is redrawn, one
// terminal cell per pixel; pixels outside r render black.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.bounds)
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	for y := d.bounds.Min.Y; y < d.bounds.Max.Y; y++ {
		for x := d.bounds.Min.X; x < d.bounds.Max.X; x++ {
			c := color.NRGBA{A: 255}
			if (image.Point{X: x, Y: y}).In(r) {
				c = color.NRGBAModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)).(color.NRGBA)
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
