// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image16bit implements the off-chip framebuffer for SSD1351 class
// displays.
//
// Pixels are stored in column-major order. This makes it easy to reference a
// vertical slice of the buffer, which is what the display's vertical
// addressing mode consumes during a block transfer, and keeps the door open
// for software vertical scrolling.
//
// Each pixel owns a two-byte granule (the display RAM is 16 bits per pixel);
// an "on" pixel stores 0xF in the granule addressed by y/8 + rows*x. The
// granule layout is the SSD1351 wire format: a block transfer sends the Pix
// slice as-is.
package image16bit

import (
	"image"
	"image/color"
	"io"
)

// Bit implements a 1 bit color.
type Bit bool

// RGBA returns either all white or all black.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// Possible bitmap values.
const (
	On  Bit = true
	Off Bit = false
)

// BitModel is the color model for Bit.
var BitModel = color.ModelFunc(convertBit)

func convertBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	return Bit((r | g | b) >= 0x8000)
}

// bytesPerPixel is the only supported pixel granule size (16 bits per pixel).
const bytesPerPixel = 2

// VerticalPage is a column-major framebuffer in the SSD1351 granule layout.
//
// It implements image.Image and draw.Image so the stdlib drawing primitives
// and golang.org/x/image font drawers work against it.
type VerticalPage struct {
	// Pix holds the granule bytes. A block transfer sends a contiguous
	// sub-slice of it.
	Pix []byte
	// Stride is the number of bytes per column.
	Stride int
	// Rect is the bounds of the buffer.
	Rect image.Rectangle
}

// NewVerticalPage returns an initialized (all Off) buffer.
//
// The height must be a positive multiple of 8: the display addresses rows in
// 8-row pages, and the granule arithmetic truncates otherwise.
func NewVerticalPage(r image.Rectangle) *VerticalPage {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		panic("image16bit: empty bounds")
	}
	if h%8 != 0 {
		panic("image16bit: height must be a multiple of 8")
	}
	stride := h * bytesPerPixel
	return &VerticalPage{
		Pix:    make([]byte, w*stride),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (v *VerticalPage) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (v *VerticalPage) Bounds() image.Rectangle {
	return v.Rect
}

// At implements image.Image.
func (v *VerticalPage) At(x, y int) color.Color {
	return v.BitAt(x, y)
}

// BitAt returns the value of the granule backing (x, y). Out of range
// coordinates read as Off.
func (v *VerticalPage) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(v.Rect)) {
		return Off
	}
	return Bit(v.Pix[v.granuleOffset(x, y)] != 0)
}

// Set implements draw.Image.
func (v *VerticalPage) Set(x, y int, c color.Color) {
	v.SetBit(x, y, convertBit(c).(Bit))
}

// SetBit sets the pixel at (x, y). Out of range coordinates are silently
// ignored; text layout and scrolling math rely on this and never clip
// themselves.
func (v *VerticalPage) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(v.Rect)) {
		return
	}
	if b {
		v.Pix[v.granuleOffset(x, y)] = 0xF
	} else {
		v.Pix[v.granuleOffset(x, y)] = 0
	}
}

// granuleOffset maps (x, y) to the byte offset of its granule.
func (v *VerticalPage) granuleOffset(x, y int) int {
	return (y-v.Rect.Min.Y)/8 + v.Rect.Dy()*(x-v.Rect.Min.X)
}

// Clear turns every pixel Off.
func (v *VerticalPage) Clear() {
	for i := range v.Pix {
		v.Pix[i] = 0
	}
}

// ClearBlock turns off every pixel in the half-open rectangle
// [x0, x0+dx) x [y0, y0+dy), clipped to the buffer.
func (v *VerticalPage) ClearBlock(x0, y0, dx, dy int) {
	for x := x0; x < x0+dx; x++ {
		for y := y0; y < y0+dy; y++ {
			v.SetBit(x, y, Off)
		}
	}
}

// Dump writes the buffer to w as a text grid, one '*' or space per pixel,
// each row framed by '|'. Diagnostic only; not part of the device protocol.
func (v *VerticalPage) Dump(w io.Writer) error {
	rows, cols := v.Rect.Dy(), v.Rect.Dx()
	line := make([]byte, cols+3)
	line[0] = '|'
	line[cols+1] = '|'
	line[cols+2] = '\n'
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if v.BitAt(v.Rect.Min.X+x, v.Rect.Min.Y+y) {
				line[x+1] = '*'
			} else {
				line[x+1] = ' '
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
