// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

// The SSD1351 drives 128x128 color OLED panels such as Adafruit product
// 1431. The SPI interface has no MISO connection: it is write-only.
//
// https://www.adafruit.com/products/1431
//
// The driver keeps an off-chip framebuffer and only touches the bus when one
// of the Display methods is called.

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/gaugette/ssd1351/font"
	"github.com/gaugette/ssd1351/font5x8"
	"github.com/gaugette/ssd1351/image16bit"
)

// defaultMaxTxSize caps data chunks when the SPI connection does not declare
// its own limit. 1024 is the spidev per-call ceiling the original driver was
// written against.
const defaultMaxTxSize = 1024

// DefaultOpts is the recommended default options: a 128x128 panel with a
// double-height buffer so a future scroll window has somewhere to live.
var DefaultOpts = Opts{
	W:       128,
	H:       128,
	BufferW: 128,
	BufferH: 256,
}

// Opts defines the options for the device.
type Opts struct {
	// W and H are the panel dimensions. Only 128x128 is implemented;
	// anything else fails at Init time.
	W int
	H int
	// BufferW and BufferH are the framebuffer dimensions. BufferH must be
	// a multiple of 8 and defaults to H (BufferW to W) when zero.
	BufferW int
	BufferH int
	// ColOffset is the buffer column Display starts reading from.
	ColOffset int
	// Flipped declares an upside-down mounting. Carried for future remap
	// support; not acted upon.
	Flipped bool
}

// Dev is an open handle to the display controller.
type Dev struct {
	// Communication.
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinOut
	// maxTxSize is the data chunk ceiling imposed by the transport.
	maxTxSize int
	// dataMode tracks the D/C line level so sendCommand and sendData are
	// each self-contained.
	dataMode bool

	opts   Opts
	buffer *image16bit.VerticalPage
	font   *font5x8.Font
}

// NewSPI returns a Dev that communicates over SPI to an SSD1351 display
// controller.
//
// dc is the data/command pin (high for data) and rst the active-low reset
// pin. Both are required; the panel cannot be driven without them. The
// returned Dev holds the idle pin state (reset inactive, command mode) but
// does not touch the panel until Init.
func NewSPI(p spi.Port, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ssd1351: dc pin is required")
	}
	if rst == nil || rst == gpio.INVALID {
		return nil, errors.New("ssd1351: reset pin is required")
	}
	c, err := p.Connect(20*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	maxTxSize := defaultMaxTxSize
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 {
			maxTxSize = m
		}
	}
	// Idle state: reset inactive, D/C in command mode.
	if err := rst.Out(gpio.High); err != nil {
		return nil, err
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	bufW, bufH := opts.BufferW, opts.BufferH
	if bufW == 0 {
		bufW = opts.W
	}
	if bufH == 0 {
		bufH = opts.H
	}
	d := &Dev{
		c:         c,
		dc:        dc,
		rst:       rst,
		maxTxSize: maxTxSize,
		opts:      *opts,
		buffer:    image16bit.NewVerticalPage(image.Rect(0, 0, bufW, bufH)),
		font:      font5x8.Font5x8,
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1351.Dev{%s, %s, %dx%d}", d.c, d.dc, d.opts.W, d.opts.H)
}

// Init resets the panel and issues the configuration command stream. It must
// be called once before any Display call.
//
// An unsupported resolution fails here, before the reset pin or the bus is
// touched.
func (d *Dev) Init() error {
	if d.opts.W != 128 || d.opts.H != 128 {
		return fmt.Errorf("ssd1351: unsupported resolution %dx%d; only 128x128 is implemented", d.opts.W, d.opts.H)
	}
	time.Sleep(1 * time.Millisecond)
	if err := d.Reset(); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	initDisplay(&eh)
	return eh.err
}

// Reset pulses the reset pin. The panel requires the line to stay low for at
// least 10ms; do not shorten the sleep.
func (d *Dev) Reset() error {
	eh := errorHandler{d: d}
	eh.rstOut(gpio.Low)
	time.Sleep(10 * time.Millisecond)
	eh.rstOut(gpio.High)
	return eh.err
}

// Buffer returns the framebuffer. Mutating it is how everything else draws;
// nothing reaches the panel until a Display call.
func (d *Dev) Buffer() *image16bit.VerticalPage {
	return d.buffer
}

// DrawPixel sets or clears one pixel in the framebuffer. Out of range
// coordinates are silently ignored.
func (d *Dev) DrawPixel(x, y int, on bool) {
	d.buffer.SetBit(x, y, image16bit.Bit(on))
}

// Clear blanks the framebuffer.
func (d *Dev) Clear() {
	d.buffer.Clear()
}

// ClearBlock turns off every pixel in the rectangle of dx x dy pixels with
// its top-left corner at (x0, y0).
func (d *Dev) ClearBlock(x0, y0, dx, dy int) {
	d.buffer.ClearBlock(x0, y0, dx, dy)
}

// DumpBuffer writes a diagnostic rendering of the framebuffer to w.
func (d *Dev) DumpBuffer(w io.Writer) error {
	return d.buffer.Dump(w)
}

// Display transfers the framebuffer to the panel, reading from the
// configured column offset.
func (d *Dev) Display() error {
	return d.DisplayBlock(d.buffer, 0, 0, d.opts.W, d.opts.ColOffset)
}

// DisplayCols transfers count columns starting at startCol.
func (d *Dev) DisplayCols(startCol, count int) error {
	return d.DisplayBlock(d.buffer, 0, startCol, count, d.opts.ColOffset)
}

// DisplayBlock transfers a window of an arbitrary buffer, which may be an
// auxiliary bitmap rather than the device's own. row and the bitmap height
// must be multiples of 8; see displayBlock.
func (d *Dev) DisplayBlock(bitmap *image16bit.VerticalPage, row, col, colCount, colOffset int) error {
	eh := errorHandler{d: d}
	displayBlock(&eh, bitmap, row, col, colCount, colOffset)
	return eh.err
}

// Invert sets the panel to inverted (true) or normal (false) rendering. It
// affects the panel only, not the framebuffer.
func (d *Dev) Invert(blackOnWhite bool) error {
	b := normalDisplay
	if blackOnWhite {
		b = invertDisplay
	}
	eh := errorHandler{d: d}
	eh.sendCommand(b)
	return eh.err
}

// Halt turns the display off. Init brings it back.
func (d *Dev) Halt() error {
	eh := errorHandler{d: d}
	eh.sendCommand(displayOff)
	return eh.err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image16bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.W, d.opts.H)
}

// Draw implements display.Drawer: it renders src into the framebuffer and
// synchronously transfers the result to the panel.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.buffer, r.Intersect(d.Bounds()), src, sp)
	return d.Display()
}

// DrawTextFont renders s at (x, y) with a variable-width kerned font and
// returns the final cursor position.
func (d *Dev) DrawTextFont(x, y int, s string, f *font.Font) int {
	return d.buffer.DrawText(x, y, s, f)
}

// TextWidth returns the width of s in the given font, including kerning and
// inter-character gaps.
func (d *Dev) TextWidth(s string, f *font.Font) int {
	return d.buffer.TextWidth(s, f)
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
