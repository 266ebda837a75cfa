// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import (
	"github.com/gaugette/ssd1351/font5x8"
	"github.com/gaugette/ssd1351/image16bit"
)

// pixelSetter is the drawing surface the fixed-font renderer writes to.
type pixelSetter interface {
	SetBit(x, y int, b image16bit.Bit)
}

// drawText decodes one font column byte per horizontal pixel, LSB as the top
// row. Every bit is written, on or off, so the renderer overwrites whatever
// was underneath. Clipping is left entirely to the buffer.
func drawText(dst pixelSetter, f *font5x8.Font, x, y int, s string) {
	for i := 0; i < len(s); i++ {
		p := int(s[i]) * f.Cols
		for col := 0; col < f.Cols; col++ {
			mask := f.Bytes[p]
			p++
			for row := 0; row < 8; row++ {
				dst.SetBit(x, y+row, image16bit.Bit(mask&0x1 != 0))
				mask >>= 1
			}
			x++
		}
	}
}

// drawTextScaled is drawText with each source pixel expanded to a
// scale x scale block and spacing blank pixels appended after each
// character.
func drawTextScaled(dst pixelSetter, f *font5x8.Font, x, y int, s string, scale, spacing int) {
	for i := 0; i < len(s); i++ {
		p := int(s[i]) * f.Cols
		for col := 0; col < f.Cols; col++ {
			mask := f.Bytes[p]
			p++
			py := y
			for row := 0; row < 8; row++ {
				on := image16bit.Bit(mask&0x1 != 0)
				for sy := 0; sy < scale; sy++ {
					px := x
					for sx := 0; sx < scale; sx++ {
						dst.SetBit(px, py, on)
						px++
					}
					py++
				}
				mask >>= 1
			}
			x += scale
		}
		x += spacing
	}
}

// DrawText renders s at (x, y) with the fixed 5x8 font. No kerning, no
// wrapping; pixels falling outside the buffer are dropped.
func (d *Dev) DrawText(x, y int, s string) {
	drawText(d.buffer, d.font, x, y, s)
}

// DrawTextScaled renders s at (x, y) with the fixed 5x8 font magnified by an
// integer scale factor, with spacing pixels between characters.
func (d *Dev) DrawTextScaled(x, y int, s string, scale, spacing int) {
	drawTextScaled(d.buffer, d.font, x, y, s, scale, spacing)
}
