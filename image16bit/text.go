// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image16bit

import "github.com/gaugette/ssd1351/font"

// DrawText renders s at (x, y) using a variable-width kerned font and
// returns the final cursor position.
//
// Characters outside the font's range act as a word break: the pending
// advance is flushed once when entering a run of uncovered characters, and
// kerning state resets. Only "on" pixels are drawn, so kerned glyphs may
// overlap without erasing each other.
//
// The advance computation must stay in lockstep with TextWidth.
func (v *VerticalPage) DrawText(x, y int, s string, f *font.Font) int {
	height := f.CharHeight
	prev := -1
	prevWidth := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !f.Covers(c) {
			if prev >= 0 {
				x += f.SpaceWidth + prevWidth + f.GapWidth
			}
			prev = -1
			continue
		}
		pos := f.Index(c)
		d := f.Descriptors[pos]
		if prev >= 0 {
			x += int(f.Kerning[prev][pos]) + f.GapWidth
		}
		prev = pos
		prevWidth = int(d.Width)

		bytesPerRow := (int(d.Width) + 7) / 8
		offset := int(d.Offset)
		for row := 0; row < height; row++ {
			py := y + row
			mask := byte(0x80)
			p := offset
			for col := 0; col < int(d.Width); col++ {
				if f.Bitmaps[p]&mask != 0 {
					v.SetBit(x+col, py, On)
				}
				mask >>= 1
				if mask == 0 {
					mask = 0x80
					p++
				}
			}
			offset += bytesPerRow
		}
	}

	if prev >= 0 {
		x += prevWidth
	}
	return x
}

// TextWidth returns the width in pixels of s in the given font, allowing for
// kerning and inter-character gaps. It computes the same advances as
// DrawText without touching the buffer.
func (v *VerticalPage) TextWidth(s string, f *font.Font) int {
	x := 0
	prev := -1
	prevWidth := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !f.Covers(c) {
			if prev >= 0 {
				x += f.SpaceWidth + prevWidth + f.GapWidth
			}
			prev = -1
			continue
		}
		pos := f.Index(c)
		if prev >= 0 {
			x += int(f.Kerning[prev][pos]) + f.GapWidth
		}
		prev = pos
		prevWidth = int(f.Descriptors[pos].Width)
	}

	if prev >= 0 {
		x += prevWidth
	}
	return x
}
