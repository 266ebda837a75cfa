// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package fontgen rasterizes TrueType fonts into the bitmap format consumed
// by the ssd1351 text renderer.
//
// The driver itself only ever sees font.Font values; this package is the
// pipeline that produces them, typically from go:generate or a small helper
// program, so the device code never links freetype.
package fontgen

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"

	"github.com/gaugette/ssd1351/font"
)

// Opts controls the rasterization.
type Opts struct {
	// Size is the rasterization size in points.
	Size float64
	// DPI is the resolution to rasterize at. Defaults to 72.
	DPI float64
	// StartChar and EndChar delimit the covered range, inclusive.
	// Default to the printable ASCII range ' '..'~'.
	StartChar byte
	EndChar   byte
	// GapWidth is the extra spacing between adjacent glyphs. Defaults to 1.
	GapWidth int
	// SpaceWidth is the word-break width. Defaults to the advance of ' '.
	SpaceWidth int
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Size:      16,
	StartChar: ' ',
	EndChar:   '~',
	GapWidth:  1,
}

// FromTTF rasterizes a TrueType font into a font.Font.
//
// Glyph widths are the rounded-up horizontal advances, bitmaps are packed
// MSB-first with (width+7)/8 bytes per row, and the kerning table carries
// the full origin-to-origin advance for every glyph pair (the previous
// glyph's width adjusted by the TrueType kern, never negative).
func FromTTF(ttf []byte, opts *Opts) (*font.Font, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Size <= 0 {
		o.Size = DefaultOpts.Size
	}
	if o.DPI == 0 {
		o.DPI = 72
	}
	if o.StartChar == 0 && o.EndChar == 0 {
		o.StartChar = DefaultOpts.StartChar
		o.EndChar = DefaultOpts.EndChar
	}
	if o.EndChar < o.StartChar {
		return nil, fmt.Errorf("fontgen: invalid character range %q..%q", o.StartChar, o.EndChar)
	}

	ft, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontgen: %w", err)
	}
	face := truetype.NewFace(ft, &truetype.Options{
		Size:    o.Size,
		DPI:     o.DPI,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 {
		return nil, fmt.Errorf("fontgen: face has no height at size %g", o.Size)
	}
	if o.SpaceWidth == 0 {
		if adv, ok := face.GlyphAdvance(' '); ok {
			o.SpaceWidth = adv.Ceil()
		} else {
			o.SpaceWidth = height / 2
		}
	}

	n := int(o.EndChar-o.StartChar) + 1
	out := &font.Font{
		StartChar:   o.StartChar,
		EndChar:     o.EndChar,
		CharHeight:  height,
		GapWidth:    o.GapWidth,
		SpaceWidth:  o.SpaceWidth,
		Descriptors: make([]font.Descriptor, 0, n),
		Kerning:     make([][]uint8, n),
	}

	for i := 0; i < n; i++ {
		r := rune(o.StartChar + byte(i))
		width := glyphWidth(face, r)
		if width > 255 {
			return nil, fmt.Errorf("fontgen: glyph %q is %d pixels wide; the descriptor limit is 255", r, width)
		}
		if len(out.Bitmaps) > 0xFFFF {
			return nil, fmt.Errorf("fontgen: bitmap blob exceeds the 16-bit offset space at %q", r)
		}
		out.Descriptors = append(out.Descriptors, font.Descriptor{
			Width:  uint8(width),
			Offset: uint16(len(out.Bitmaps)),
		})
		out.Bitmaps = append(out.Bitmaps, rasterize(face, r, width, height, ascent)...)
	}

	for i := 0; i < n; i++ {
		out.Kerning[i] = make([]uint8, n)
		prev := rune(o.StartChar + byte(i))
		for j := 0; j < n; j++ {
			cur := rune(o.StartChar + byte(j))
			adv := int(out.Descriptors[i].Width) + face.Kern(prev, cur).Round()
			if adv < 0 {
				adv = 0
			} else if adv > 255 {
				adv = 255
			}
			out.Kerning[i][j] = uint8(adv)
		}
	}
	return out, nil
}

// glyphWidth returns the rounded-up advance of r, with a one-pixel floor so
// every covered character occupies a cell.
func glyphWidth(face xfont.Face, r rune) int {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 1
	}
	if w := adv.Ceil(); w > 0 {
		return w
	}
	return 1
}

// rasterize draws r white-on-black at the face's baseline and thresholds the
// coverage into an MSB-first bitmap, (width+7)/8 bytes per row.
func rasterize(face xfont.Face, r rune, width, height, ascent int) []byte {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(string(r), 0, float64(ascent))
	img := dc.Image()

	bitmap := make([]byte, 0, ((width+7)/8)*height)
	for row := 0; row < height; row++ {
		var b byte
		mask := byte(0x80)
		for col := 0; col < width; col++ {
			lum, _, _, _ := img.At(col, row).RGBA()
			if lum >= 0x8000 {
				b |= mask
			}
			mask >>= 1
			if mask == 0 {
				bitmap = append(bitmap, b)
				b = 0
				mask = 0x80
			}
		}
		if width%8 != 0 {
			bitmap = append(bitmap, b)
		}
	}
	return bitmap
}
