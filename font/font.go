// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font defines the variable-width bitmap font format used by the
// ssd1351 text renderer.
//
// A Font covers a contiguous byte range [StartChar, EndChar]. Glyph bitmaps
// are stored row-major in a single blob, MSB-first, with (Width+7)/8 bytes
// per row. The kerning table carries the full horizontal advance between two
// adjacent glyphs, so a glyph's own width only contributes to the advance at
// the end of a run.
//
// Font assets are typically generated from a TrueType font with the fontgen
// package.
package font

// Descriptor locates one glyph in the bitmap blob.
type Descriptor struct {
	// Width is the glyph width in pixels.
	Width uint8
	// Offset is the byte offset of the glyph's first row in Bitmaps.
	Offset uint16
}

// Font is a variable-width bitmap font with per-glyph-pair kerning.
type Font struct {
	// StartChar and EndChar delimit the covered range, inclusive.
	StartChar byte
	EndChar   byte
	// CharHeight is the height of every glyph in pixels.
	CharHeight int
	// GapWidth is added between adjacent glyphs, on top of kerning.
	GapWidth int
	// SpaceWidth is the width of a word break (any uncovered character).
	SpaceWidth int
	// Descriptors holds one entry per character in [StartChar, EndChar].
	Descriptors []Descriptor
	// Kerning[prev][cur] is the advance from the origin of glyph prev to
	// the origin of glyph cur, indexed by position in the covered range.
	Kerning [][]uint8
	// Bitmaps is the row-major glyph bitmap blob, MSB-first.
	Bitmaps []byte
}

// Covers reports whether c falls inside the covered character range.
func (f *Font) Covers(c byte) bool {
	return c >= f.StartChar && c <= f.EndChar
}

// Index returns the position of c in the covered range. The caller must
// ensure Covers(c).
func (f *Font) Index(c byte) int {
	return int(c - f.StartChar)
}
