// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image16bit

import (
	"image"
	"testing"

	"github.com/gaugette/ssd1351/font"
)

// testFont covers 'A'..'C' with hand-packed 2-row glyphs:
//
//	A (3 wide)  *.*     B (9 wide)  *********     C (2 wide)  **
//	            .*.                 ........*                 *.
var testFont = &font.Font{
	StartChar:  'A',
	EndChar:    'C',
	CharHeight: 2,
	GapWidth:   1,
	SpaceWidth: 4,
	Descriptors: []font.Descriptor{
		{Width: 3, Offset: 0},
		{Width: 9, Offset: 2},
		{Width: 2, Offset: 6},
	},
	Kerning: [][]uint8{
		{3, 4, 3},
		{9, 10, 9},
		{2, 3, 2},
	},
	Bitmaps: []byte{
		0xA0, 0x40,
		0xFF, 0x80, 0x00, 0x80,
		0xC0, 0x40,
	},
}

func TestTextWidth(t *testing.T) {
	v := NewVerticalPage(image.Rect(0, 0, 16, 16))
	for _, tc := range []struct {
		s    string
		want int
	}{
		{"", 0},
		{"A", 3},
		{"AB", 14},
		{"ABC", 17},
		// A word break flushes the pending advance once.
		{"A B", 17},
		{"A  B", 17},
		// Leading and trailing breaks with nothing pending add nothing.
		{" A", 3},
		{"A ", 8},
		{"ZAB?", 19},
		{"CAB", 17},
	} {
		if got := v.TextWidth(tc.s, testFont); got != tc.want {
			t.Errorf("TextWidth(%q) = %d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestDrawText(t *testing.T) {
	v := NewVerticalPage(image.Rect(0, 0, 16, 16))
	if got := v.DrawText(0, 0, "AB", testFont); got != 14 {
		t.Errorf("DrawText() = %d, want 14", got)
	}

	// A lights columns 0 and 2 (row 0) and column 1 (row 1); B starts at the
	// kerned advance 4+1 and lights columns 5..13. Both rows land in the same
	// 8-row granule, so the on set collapses to columns.
	wantOn := map[int]bool{0: true, 1: true, 2: true}
	for x := 5; x <= 13; x++ {
		wantOn[x] = true
	}
	for x := 0; x < 16; x++ {
		want := Bit(wantOn[x])
		if got := v.BitAt(x, 0); got != want {
			t.Errorf("column %d = %s, want %s", x, got, want)
		}
	}
}

func TestDrawTextReturnsCursor(t *testing.T) {
	v := NewVerticalPage(image.Rect(0, 0, 16, 16))
	if got := v.DrawText(3, 0, "C", testFont); got != 5 {
		t.Errorf("DrawText() = %d, want 5", got)
	}
	if v.BitAt(2, 0) != Off || v.BitAt(3, 0) != On || v.BitAt(4, 0) != On {
		t.Error("glyph not drawn at the requested origin")
	}
}

// The renderer and the measurer must agree on every advance, covered or not.
func TestDrawTextMatchesTextWidth(t *testing.T) {
	for _, s := range []string{"", "A", "AB", "ABC", "A B", "A  B", "ZAB?", "CAB", " ", "CCC"} {
		v := NewVerticalPage(image.Rect(0, 0, 64, 16))
		if got, want := v.DrawText(0, 0, s, testFont), v.TextWidth(s, testFont); got != want {
			t.Errorf("DrawText(%q) = %d, TextWidth = %d", s, got, want)
		}
	}
}

// Uncovered characters reset kerning state; the glyph after a break is
// positioned by the flushed advance, not by the pair kerning.
func TestDrawTextWordBreak(t *testing.T) {
	v := NewVerticalPage(image.Rect(0, 0, 32, 16))
	if got := v.DrawText(0, 0, "A B", testFont); got != 17 {
		t.Errorf("DrawText() = %d, want 17", got)
	}
	// B starts at 3+4+1 = 8.
	if v.BitAt(7, 0) != Off {
		t.Error("column 7 should be inside the word break")
	}
	for x := 8; x <= 16; x++ {
		if v.BitAt(x, 0) != On {
			t.Errorf("column %d should be lit by B", x)
		}
	}
}

func TestDrawTextClips(t *testing.T) {
	v := NewVerticalPage(image.Rect(0, 0, 8, 8))
	// B is 9 pixels wide; the last column falls off an 8 wide buffer.
	if got := v.DrawText(0, 0, "B", testFont); got != 9 {
		t.Errorf("DrawText() = %d, want 9", got)
	}
	for x := 0; x < 8; x++ {
		if v.BitAt(x, 0) != On {
			t.Errorf("column %d should be lit", x)
		}
	}
}
