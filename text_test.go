// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1351

import (
	"image"
	"testing"

	"github.com/gaugette/ssd1351/font5x8"
	"github.com/gaugette/ssd1351/image16bit"
)

// fakeCanvas records every SetBit call, on or off. The real buffer packs 8
// rows into one granule, so correctness of the renderer itself is asserted
// against the raw call stream instead of buffer state.
type fakeCanvas map[image.Point]image16bit.Bit

func (f fakeCanvas) SetBit(x, y int, b image16bit.Bit) {
	f[image.Point{X: x, Y: y}] = b
}

func TestDrawText(t *testing.T) {
	got := fakeCanvas{}
	drawText(got, font5x8.Font5x8, 0, 0, "A")

	// 'A' in the classic 5x8 table, one column byte per x, bit 0 on top.
	glyph := []byte{0x7e, 0x11, 0x11, 0x11, 0x7e}
	want := fakeCanvas{}
	for col, mask := range glyph {
		for row := 0; row < 8; row++ {
			want[image.Point{X: col, Y: row}] = image16bit.Bit(mask&(1<<row) != 0)
		}
	}

	if len(got) != 40 {
		t.Errorf("expected 40 pixel writes for one character, got %d", len(got))
	}
	for pt, b := range want {
		if got[pt] != b {
			t.Errorf("pixel %v = %s, want %s", pt, got[pt], b)
		}
	}
}

func TestDrawTextOffset(t *testing.T) {
	got := fakeCanvas{}
	drawText(got, font5x8.Font5x8, 10, 20, "!")

	// '!' is a single lit column (byte 0x5f in column 2).
	for row := 0; row < 8; row++ {
		wantOn := image16bit.Bit(0x5f&(1<<row) != 0)
		if b := got[image.Point{X: 12, Y: 20 + row}]; b != wantOn {
			t.Errorf("pixel (12, %d) = %s, want %s", 20+row, b, wantOn)
		}
	}
	if _, ok := got[image.Point{X: 9, Y: 20}]; ok {
		t.Error("renderer wrote left of the starting column")
	}
	if _, ok := got[image.Point{X: 15, Y: 20}]; ok {
		t.Error("renderer wrote past a 5 column glyph")
	}
}

func TestDrawTextScaled(t *testing.T) {
	got := fakeCanvas{}
	drawTextScaled(got, font5x8.Font5x8, 0, 0, "!", 2, 1)

	if len(got) != 160 {
		t.Errorf("expected 5*8*4 pixel writes, got %d", len(got))
	}
	// The lit column doubles to x 4..5, and bit rows 0-4 and 6 double to
	// y 0..9 and 12..13.
	wantOn := map[image.Point]bool{}
	for _, x := range []int{4, 5} {
		for y := 0; y < 10; y++ {
			wantOn[image.Point{X: x, Y: y}] = true
		}
		for y := 12; y < 14; y++ {
			wantOn[image.Point{X: x, Y: y}] = true
		}
	}
	for pt, b := range got {
		if bool(b) != wantOn[pt] {
			t.Errorf("pixel %v = %s, want %s", pt, b, image16bit.Bit(wantOn[pt]))
		}
	}
}

func TestDrawTextScaledAdvance(t *testing.T) {
	got := fakeCanvas{}
	drawTextScaled(got, font5x8.Font5x8, 0, 0, "!!", 2, 1)

	// The second glyph starts at 5*2+1 = 11, so its lit column is x 15..16.
	if b := got[image.Point{X: 15, Y: 0}]; b != image16bit.On {
		t.Error("second character not advanced by scale*cols + spacing")
	}
	// The spacing column is skipped over, never written.
	if _, ok := got[image.Point{X: 10, Y: 0}]; ok {
		t.Error("renderer wrote into the inter-character spacing")
	}
}
