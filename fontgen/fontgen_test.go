// Copyright 2023 The Gaugette Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fontgen

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gaugette/ssd1351/image16bit"
)

func TestFromTTF(t *testing.T) {
	f, err := FromTTF(goregular.TTF, &Opts{Size: 16, StartChar: 'A', EndChar: 'Z', GapWidth: 1})
	if err != nil {
		t.Fatal(err)
	}

	if f.StartChar != 'A' || f.EndChar != 'Z' {
		t.Errorf("covered range %q..%q", f.StartChar, f.EndChar)
	}
	if len(f.Descriptors) != 26 {
		t.Fatalf("got %d descriptors, want 26", len(f.Descriptors))
	}
	if f.CharHeight <= 0 {
		t.Errorf("CharHeight = %d", f.CharHeight)
	}
	if len(f.Kerning) != 26 {
		t.Fatalf("got %d kerning rows, want 26", len(f.Kerning))
	}
	for i, row := range f.Kerning {
		if len(row) != 26 {
			t.Fatalf("kerning row %d has %d entries, want 26", i, len(row))
		}
	}

	// Every descriptor must point at the start of its own rows and the rows
	// must tile the blob exactly.
	offset := 0
	for i, d := range f.Descriptors {
		if d.Width == 0 {
			t.Errorf("glyph %q has zero width", byte('A')+byte(i))
		}
		if int(d.Offset) != offset {
			t.Errorf("glyph %q offset = %d, want %d", byte('A')+byte(i), d.Offset, offset)
		}
		offset += ((int(d.Width) + 7) / 8) * f.CharHeight
	}
	if offset != len(f.Bitmaps) {
		t.Errorf("bitmap blob is %d bytes, descriptors account for %d", len(f.Bitmaps), offset)
	}

	// A 16 point uppercase A has ink in it.
	d := f.Descriptors[0]
	on := 0
	for p := int(d.Offset); p < int(d.Offset)+((int(d.Width)+7)/8)*f.CharHeight; p++ {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if f.Bitmaps[p]&mask != 0 {
				on++
			}
		}
	}
	if on == 0 {
		t.Error("rasterized 'A' has no lit pixels")
	}
}

func TestFromTTFDefaults(t *testing.T) {
	f, err := FromTTF(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.StartChar != ' ' || f.EndChar != '~' {
		t.Errorf("covered range %q..%q, want the printable ASCII range", f.StartChar, f.EndChar)
	}
	if f.SpaceWidth <= 0 {
		t.Errorf("SpaceWidth = %d", f.SpaceWidth)
	}
	if f.GapWidth != 1 {
		t.Errorf("GapWidth = %d, want 1", f.GapWidth)
	}
}

func TestFromTTFInvalid(t *testing.T) {
	if _, err := FromTTF([]byte("not a font"), nil); err == nil {
		t.Error("parsing garbage should have failed")
	}
	if _, err := FromTTF(goregular.TTF, &Opts{StartChar: 'Z', EndChar: 'A'}); err == nil {
		t.Error("an inverted character range should have failed")
	}
}

// A generated font must keep DrawText and TextWidth in agreement.
func TestGeneratedFontRenders(t *testing.T) {
	f, err := FromTTF(goregular.TTF, &Opts{Size: 12, StartChar: 'A', EndChar: 'Z', GapWidth: 1})
	if err != nil {
		t.Fatal(err)
	}
	v := image16bit.NewVerticalPage(image.Rect(0, 0, 128, 128))
	s := "HELLO"
	if got, want := v.DrawText(0, 0, s, f), v.TextWidth(s, f); got != want {
		t.Errorf("DrawText(%q) = %d, TextWidth = %d", s, got, want)
	}
	lit := false
	for _, b := range v.Pix {
		if b != 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("nothing rendered into the buffer")
	}
}
