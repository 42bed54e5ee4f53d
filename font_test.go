// seehuhn.de/go/cidfont - embed CID-keyed fonts into PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cidfont

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func makeFont(t *testing.T) *Font {
	t.Helper()
	F, err := New(goregular.TTF, nil)
	if err != nil {
		t.Fatal(err)
	}
	return F
}

func TestNewBadData(t *testing.T) {
	_, err := New([]byte("not a font"), nil)
	if err == nil {
		t.Error("invalid font data was not detected")
	}
}

func TestGlyphs(t *testing.T) {
	F := makeFont(t)
	glyphs, err := F.Glyphs()
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) == 0 {
		t.Fatal("empty glyph catalog")
	}

	for i, g := range glyphs {
		if g.GID == 0 {
			t.Error("unmapped glyph 0 in catalog")
		}
		if i > 0 && glyphs[i-1].GID >= g.GID {
			t.Fatalf("catalog not sorted at index %d", i)
		}
		if g.Width < 0 {
			t.Errorf("negative width for glyph %d", g.GID)
		}
	}

	again, err := F.Glyphs()
	if err != nil {
		t.Fatal(err)
	}
	if &glyphs[0] != &again[0] {
		t.Error("glyph catalog is not cached")
	}
}

func TestEncodeText(t *testing.T) {
	F := makeFont(t)

	if out := F.EncodeText(""); out != "" {
		t.Errorf("empty string encoded as %q", out)
	}

	out := F.EncodeText("AB")
	if len(out) != 8 {
		t.Fatalf("wrong length %d for %q", len(out), out)
	}
	for _, c := range out {
		isHex := c >= '0' && c <= '9' || c >= 'a' && c <= 'f'
		if !isHex {
			t.Errorf("invalid character %q in %q", c, out)
		}
	}
	if out[:4] == "0000" || out[4:] == "0000" {
		t.Errorf("missing glyph in %q", out)
	}
	if out[:4] == out[4:] {
		t.Errorf("'A' and 'B' use the same glyph in %q", out)
	}
}

func TestTextWidth(t *testing.T) {
	F := makeFont(t)

	w1 := F.TextWidth("Hello", 10)
	if w1 <= 0 {
		t.Fatalf("non-positive width %f", w1)
	}
	w2 := F.TextWidth("Hello Hello", 10)
	if w2 <= w1 {
		t.Errorf("longer string is not wider: %f <= %f", w2, w1)
	}
	w3 := F.TextWidth("Hello", 20)
	if math.Abs(w3-2*w1) > 1e-6 {
		t.Errorf("width is not linear in font size: %f != 2*%f", w3, w1)
	}
	if w := F.TextWidth("", 10); w != 0 {
		t.Errorf("empty string has width %f", w)
	}
}

func TestHeightSizeInverse(t *testing.T) {
	F := makeFont(t)

	h := F.HeightAtSize(12)
	if h <= 0 {
		t.Fatalf("non-positive height %f", h)
	}
	size, err := F.SizeAtHeight(h)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(size-12) > 1e-6 {
		t.Errorf("round trip failed: got size %f, want 12", size)
	}

	h2 := F.HeightAtSize(24)
	if math.Abs(h2-2*h) > 1e-6 {
		t.Errorf("height is not linear in font size: %f != 2*%f", h2, h)
	}
}

func TestHeightAtSizeScaled(t *testing.T) {
	F := makeFont(t)
	F.sfnt.UnitsPerEm = 2000
	F.sfnt.Ascent = 1800
	F.sfnt.Descent = -400

	// 2200 design units at 1000 units per em = 1100 glyph space units
	h := F.HeightAtSize(12)
	if math.Abs(h-13.2) > 1e-9 {
		t.Errorf("wrong height %g, want 13.2", h)
	}

	size, err := F.SizeAtHeight(13.2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(size-12) > 1e-9 {
		t.Errorf("wrong font size %g, want 12", size)
	}
}

func TestSizeAtHeightDegenerate(t *testing.T) {
	F := makeFont(t)
	F.sfnt.Ascent = 123
	F.sfnt.Descent = 123

	if h := F.HeightAtSize(12); h != 0 {
		t.Errorf("wrong height %g for coinciding ascent and descent", h)
	}
	_, err := F.SizeAtHeight(10)
	if err == nil {
		t.Error("zero vertical extent was not detected")
	}
}
