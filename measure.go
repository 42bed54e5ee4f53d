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
	"errors"
	"fmt"
	"strings"
)

// EncodeText converts a string into the sequence of character codes which
// selects the string's glyphs in the embedded font.  The string is shaped
// using the font's layout rules, and each glyph is represented by its
// glyph ID as four hexadecimal digits.
//
// The returned string is suitable for use inside a hexadecimal string in a
// PDF content stream, for example with the Tj operator.
func (f *Font) EncodeText(s string) string {
	seq := f.layouter.Layout(s)
	b := &strings.Builder{}
	for _, g := range seq {
		fmt.Fprintf(b, "%04x", g.GID)
	}
	return b.String()
}

// TextWidth returns the width of the string when typeset at the given font
// size, in text space units.
func (f *Font) TextWidth(s string, size float64) float64 {
	q := f.scale()
	total := 0.0
	for _, g := range f.layouter.Layout(s) {
		total += g.Advance.AsFloat(q)
	}
	return total * size / 1000
}

// HeightAtSize returns the vertical extent of the font at the given font
// size, in text space units.  This is the distance from the font's descent
// line to its ascent line.
func (f *Font) HeightAtSize(size float64) float64 {
	yTop, yBottom := f.extent()
	return (yTop - yBottom) * size / 1000
}

// SizeAtHeight returns the font size at which the font's vertical extent
// equals the given height.  This is the inverse of [Font.HeightAtSize].
//
// An error is returned if the font's ascent and descent lines coincide,
// since no finite font size can then reach a positive height.
func (f *Font) SizeAtHeight(height float64) (float64, error) {
	yTop, yBottom := f.extent()
	if yTop == yBottom {
		return 0, errors.New("cidfont: font has zero vertical extent")
	}
	return 1000 * height / (yTop - yBottom), nil
}

// extent returns the y-coordinates of the font's ascent and descent lines
// in PDF glyph space units.  Fonts which do not declare an ascender or
// descender fall back to the font bounding box.
func (f *Font) extent() (yTop, yBottom float64) {
	q := f.scale()
	bbox := f.sfnt.FontBBoxPDF()

	yTop = f.sfnt.Ascent.AsFloat(q)
	if f.sfnt.Ascent == 0 {
		yTop = bbox.URy
	}
	yBottom = f.sfnt.Descent.AsFloat(q)
	if f.sfnt.Descent == 0 {
		yBottom = bbox.LLy
	}
	return yTop, yBottom
}
