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
	"seehuhn.de/go/cidfont/pdf"
)

// Descriptor collects the information for a PDF font descriptor.
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	// FontName is the PostScript name of the font, including the
	// subset/embedding tag where one is used.
	FontName string

	// Flags describes the style of the font.
	Flags Flags

	// FontBBox is the font bounding box in PDF glyph space units.
	FontBBox *pdf.Rectangle

	// ItalicAngle is the angle, in degrees counterclockwise from the
	// vertical, of the dominant vertical strokes of the font.
	ItalicAngle float64

	// Ascent is the maximum height above the baseline reached by glyphs
	// in this font, in PDF glyph space units.
	Ascent float64

	// Descent is the maximum depth below the baseline reached by glyphs
	// in this font (a negative number), in PDF glyph space units.
	Descent float64

	// CapHeight is the y-coordinate of the top of flat capital letters,
	// in PDF glyph space units.
	CapHeight float64

	// XHeight is the y-coordinate of the top of flat non-ascending
	// lowercase letters, in PDF glyph space units.  Zero if unknown.
	XHeight float64

	// StemV is the thickness of dominant vertical stems, in PDF glyph
	// space units.  Zero indicates an unknown stem width.
	StemV float64
}

// AsDict returns the font descriptor as a PDF dictionary.  The font file
// stream must be added by the caller, under the key matching the format of
// the embedded font program.
func (d *Descriptor) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(d.FontName),
		"Flags":       pdf.Integer(d.Flags),
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(d.Ascent),
		"Descent":     pdf.Number(d.Descent),
		"CapHeight":   pdf.Number(d.CapHeight),
		"XHeight":     pdf.Number(d.XHeight),
		"StemV":       pdf.Number(d.StemV),
	}
	if d.FontBBox != nil {
		dict["FontBBox"] = d.FontBBox
	}
	return dict
}
