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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/cidfont/pdf"
	"seehuhn.de/go/cidfont/tounicode"
)

func asRectangle(r rect.Rect) *pdf.Rectangle {
	return &pdf.Rectangle{
		LLx: r.LLx,
		LLy: r.LLy,
		URx: r.URx,
		URy: r.URy,
	}
}

// Embed writes the font and all supporting objects to the PDF file and
// returns a reference to the Type0 font dictionary.  The font can then be
// used in content streams via the character codes returned by
// [Font.EncodeText].
//
// The font is embedded as a CID-keyed composite font with the Identity-H
// encoding.  All glyphs of the font are available; no subsetting is
// performed.  Each call to Embed writes an independent copy of the font,
// under a fresh BaseFont name.
func (f *Font) Embed(w pdf.Putter) (pdf.Reference, error) {
	glyphs, err := f.Glyphs()
	if err != nil {
		return 0, pdf.Wrap(err, "glyph catalog")
	}

	suffix, err := nameSuffix(f.rand)
	if err != nil {
		return 0, pdf.Wrap(err, "font name suffix")
	}
	fontName := f.sfnt.PostScriptName() + "-" + suffix

	q := f.scale()

	fontDictRef := w.Alloc()
	cidFontRef := w.Alloc()
	fontDescriptorRef := w.Alloc()
	fontFileRef := w.Alloc()
	toUnicodeRef := w.Alloc()

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(fontName),
		"Encoding":        pdf.Name("Identity-H"),
		"DescendantFonts": pdf.Array{cidFontRef},
		"ToUnicode":       toUnicodeRef,
	}

	subtype := pdf.Name("CIDFontType2")
	fontFileKey := pdf.Name("FontFile2")
	if f.sfnt.IsCFF() {
		subtype = pdf.Name("CIDFontType0")
		fontFileKey = pdf.Name("FontFile3")
	}

	ROS := pdf.Dict{
		"Registry":   pdf.String("Adobe"),
		"Ordering":   pdf.String("Identity"),
		"Supplement": pdf.Integer(0),
	}

	cidFontDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        subtype,
		"BaseFont":       pdf.Name(fontName),
		"CIDSystemInfo":  ROS,
		"FontDescriptor": fontDescriptorRef,
		"W":              encodeWidths(glyphs),
	}

	fontBBox := asRectangle(f.sfnt.FontBBoxPDF())

	ascent := f.sfnt.Ascent.AsFloat(q)
	capHeight := f.sfnt.CapHeight.AsFloat(q)
	if f.sfnt.CapHeight == 0 {
		capHeight = ascent
	}

	fd := &Descriptor{
		FontName:    fontName,
		Flags:       makeFlags(f.sfnt),
		FontBBox:    fontBBox,
		ItalicAngle: f.sfnt.ItalicAngle,
		Ascent:      ascent,
		Descent:     f.sfnt.Descent.AsFloat(q),
		CapHeight:   capHeight,
		XHeight:     f.sfnt.XHeight.AsFloat(q),
		StemV:       0,
	}
	fontDescriptor := fd.AsDict()
	fontDescriptor[fontFileKey] = fontFileRef

	err = w.Put(fontDictRef, fontDict)
	if err != nil {
		return 0, pdf.Wrap(err, "Type0 font dict")
	}
	err = w.Put(cidFontRef, cidFontDict)
	if err != nil {
		return 0, pdf.Wrap(err, "CIDFont dict")
	}
	err = w.Put(fontDescriptorRef, fontDescriptor)
	if err != nil {
		return 0, pdf.Wrap(err, "font descriptor")
	}

	// The font program is included unmodified.  See section 9.9 of
	// PDF 32000-1:2008.
	fontFileDict := pdf.Dict{
		"Subtype": pdf.Name("CIDFontType0C"),
	}
	fontFileStream, err := w.OpenStream(fontFileRef, fontFileDict, pdf.FilterCompress{})
	if err != nil {
		return 0, pdf.Wrap(err, "font file stream")
	}
	_, err = fontFileStream.Write(f.fontData)
	if err != nil {
		return 0, pdf.Wrap(err, "font program")
	}
	err = fontFileStream.Close()
	if err != nil {
		return 0, pdf.Wrap(err, "font file stream")
	}

	singles := make([]tounicode.Single, len(glyphs))
	for i, g := range glyphs {
		singles[i] = tounicode.Single{
			Code: cid.CID(g.GID),
			Text: []rune{g.Rune},
		}
	}
	err = tounicode.New(singles).Embed(w, toUnicodeRef)
	if err != nil {
		return 0, pdf.Wrap(err, "ToUnicode cmap")
	}

	return fontDictRef, nil
}
