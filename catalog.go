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
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt/glyph"
)

// Glyph is one entry of a font's glyph catalog.
type Glyph struct {
	// GID is the glyph ID.  With the Identity-H encoding this equals
	// both the character code and the CID used in the PDF file.
	GID glyph.ID

	// Width is the glyph's advance width in PDF glyph space units
	// (1/1000th of text space units).
	Width float64

	// Rune is the code point the glyph is reached from in the font's
	// character map.  Where several code points map to the same glyph,
	// the smallest one is recorded.
	Rune rune
}

// Glyphs returns the font's glyph catalog: one entry for every glyph
// reachable from the font's character map, sorted by increasing glyph ID
// and with duplicates removed.  The unmapped glyph 0 is excluded.
//
// The catalog is computed on first use and then cached for the life of
// the Font.  Callers must not modify the returned slice.
func (f *Font) Glyphs() ([]Glyph, error) {
	if f.glyphs != nil {
		return f.glyphs, nil
	}

	subtable, err := f.sfnt.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	seen := make(map[glyph.ID]Glyph)
	low, high := subtable.CodeRange()
	for r := low; r <= high; r++ {
		gid := subtable.Lookup(r)
		if gid == 0 {
			continue
		}
		if _, ok := seen[gid]; ok {
			continue
		}
		seen[gid] = Glyph{
			GID:   gid,
			Width: f.sfnt.GlyphWidthPDF(gid),
			Rune:  r,
		}
	}

	gids := maps.Keys(seen)
	slices.Sort(gids)

	glyphs := make([]Glyph, 0, len(gids))
	for _, gid := range gids {
		glyphs = append(glyphs, seen[gid])
	}

	f.glyphs = glyphs
	return glyphs, nil
}
