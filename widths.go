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

// encodeWidths constructs the value of the W entry in a CIDFont dictionary
// for the given glyph catalog.  The catalog must be sorted by increasing
// glyph ID and free of duplicates, as returned by [Font.Glyphs].
//
// Runs of consecutive glyph IDs share one group of the form
//
//	firstID [w1 w2 ... wn]
//
// where the widths are given in PDF glyph space units.  A gap in the glyph
// IDs starts a new group.  See section 9.7.4.3 of PDF 32000-1:2008.
func encodeWidths(glyphs []Glyph) pdf.Array {
	var res pdf.Array
	var run pdf.Array
	for i, g := range glyphs {
		if i > 0 && g.GID == glyphs[i-1].GID+1 {
			run = append(run, pdf.Number(g.Width))
			continue
		}
		if run != nil {
			res = append(res, run)
		}
		res = append(res, pdf.Integer(g.GID))
		run = pdf.Array{pdf.Number(g.Width)}
	}
	if run != nil {
		res = append(res, run)
	}
	return res
}
