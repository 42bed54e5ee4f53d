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

// Package tounicode writes ToUnicode CMaps for composite fonts.
//
// A ToUnicode CMap maps the character codes used in a PDF content stream
// to Unicode text, so that text can be extracted from the PDF file.
// This package implements the 2-byte code space used with the Identity-H
// encoding.  See section 9.10.3 of PDF 32000-1:2008 and the Adobe
// technical note #5411, "ToUnicode Mapping File Tutorial".
package tounicode

import (
	"slices"

	"seehuhn.de/go/postscript/cid"
)

// Info holds the contents of a ToUnicode CMap.
type Info struct {
	Singles []Single
	Ranges  []Range
}

// Single maps a single character code to a unicode string.
type Single struct {
	Code cid.CID
	Text []rune
}

// Range maps a contiguous range of character codes to unicode strings.
// If Text has length one, the single code point is incremented by one for
// each code in the range.  Otherwise, Text must have length Last-First+1
// and gives the value for each code individually.
type Range struct {
	First cid.CID
	Last  cid.CID
	Text  [][]rune
}

// New builds the ToUnicode CMap for the given mappings.  The mappings are
// sorted by code, and runs of consecutive codes which map to consecutive
// code points are combined into ranges.
func New(mappings []Single) *Info {
	mm := slices.Clone(mappings)
	slices.SortFunc(mm, func(a, b Single) int {
		return int(a.Code) - int(b.Code)
	})

	info := &Info{}
	for start := 0; start < len(mm); {
		end := start + 1
		if len(mm[start].Text) == 1 {
			for end < len(mm) &&
				len(mm[end].Text) == 1 &&
				mm[end].Code == mm[end-1].Code+1 &&
				mm[end].Text[0] == mm[end-1].Text[0]+1 &&
				mm[end].Code&0xFF != 0 {
				// Ranges must not cross a byte boundary, since only the
				// last byte of the code is incremented within a range.
				end++
			}
		}
		if end-start > 1 {
			info.Ranges = append(info.Ranges, Range{
				First: mm[start].Code,
				Last:  mm[end-1].Code,
				Text:  [][]rune{mm[start].Text},
			})
		} else {
			info.Singles = append(info.Singles, mm[start])
		}
		start = end
	}
	return info
}
