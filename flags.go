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
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
)

// makeFlags returns the PDF font descriptor flags for the font.
// Composite fonts use the Identity-H encoding, which lies outside the
// Adobe standard Latin character set, so the symbolic flag is always set.
// See section 9.8.2 of PDF 32000-1:2008.
func makeFlags(info *sfnt.Font) Flags {
	flags := FlagSymbolic

	if info.IsFixedPitch() {
		flags |= FlagFixedPitch
	}
	if info.IsSerif {
		flags |= FlagSerif
	}
	if info.IsScript {
		flags |= FlagScript
	}
	if info.IsItalic {
		flags |= FlagItalic
	}

	if cffInfo, ok := info.Outlines.(*cff.Outlines); ok {
		if len(cffInfo.Private) > 0 && cffInfo.Private[0].ForceBold {
			flags |= FlagForceBold
		}
	}

	return flags
}

// Flags represents PDF font descriptor flags.
// See section 9.8.2 of PDF 32000-1:2008.
type Flags uint32

// Possible values for PDF font descriptor flags.
const (
	FlagFixedPitch  Flags = 1 << 0  // All glyphs have the same width.
	FlagSerif       Flags = 1 << 1  // Glyphs have serifs.
	FlagSymbolic    Flags = 1 << 2  // Font contains glyphs outside the Adobe standard Latin character set.
	FlagScript      Flags = 1 << 3  // Glyphs resemble cursive handwriting.
	FlagNonsymbolic Flags = 1 << 5  // Font uses the Adobe standard Latin character set or a subset of it.
	FlagItalic      Flags = 1 << 6  // Glyphs have dominant vertical strokes that are slanted.
	FlagAllCap      Flags = 1 << 16 // Font contains no lowercase letters.
	FlagSmallCap    Flags = 1 << 17 // Lowercase glyphs are small capitals.
	FlagForceBold   Flags = 1 << 18 // Glyphs are painted with extra thickness at small sizes.
)
