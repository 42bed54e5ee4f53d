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

// Package cidfont embeds TrueType and OpenType fonts into PDF files as
// CID-keyed composite fonts.
//
// Fonts are loaded with [New] and embedded with [Font.Embed].  The
// embedded font uses the Identity-H encoding, where the character codes
// in content streams equal the font's glyph IDs.  [Font.EncodeText]
// converts a Go string into the corresponding character codes, and
// [Font.TextWidth], [Font.HeightAtSize] and [Font.SizeAtHeight] measure
// text without writing anything.
//
// The subordinate package [seehuhn.de/go/cidfont/pdf] provides the PDF
// object model and file writer used for the generated objects.
package cidfont
