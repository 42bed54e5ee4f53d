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

// Package pdf implements a minimal, write-only model of PDF files: the
// basic object types from section 7.3 of PDF 32000-1:2008, together with
// a sequential file writer which keeps track of the cross-reference
// table.  Indirect objects are added through the [Putter] interface, so
// that code producing PDF objects can work both with a [Writer] (which
// streams objects to a file) and with a [Data] object (which keeps them
// in memory).
package pdf
