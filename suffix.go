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
	"io"
)

// nameSuffix derives a tag of six uppercase letters from the given source
// of randomness.  The tag is appended to a font's PostScript name so that
// every embedded copy of a font gets a distinct BaseFont name.
func nameSuffix(src io.Reader) (string, error) {
	var buf [6]byte
	_, err := io.ReadFull(src, buf[:])
	if err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = 'A' + b%26
	}
	return string(buf[:]), nil
}
