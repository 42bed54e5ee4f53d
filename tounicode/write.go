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

package tounicode

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode/utf16"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/cidfont/pdf"
)

// Write writes the CMap in the format described in section 9.10.3 of
// PDF 32000-1:2008.
func (info *Info) Write(w io.Writer) error {
	return toUnicodeTmpl.Execute(w, info)
}

// Embed writes the CMap to the PDF file as a compressed stream.
func (info *Info) Embed(w pdf.Putter, ref pdf.Reference) error {
	stream, err := w.OpenStream(ref, nil, pdf.FilterCompress{})
	if err != nil {
		return err
	}
	err = info.Write(stream)
	if err != nil {
		return err
	}
	return stream.Close()
}

func formatCode(code cid.CID) string {
	return fmt.Sprintf("<%04x>", uint32(code))
}

func formatText(rr []rune) string {
	var text []byte
	for _, x := range utf16.Encode(rr) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%02X>", text)
}

func formatSingle(s Single) string {
	return fmt.Sprintf("%s %s", formatCode(s.Code), formatText(s.Text))
}

func formatRange(r Range) string {
	a := formatCode(r.First)
	b := formatCode(r.Last)
	if len(r.Text) == 1 {
		return fmt.Sprintf("%s %s %s", a, b, formatText(r.Text[0]))
	}
	texts := make([]string, len(r.Text))
	for i, t := range r.Text {
		texts[i] = formatText(t)
	}
	return fmt.Sprintf("%s %s [%s]", a, b, strings.Join(texts, " "))
}

const chunkSize = 100

func singleChunks(x []Single) [][]Single {
	var res [][]Single
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

func rangeChunks(x []Range) [][]Range {
	var res [][]Range
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

var toUnicodeTmpl = template.Must(template.New("CMap").Funcs(template.FuncMap{
	"SingleChunks": singleChunks,
	"Single":       formatSingle,
	"RangeChunks":  rangeChunks,
	"Range":        formatRange,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe) def
/Ordering (UCS) def
/Supplement 0 def
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
{{range SingleChunks .Singles -}}
{{len .}} beginbfchar
{{range . -}}
{{Single .}}
{{end -}}
endbfchar
{{end -}}
{{range RangeChunks .Ranges -}}
{{len .}} beginbfrange
{{range . -}}
{{Range .}}
{{end -}}
endbfrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
