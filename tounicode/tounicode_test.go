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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name string
		in   []Single
		want *Info
	}{
		{
			name: "empty",
			in:   nil,
			want: &Info{},
		},
		{
			name: "singles only",
			in: []Single{
				{Code: 5, Text: []rune("a")},
				{Code: 9, Text: []rune("x")},
			},
			want: &Info{
				Singles: []Single{
					{Code: 5, Text: []rune("a")},
					{Code: 9, Text: []rune("x")},
				},
			},
		},
		{
			name: "consecutive codes and runes",
			in: []Single{
				{Code: 1, Text: []rune("a")},
				{Code: 2, Text: []rune("b")},
				{Code: 3, Text: []rune("c")},
				{Code: 10, Text: []rune("x")},
				{Code: 11, Text: []rune("z")},
			},
			want: &Info{
				Singles: []Single{
					{Code: 10, Text: []rune("x")},
					{Code: 11, Text: []rune("z")},
				},
				Ranges: []Range{
					{First: 1, Last: 3, Text: [][]rune{[]rune("a")}},
				},
			},
		},
		{
			name: "unsorted input",
			in: []Single{
				{Code: 3, Text: []rune("c")},
				{Code: 1, Text: []rune("a")},
				{Code: 2, Text: []rune("b")},
			},
			want: &Info{
				Ranges: []Range{
					{First: 1, Last: 3, Text: [][]rune{[]rune("a")}},
				},
			},
		},
		{
			name: "range stops at byte boundary",
			in: []Single{
				{Code: 254, Text: []rune("a")},
				{Code: 255, Text: []rune("b")},
				{Code: 256, Text: []rune("c")},
				{Code: 257, Text: []rune("d")},
			},
			want: &Info{
				Ranges: []Range{
					{First: 254, Last: 255, Text: [][]rune{[]rune("a")}},
					{First: 256, Last: 257, Text: [][]rune{[]rune("c")}},
				},
			},
		},
		{
			name: "multi-rune text stays single",
			in: []Single{
				{Code: 1, Text: []rune("ff")},
				{Code: 2, Text: []rune("fi")},
			},
			want: &Info{
				Singles: []Single{
					{Code: 1, Text: []rune("ff")},
					{Code: 2, Text: []rune("fi")},
				},
			},
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got := New(test.in)
			if d := cmp.Diff(test.want, got); d != "" {
				t.Errorf("wrong cmap contents (-want +got):\n%s", d)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	info := New([]Single{
		{Code: 65, Text: []rune("A")},
		{Code: 66, Text: []rune("B")},
		{Code: 67, Text: []rune("C")},
		{Code: 1000, Text: []rune("ß")},
	})

	buf := &bytes.Buffer{}
	err := info.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	body := buf.String()

	for _, part := range []string{
		"begincmap",
		"/CMapName /Adobe-Identity-UCS def",
		"1 begincodespacerange\n<0000> <ffff>\nendcodespacerange",
		"1 beginbfchar\n<03e8> <00DF>\nendbfchar",
		"1 beginbfrange\n<0041> <0043> <0041>\nendbfrange",
		"endcmap",
	} {
		if !strings.Contains(body, part) {
			t.Errorf("output is missing %q", part)
		}
	}
}
