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

package pdf

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
	"testing"
)

func TestWriterMinimalFile(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	catalogRef := w.Alloc()
	err = w.Put(catalogRef, Dict{"Type": Name("Catalog")})
	if err != nil {
		t.Fatal(err)
	}

	err = w.Close(catalogRef, 0)
	if err != nil {
		t.Fatal(err)
	}

	body := buf.String()
	if !strings.HasPrefix(body, "%PDF-1.7\n") {
		t.Errorf("wrong header: %q", body[:16])
	}
	for _, part := range []string{
		"1 0 obj",
		"/Type /Catalog",
		"endobj",
		"xref",
		"0000000000 65535 f\r\n",
		"trailer",
		"/Root 1 0 R",
		"startxref",
		"%%EOF",
	} {
		if !strings.Contains(body, part) {
			t.Errorf("output is missing %q", part)
		}
	}
}

func TestPutTwice(t *testing.T) {
	w, err := NewWriter(io.Discard, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	ref := w.Alloc()
	err = w.Put(ref, Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	err = w.Put(ref, Integer(2))
	if err == nil {
		t.Error("duplicate object write was not detected")
	}
}

func TestCloseRequiresCatalog(t *testing.T) {
	w, err := NewWriter(io.Discard, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(0, 0)
	if err == nil {
		t.Error("missing catalog was not detected")
	}
}

func TestStreamCompressed(t *testing.T) {
	data := NewData()

	ref := data.Alloc()
	stream, err := data.OpenStream(ref, Dict{"Test": Bool(true)}, FilterCompress{})
	if err != nil {
		t.Fatal(err)
	}
	payload := "Hello, stream!"
	_, err = stream.Write([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	err = stream.Close()
	if err != nil {
		t.Fatal(err)
	}

	s, ok := data.Get(ref).(*Stream)
	if !ok {
		t.Fatalf("expected stream object, got %T", data.Get(ref))
	}
	if s.Dict["Filter"] != Name("FlateDecode") {
		t.Errorf("wrong filter: %s", Format(s.Dict["Filter"]))
	}
	if s.Dict["Test"] != Bool(true) {
		t.Error("stream dict entry lost")
	}

	r, err := zlib.NewReader(s.R)
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != payload {
		t.Errorf("wrong stream contents %q", out)
	}
}

func TestDataWrite(t *testing.T) {
	data := NewData()
	catalogRef := data.Alloc()
	err := data.Put(catalogRef, Dict{"Type": Name("Catalog")})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = data.Write(buf, V1_7, catalogRef, 0)
	if err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if !strings.Contains(body, "/Type /Catalog") {
		t.Error("catalog not written")
	}
	if !strings.Contains(body, "%%EOF") {
		t.Error("trailer not written")
	}
}
