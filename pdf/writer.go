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
	"errors"
	"fmt"
	"io"
	"os"
)

// Putter is the interface for writing indirect objects to a PDF document.
// It is implemented by [*Writer] and [*Data].
type Putter interface {
	// Alloc allocates an object number for an indirect object.
	Alloc() Reference

	// Put writes an indirect object to the document.
	Put(ref Reference, obj Object) error

	// OpenStream adds a stream object to the document.  Data written to
	// the returned writer is passed through the given filters (in
	// order) before it is stored.  The stream is registered under ref
	// when the writer is closed.
	OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error)
}

// Writer represents a PDF file open for writing.
type Writer struct {
	// Version is the PDF version used in this file.
	Version Version

	w       *posWriter
	xref    map[uint32]int64
	nextRef uint32
	closed  bool
}

// NewWriter prepares a PDF file for writing.
//
// Close must be called once all objects have been added, to write the
// cross-reference table and the file trailer.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		Version: ver,

		w:       &posWriter{w: w},
		xref:    make(map[uint32]int64),
		nextRef: 1,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Create creates the named PDF file and opens it for output.  If a previous
// file with the same name exists, it is overwritten.  After writing is
// complete, Close must be called to write the trailer and to close the
// underlying file.
func Create(name string, ver Version) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return NewWriter(fd, ver)
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	res := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return res
}

// Put writes an object to the PDF file, as an indirect object.  The
// reference ref must have been allocated using [Writer.Alloc] and must not
// have been used before.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.closed {
		return errClosed
	}
	if _, seen := pdf.xref[ref.Number()]; seen {
		return fmt.Errorf("object %d already written", ref.Number())
	}
	if obj == nil {
		// missing objects are treated as null
		pdf.xref[ref.Number()] = -1
		return nil
	}

	pdf.xref[ref.Number()] = pdf.w.pos

	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number(), ref.Generation())
	if err != nil {
		return err
	}
	err = obj.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	return err
}

// OpenStream adds a stream object to the PDF file.  The stream data is
// buffered, passed through the given filters, and written out when the
// returned writer is closed.
func (pdf *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	if pdf.closed {
		return nil, errClosed
	}

	streamDict := Dict{}
	for key, val := range dict {
		streamDict[key] = val
	}

	sw := &streamWriter{
		pdf:  pdf,
		ref:  ref,
		dict: streamDict,
	}
	var w io.WriteCloser = withDummyClose{&sw.buf}
	var err error
	for _, filter := range filters {
		w, err = filter.Encode(w)
		if err != nil {
			return nil, err
		}
		name, parms, err := filter.Info()
		if err != nil {
			return nil, err
		}
		appendFilter(streamDict, name, parms)
	}
	sw.w = w
	return sw, nil
}

// Close writes the cross-reference table and the file trailer, and closes
// the underlying io.Writer if it has a Close method.  The catalog reference
// is required; info may be zero if the document has no info dictionary.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.closed {
		return errClosed
	}
	if catalog == 0 {
		return errors.New("missing document catalog")
	}
	pdf.closed = true

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	if closer, ok := pdf.w.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for i := uint32(1); i < pdf.nextRef; i++ {
		pos, ok := pdf.xref[i]
		if ok && pos >= 0 {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n", pos, 0)
		} else {
			// free object
			_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
		}
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type streamWriter struct {
	pdf    *Writer
	ref    Reference
	dict   Dict
	buf    bytes.Buffer
	w      io.WriteCloser
	closed bool
}

func (sw *streamWriter) Write(p []byte) (int, error) {
	return sw.w.Write(p)
}

func (sw *streamWriter) Close() error {
	if sw.closed {
		return nil
	}
	sw.closed = true

	err := sw.w.Close()
	if err != nil {
		return err
	}
	sw.dict["Length"] = Integer(sw.buf.Len())

	stream := &Stream{
		Dict: sw.dict,
		R:    &sw.buf,
	}
	return sw.pdf.Put(sw.ref, stream)
}

func appendFilter(dict Dict, name Name, parms Dict) {
	switch filter := dict["Filter"].(type) {
	case nil:
		dict["Filter"] = name
		if len(parms) > 0 {
			dict["DecodeParms"] = parms
		}
	case Name:
		dict["Filter"] = Array{filter, name}
		decodeParms, _ := dict["DecodeParms"].(Dict)
		if len(parms) > 0 || len(decodeParms) > 0 {
			dict["DecodeParms"] = Array{decodeParms, parms}
		}
	case Array:
		dict["Filter"] = append(filter, name)
		decodeParms, _ := dict["DecodeParms"].(Array)
		if len(parms) > 0 || len(decodeParms) > 0 {
			for len(decodeParms) < len(filter) {
				decodeParms = append(decodeParms, nil)
			}
			dict["DecodeParms"] = append(decodeParms, parms)
		}
	}
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

type withDummyClose struct {
	io.Writer
}

func (w withDummyClose) Close() error {
	return nil
}

var errClosed = errors.New("writer is already closed")
