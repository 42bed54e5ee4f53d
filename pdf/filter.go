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
	"compress/zlib"
	"io"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Encode wraps w so that data written to the returned writer is
	// encoded using the filter before it is passed on to w.  Closing
	// the returned writer flushes pending data and closes w.
	Encode(w io.WriteCloser) (io.WriteCloser, error)

	// Info returns the name of the filter and the decode parameters
	// needed for the stream dictionary.
	Info() (Name, Dict, error)
}

// FilterCompress is the FlateDecode (deflate compression) filter.  The
// entries of the map, if any, are used as decode parameters in the stream
// dictionary.
type FilterCompress Dict

// Encode implements the [Filter] interface.
func (f FilterCompress) Encode(w io.WriteCloser) (io.WriteCloser, error) {
	zw := zlib.NewWriter(w)
	return &flateWriter{zw: zw, orig: w}, nil
}

// Info implements the [Filter] interface.
func (f FilterCompress) Info() (Name, Dict, error) {
	parms := Dict{}
	for key, val := range f {
		parms[key] = val
	}
	return "FlateDecode", parms, nil
}

type flateWriter struct {
	zw   *zlib.Writer
	orig io.WriteCloser
}

func (w *flateWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *flateWriter) Close() error {
	err := w.zw.Close()
	if err != nil {
		return err
	}
	return w.orig.Close()
}
