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
	"io"
	"sort"

	"golang.org/x/exp/maps"
)

// Data is an in-memory collection of indirect PDF objects.  It implements
// the [Putter] interface and can be used to inspect objects before they are
// written to a file.
type Data struct {
	objects map[Reference]Object
	lastRef uint32
}

// NewData creates an empty object collection.
func NewData() *Data {
	return &Data{
		objects: map[Reference]Object{},
	}
}

// Alloc allocates an object number for an indirect object.
func (d *Data) Alloc() Reference {
	for {
		d.lastRef++
		ref := NewReference(d.lastRef, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Put stores an indirect object in the collection.
func (d *Data) Put(ref Reference, obj Object) error {
	if obj == nil {
		delete(d.objects, ref)
	} else {
		d.objects[ref] = obj
	}
	return nil
}

// Get returns the object stored under the given reference, or nil if no
// such object exists.
func (d *Data) Get(ref Reference) Object {
	return d.objects[ref]
}

// OpenStream adds a stream object to the collection.
func (d *Data) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	streamDict := Dict{}
	for key, val := range dict {
		streamDict[key] = val
	}

	s := &Stream{
		Dict: streamDict,
	}
	d.objects[ref] = s

	var w io.WriteCloser = &dataStreamWriter{s: s}
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
	return w, nil
}

// Write writes all objects to w as a complete PDF file.  The catalog
// reference is required; info may be zero.
func (d *Data) Write(w io.Writer, ver Version, catalog, info Reference) error {
	pdf, err := NewWriter(w, ver)
	if err != nil {
		return err
	}
	pdf.nextRef = d.lastRef + 1

	refs := maps.Keys(d.objects)
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Number() < refs[j].Number()
	})

	for _, ref := range refs {
		err := pdf.Put(ref, d.objects[ref])
		if err != nil {
			return err
		}
	}

	return pdf.Close(catalog, info)
}

type dataStreamWriter struct {
	bytes.Buffer
	s *Stream
}

func (w *dataStreamWriter) Close() error {
	w.s.R = bytes.NewReader(w.Bytes())
	w.s.Dict["Length"] = Integer(w.Len())
	return nil
}
