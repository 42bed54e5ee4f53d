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
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt"
)

// Options controls details of loading a font.
// A nil *Options is equivalent to the zero Options.
type Options struct {
	// Language is the language the text is typeset in.  This can
	// affect glyph selection during shaping.
	Language language.Tag

	// GsubFeatures and GposFeatures enable or disable OpenType layout
	// features.  If nil, the shaping engine's defaults are used.
	GsubFeatures map[string]bool
	GposFeatures map[string]bool

	// Rand is the source of randomness used to make the names of
	// embedded fonts unique.  If nil, crypto/rand is used.
	Rand io.Reader
}

// Font represents a font program which has been loaded for embedding
// into PDF files.
//
// A Font can be used to lay out and measure text, and to embed the font
// program into one or more PDF documents via [Font.Embed].  A Font must
// not be used from more than one goroutine at a time.
type Font struct {
	sfnt     *sfnt.Font
	layouter *sfnt.Layouter
	fontData []byte
	rand     io.Reader

	glyphs []Glyph // computed on first use, see Font.Glyphs
}

// New loads a TrueType or OpenType font for embedding.
// The data is kept by the returned Font and must not be modified by the
// caller afterwards.
func New(data []byte, opt *Options) (*Font, error) {
	if opt == nil {
		opt = &Options{}
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cidfont: %w", err)
	}

	layouter, err := info.NewLayouter(opt.Language, opt.GsubFeatures, opt.GposFeatures)
	if err != nil {
		return nil, fmt.Errorf("cidfont: %w", err)
	}

	rnd := opt.Rand
	if rnd == nil {
		rnd = rand.Reader
	}

	return &Font{
		sfnt:     info,
		layouter: layouter,
		fontData: data,
		rand:     rnd,
	}, nil
}

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() string {
	return f.sfnt.PostScriptName()
}

// IsCFF reports whether the font program contains CFF glyph outlines.
func (f *Font) IsCFF() bool {
	return f.sfnt.IsCFF()
}

// scale returns the factor which converts font design units to PDF glyph
// space units.  PDF composite fonts use a fixed scale of 1000 units per em.
func (f *Font) scale() float64 {
	return 1000 / float64(f.sfnt.UnitsPerEm)
}
