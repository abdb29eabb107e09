// Package bibtex provides the BIBTEXIN/BIBTEXOUT format plugins: a
// brace-and-macro-aware BibTeX parser producing a raw, bibtex-tagged field
// store, and a writer rendering a canonical-tag collection back out as
// "@type{key, tag = {value}, ...}" entries.
package bibtex

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
)

// In implements BIBTEXIN.
type In struct{}

// Out implements BIBTEXOUT.
type Out struct{}

var (
	_ format.Format = (*In)(nil)
	_ format.Parser = (*In)(nil)

	_ format.Format     = (*Out)(nil)
	_ format.Serializer = (*Out)(nil)
)

func (f *In) Name() string          { return "bibtexin" }
func (f *In) Description() string   { return "BibTeX bibliography entries (reader)" }
func (f *In) Extensions() []string  { return []string{"bib", "bibtex"} }
func (f *In) CanParse(peek []byte) bool {
	return looksLikeBibtex(peek)
}

func (f *Out) Name() string         { return "bibtexout" }
func (f *Out) Description() string  { return "BibTeX bibliography entries (writer)" }
func (f *Out) Extensions() []string { return []string{"bib", "bibtex"} }
func (f *Out) CanParse(peek []byte) bool {
	return looksLikeBibtex(peek)
}

func looksLikeBibtex(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	return len(peek) > 0 && bytes.Contains(bytes.ToLower(peek), []byte("@"))
}

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.BIBTEXIN, bibtexTable)
	pipeline.RegisterCleaner(reftype.BIBTEXIN, cleanEntry)
}
