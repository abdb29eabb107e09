// Package biblatex provides the BIBLATEXIN format plugin: biblatex is a
// superset of BibTeX's "@type{key, field = value, ...}" surface syntax, so
// this reader shares bibtex's lexer, differing only in its entry-type and
// field vocabulary (biblatex's editor roles, eprint/url handling, and
// thesis subtype fields).
package biblatex

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
)

type In struct{}

var (
	_ format.Format = (*In)(nil)
	_ format.Parser = (*In)(nil)
)

func (f *In) Name() string        { return "biblatexin" }
func (f *In) Description() string { return "biblatex bibliography database (reader)" }
func (f *In) Extensions() []string {
	return []string{"bib"}
}
func (f *In) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("@")) &&
		(bytes.Contains(peek, []byte("editora")) || bytes.Contains(peek, []byte("eprinttype")) || bytes.Contains(peek, []byte("@online")))
}

func init() {
	format.Register(&In{})
	reftype.RegisterTable(reftype.BIBLATEXIN, biblatexTable)
	pipeline.RegisterCleaner(reftype.BIBLATEXIN, cleanEntry)
}
