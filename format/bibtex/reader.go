package bibtex

import (
	"bufio"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/store"
)

// Parse implements format.Parser: it segments and lexes the whole input,
// producing one store.Reference per "@type{key, ...}" block with BibTeX's
// own field names as raw tags (title, author, journal, ...), plus a
// REFNUM tag from the citation key and a TYPE tag from the entry type.
// Cross-referencing (crossref) and type-specific tag translation are the
// Convert stage's job, not the reader's.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	entries := newLexer(string(buf)).withDiag(opts.Diag, opts.SourceName).ParseEntries()
	out := store.NewCollection()
	for _, e := range entries {
		ref := store.NewReference()
		ref.Add("REFNUM", e.Key, store.LevelMain)
		ref.Add("TYPE", e.EntryType, store.LevelMain)

		for _, fld := range e.Fields {
			switch fld.Tag {
			case "crossref":
				ref.Add("XREF", fld.Value, store.LevelMain)
				continue
			case "keywords":
				for _, kw := range splitKeywords(fld.Value) {
					ref.AddCanDup("keywords", kw, store.LevelMain)
				}
				continue
			case "author", "editor":
				for _, n := range name.SplitNames(fld.Value) {
					if name.IsEtAlMarker(n) {
						ref.AddCanDup(fld.Tag, name.EtAl, store.LevelMain)
						continue
					}
					ref.AddCanDup(fld.Tag, name.Parse(n, nil, nil), store.LevelMain)
				}
				continue
			}
			ref.Add(fld.Tag, fld.Value, store.LevelMain)
		}

		out.Append(ref)
	}
	return out, nil
}

func splitKeywords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// cleanEntry strips LaTeX grouping braces and macro markup left in field
// values before the converter sees them (the original's bibtexin_cleanref
// and related value-cleaning passes).
func cleanEntry(ref *store.Reference) {
	for i, e := range ref.Entries() {
		switch strings.ToUpper(e.Tag) {
		case "REFNUM", "TYPE", "XREF", "URL", "DOI":
			continue
		}
		ref.SetValue(i, pipeline.StripLaTeXGroups(e.Value))
	}
}
