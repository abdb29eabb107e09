package biblatex

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/format/bibtex"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/store"
)

var hrefPattern = regexp.MustCompile(`\\href\{([^}]*)\}\{([^}]*)\}`)

// Parse implements format.Parser, reusing bibtex's lexer for the shared
// brace-and-comma surface syntax and layering biblatex's own field
// handling on top: name-list splitting for editora/editorb/editorc, xref
// as a crossref alias, and \href{url}{text} extraction inside note-like
// fields. Editor roles and eprint fields are resolved later, by the
// converter.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	entries := bibtex.LexWithDiag(string(buf), opts.Diag, opts.SourceName)
	out := store.NewCollection()
	for _, e := range entries {
		ref := store.NewReference()
		ref.Add("REFNUM", e.Key, store.LevelMain)
		ref.Add("TYPE", e.EntryType, store.LevelMain)

		for _, fld := range e.Fields {
			switch fld.Tag {
			case "crossref", "xref":
				ref.Add("XREF", fld.Value, store.LevelMain)
				continue
			case "keywords":
				for _, kw := range splitKeywords(fld.Value) {
					ref.AddCanDup("keywords", kw, store.LevelMain)
				}
				continue
			case "author", "editor", "editora", "editorb", "editorc", "translator":
				for _, n := range name.SplitNames(fld.Value) {
					if name.IsEtAlMarker(n) {
						ref.AddCanDup(fld.Tag, name.EtAl, store.LevelMain)
						continue
					}
					ref.AddCanDup(fld.Tag, name.Parse(n, nil, nil), store.LevelMain)
				}
				continue
			case "note", "annotation":
				text, url := extractHref(fld.Value)
				ref.Add(fld.Tag, text, store.LevelMain)
				if url != "" {
					ref.AddCanDup("url", url, store.LevelMain)
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

// extractHref finds a LaTeX \href{url}{text} wrapper, which biblatex authors
// sometimes embed in a note field, and returns the anchor text with the
// wrapper stripped alongside the URL it pointed to (empty if none was
// present). The URL is not discarded: the caller attaches it under its own
// field rather than losing it.
func extractHref(s string) (text, url string) {
	m := hrefPattern.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	return hrefPattern.ReplaceAllString(s, "$2"), m[1]
}

// cleanEntry strips LaTeX grouping braces and macro markup left in field
// values before the converter sees them, same as bibtex's cleaner.
func cleanEntry(ref *store.Reference) {
	for i, e := range ref.Entries() {
		switch strings.ToUpper(e.Tag) {
		case "REFNUM", "TYPE", "XREF", "URL", "DOI":
			continue
		}
		ref.SetValue(i, pipeline.StripLaTeXGroups(e.Value))
	}
}
