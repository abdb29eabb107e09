package bibtex

import "github.com/osu-libraries/bibconv/diag"

// Entry and Field mirror rawEntry/rawField, exported so biblatex (a
// superset of BibTeX's brace-and-comma surface syntax) can reuse this
// package's lexer instead of duplicating it.
type Entry struct {
	EntryType string
	Key       string
	Fields    []Field
}

type Field struct {
	Tag   string
	Value string
}

// Lex scans src and returns every "@type{key, field = value, ...}" entry it
// finds, in the same recognised surface syntax bibtex's own reader uses.
func Lex(src string) []Entry {
	return LexWithDiag(src, nil, "")
}

// LexWithDiag is Lex plus a diagnostic sink for warnings raised while
// lexing (currently: an unresolved @string macro reference passed through
// verbatim). sink may be nil.
func LexWithDiag(src string, sink *diag.Sink, filename string) []Entry {
	raw := newLexer(src).withDiag(sink, filename).ParseEntries()
	out := make([]Entry, len(raw))
	for i, e := range raw {
		fields := make([]Field, len(e.Fields))
		for j, f := range e.Fields {
			fields[j] = Field{Tag: f.Tag, Value: f.Value}
		}
		out[i] = Entry{EntryType: e.EntryType, Key: e.Key, Fields: fields}
	}
	return out
}
