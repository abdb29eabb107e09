package nbib

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
)

const wrapColumn = 82
const continuationIndent = "      "

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as blank-line-separated NBIB records, wrapping long field
// values at 82 columns the way PubMed's own NBIB export does.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	for _, ref := range collection.All() {
		writeRecord(&b, ref)
	}
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeRecord(b *strings.Builder, ref *store.Reference) {
	writeLine(b, "PMID", ref.FindValue(store.LevelMain, "REFNUM"))
	writeLine(b, "TI", ref.FindValue(store.LevelMain, "TITLE"))
	writePersons(b, ref, "FAU", "AUTHOR")
	writeLine(b, "JT", ref.FindValue(store.LevelHost, "JOURNAL"))
	writeLine(b, "DP", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeLine(b, "VI", ref.FindValue(store.LevelMain, "VOLUME"))
	writeLine(b, "IP", ref.FindValue(store.LevelMain, "ISSUE"))
	writeLine(b, "PG", pagesRange(ref))
	writeLine(b, "IS", ref.FindValue(store.LevelMain, "ISSN"))
	writeLine(b, "AID", ref.FindValue(store.LevelMain, "DOI"))
	writeLine(b, "AB", ref.FindValue(store.LevelMain, "ABSTRACT"))
	writeLine(b, "LA", ref.FindValue(store.LevelMain, "LANGUAGE"))

	var kws []string
	kws = ref.FindValueEach(store.LevelMain, "KEYWORD", kws)
	for _, k := range kws {
		writeLine(b, "OT", k)
	}
	b.WriteString("\n")
}

func pagesRange(ref *store.Reference) string {
	start := ref.FindValue(store.LevelMain, "PAGES:START")
	end := ref.FindValue(store.LevelMain, "PAGES:STOP")
	if start == "" {
		return ref.FindValue(store.LevelMain, "ARTICLENUMBER")
	}
	if end == "" {
		return start
	}
	return start + "-" + end
}

// writeLine emits one field, padding the tag to four columns and wrapping
// the value so no physical line exceeds wrapColumn characters.
func writeLine(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	prefix := fmt.Sprintf("%-4s- ", tag)
	words := strings.Fields(value)
	if len(words) == 0 {
		return
	}

	line := prefix + words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > wrapColumn {
			b.WriteString(line)
			b.WriteString("\n")
			line = continuationIndent + w
			continue
		}
		line += " " + w
	}
	b.WriteString(line)
	b.WriteString("\n")
}

func writePersons(b *strings.Builder, ref *store.Reference, tag, internalTag string) {
	var people []string
	people = ref.FindValueEach(store.LevelMain, internalTag, people)
	for _, p := range people {
		if p == name.EtAl {
			writeLine(b, tag, "et al.")
			continue
		}
		writeLine(b, tag, name.Build(p))
	}
}
