package isi

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
)

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as ISI tagged records terminated by a bare "ER" line.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	for _, ref := range collection.All() {
		writeRecord(&b, ref)
	}
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeRecord(b *strings.Builder, ref *store.Reference) {
	fmt.Fprintf(b, "PT %s\n", ptFor(ref.FindValue(store.LevelMain, "TYPE")))
	writePersons(b, ref, "AU", "AUTHOR")
	writeLine(b, "TI", ref.FindValue(store.LevelMain, "TITLE"))
	writeLine(b, "SO", ref.FindValue(store.LevelHost, "JOURNAL"))
	writeLine(b, "PY", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeLine(b, "VL", ref.FindValue(store.LevelMain, "VOLUME"))
	writeLine(b, "IS", ref.FindValue(store.LevelMain, "ISSUE"))
	writeLine(b, "BP", ref.FindValueFirstOf(store.LevelMain, "PAGES:START", "ARTICLENUMBER"))
	writeLine(b, "EP", ref.FindValue(store.LevelMain, "PAGES:STOP"))
	writeLine(b, "DI", ref.FindValue(store.LevelMain, "DOI"))
	writeLine(b, "SN", ref.FindValue(store.LevelMain, "ISSN"))
	writeLine(b, "AB", ref.FindValue(store.LevelMain, "ABSTRACT"))
	b.WriteString("ER\n\n")
}

func writeLine(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", tag, value)
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

func ptFor(canonical string) string {
	switch canonical {
	case "Book":
		return "B"
	case "Conference Proceedings", "Conference Paper":
		return "S"
	case "Patent":
		return "P"
	default:
		return "J"
	}
}
