package ris

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
)

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as newline-separated RIS records.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	for _, ref := range collection.All() {
		writeRecord(&b, ref)
	}
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeRecord(b *strings.Builder, ref *store.Reference) {
	fmt.Fprintf(b, "TY  - %s\n", tyFor(ref.FindValue(store.LevelMain, "TYPE")))

	writeLine(b, "TI", ref.FindValue(store.LevelMain, "TITLE"))
	writePersons(b, ref, "AU", "AUTHOR")
	writePersons(b, ref, "A2", "EDITOR")
	writeLine(b, "PY", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeLine(b, "JO", ref.FindValue(store.LevelHost, "JOURNAL"))
	writeLine(b, "VL", ref.FindValue(store.LevelMain, "VOLUME"))
	writeLine(b, "IS", ref.FindValue(store.LevelMain, "ISSUE"))
	writeLine(b, "SP", ref.FindValueFirstOf(store.LevelMain, "PAGES:START", "ARTICLENUMBER"))
	writeLine(b, "EP", ref.FindValue(store.LevelMain, "PAGES:STOP"))
	writeLine(b, "PB", ref.FindValue(store.LevelMain, "PUBLISHER"))
	writeLine(b, "CY", ref.FindValue(store.LevelMain, "ADDRESS"))
	writeLine(b, "SN", ref.FindValue(store.LevelMain, "ISSN"))
	writeLine(b, "BN", ref.FindValue(store.LevelMain, "ISBN"))
	writeLine(b, "DO", ref.FindValue(store.LevelMain, "DOI"))
	writeLine(b, "UR", ref.FindValue(store.LevelMain, "URL"))
	writeLine(b, "AB", ref.FindValue(store.LevelMain, "ABSTRACT"))
	writeLine(b, "N1", ref.FindValue(store.LevelMain, "NOTES"))
	writeLine(b, "LA", ref.FindValue(store.LevelMain, "LANGUAGE"))

	var kws []string
	kws = ref.FindValueEach(store.LevelMain, "KEYWORD", kws)
	for _, k := range kws {
		writeLine(b, "KW", k)
	}

	b.WriteString("ER  - \n\n")
}

func writeLine(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%-2s  - %s\n", tag, value)
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

// tyFor maps the converter's canonical TYPE label back to an RIS TY code.
func tyFor(canonical string) string {
	switch canonical {
	case "Article":
		return "JOUR"
	case "Book":
		return "BOOK"
	case "Book Section":
		return "CHAP"
	case "Conference Paper":
		return "CONF"
	case "Conference Proceedings":
		return "CONF"
	case "Thesis":
		return "THES"
	case "Report":
		return "RPRT"
	case "Unpublished Work":
		return "UNPB"
	case "Web Page":
		return "ELEC"
	case "Dataset":
		return "DATA"
	case "Computer Program":
		return "COMP"
	case "Patent":
		return "PAT"
	case "Manual":
		return "MANSCPT"
	default:
		return "GEN"
	}
}
