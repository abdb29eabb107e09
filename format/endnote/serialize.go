package endnote

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
)

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as blank-line-separated EndNote tagged records.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	for _, ref := range collection.All() {
		writeRecord(&b, ref)
	}
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeRecord(b *strings.Builder, ref *store.Reference) {
	fmt.Fprintf(b, "%%0 %s\n", typeFor(ref.FindValue(store.LevelMain, "TYPE")))

	writeLine(b, "%T", ref.FindValue(store.LevelMain, "TITLE"))
	writePersons(b, ref, "%A", "AUTHOR")
	writePersons(b, ref, "%E", "EDITOR")
	writeLine(b, "%D", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeLine(b, "%J", ref.FindValue(store.LevelHost, "JOURNAL"))
	writeLine(b, "%V", ref.FindValue(store.LevelMain, "VOLUME"))
	writeLine(b, "%N", ref.FindValue(store.LevelMain, "ISSUE"))
	writeLine(b, "%P", pagesRange(ref))
	writeLine(b, "%I", ref.FindValue(store.LevelMain, "PUBLISHER"))
	writeLine(b, "%C", ref.FindValue(store.LevelMain, "ADDRESS"))
	writeLine(b, "%@", ref.FindValue(store.LevelMain, "ISSN"))
	writeLine(b, "%U", ref.FindValue(store.LevelMain, "URL"))
	writeLine(b, "%X", ref.FindValue(store.LevelMain, "ABSTRACT"))
	writeLine(b, "%R", ref.FindValue(store.LevelMain, "DOI"))

	var kws []string
	kws = ref.FindValueEach(store.LevelMain, "KEYWORD", kws)
	for _, k := range kws {
		writeLine(b, "%K", k)
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

func typeFor(canonical string) string {
	switch canonical {
	case "Article":
		return "Journal Article"
	case "Book":
		return "Book"
	case "Book Section":
		return "Book Section"
	case "Conference Paper":
		return "Conference Paper"
	case "Conference Proceedings":
		return "Conference Proceedings"
	case "Thesis":
		return "Thesis"
	case "Report":
		return "Report"
	case "Unpublished Work":
		return "Unpublished Work"
	case "Web Page":
		return "Web Page"
	case "Dataset":
		return "Dataset"
	case "Computer Program":
		return "Computer Program"
	case "Patent":
		return "Patent"
	default:
		return "Generic"
	}
}
