package word

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/store"
)

const nsDecl = `xmlns:b="http://schemas.openxmlformats.org/officeDocument/2006/bibliography" xmlns="http://schemas.openxmlformats.org/officeDocument/2006/bibliography"`

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as a Word 2007 <b:Sources> bibliography document.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<b:Sources %s>\n", nsDecl)
	for _, ref := range collection.All() {
		writeSource(&b, ref)
	}
	b.WriteString("</b:Sources>\n")
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeSource(b *strings.Builder, ref *store.Reference) {
	b.WriteString("  <b:Source>\n")
	if tag := ref.FindValue(store.LevelMain, "REFNUM"); tag != "" {
		fmt.Fprintf(b, "    <b:Tag>%s</b:Tag>\n", escapeXML(tag))
	}
	fmt.Fprintf(b, "    <b:SourceType>%s</b:SourceType>\n", sourceTypeFor(ref.FindValue(store.LevelMain, "TYPE")))
	writeField(b, "Title", ref.FindValue(store.LevelMain, "TITLE"))
	writeField(b, "JournalName", ref.FindValue(store.LevelHost, "JOURNAL"))
	writeField(b, "Year", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeField(b, "Volume", ref.FindValue(store.LevelMain, "VOLUME"))
	writeField(b, "Issue", ref.FindValue(store.LevelMain, "ISSUE"))
	writeField(b, "Pages", pagesRange(ref))
	writeField(b, "Publisher", ref.FindValue(store.LevelMain, "PUBLISHER"))
	writeField(b, "City", ref.FindValue(store.LevelMain, "ADDRESS"))
	writeField(b, "StandardNumber", ref.FindValue(store.LevelMain, "ISBN"))
	writeField(b, "URL", ref.FindValue(store.LevelMain, "URL"))

	writeNameList(b, ref, "Author", "AUTHOR")
	writeNameList(b, ref, "Editor", "EDITOR")

	b.WriteString("  </b:Source>\n")
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

func writeField(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "    <b:%s>%s</b:%s>\n", tag, escapeXML(value), tag)
}

func writeNameList(b *strings.Builder, ref *store.Reference, role, internalTag string) {
	var people []string
	people = ref.FindValueEach(store.LevelMain, internalTag, people)
	if len(people) == 0 {
		return
	}
	fmt.Fprintf(b, "    <b:Author><b:%s><b:NameList>\n", role)
	for _, p := range people {
		parts := strings.SplitN(p, "|", 2)
		last := parts[0]
		fmt.Fprintf(b, "      <b:Person><b:Last>%s</b:Last>", escapeXML(last))
		if len(parts) > 1 && parts[1] != "" {
			fmt.Fprintf(b, "<b:First>%s</b:First>", escapeXML(parts[1]))
		}
		b.WriteString("</b:Person>\n")
	}
	fmt.Fprintf(b, "    </b:NameList></b:%s></b:Author>\n", role)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func sourceTypeFor(canonical string) string {
	switch canonical {
	case "Article":
		return "ArticleInAPeriodical"
	case "Book":
		return "Book"
	case "Book Section":
		return "BookSection"
	case "Conference Paper", "Conference Proceedings":
		return "ConferenceProceedings"
	case "Report":
		return "Report"
	case "Web Page":
		return "InternetSite"
	case "Patent":
		return "Patent"
	default:
		return "Misc"
	}
}
