package ads

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
)

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as blank-line-separated ADS abstract-service records.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	for _, ref := range collection.All() {
		writeRecord(&b, ref)
	}
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeRecord(b *strings.Builder, ref *store.Reference) {
	writeLine(b, "%R", ref.FindValue(store.LevelMain, "DOI"))
	writeLine(b, "%T", ref.FindValue(store.LevelMain, "TITLE"))
	writePersons(b, ref)
	writeLine(b, "%J", journalWithVolumePages(ref))
	writeLine(b, "%D", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeLine(b, "%V", ref.FindValue(store.LevelMain, "VOLUME"))
	writeLine(b, "%P", ref.FindValueFirstOf(store.LevelMain, "PAGES:START", "ARTICLENUMBER"))
	writeLine(b, "%X", ref.FindValue(store.LevelMain, "ABSTRACT"))

	var kws []string
	kws = ref.FindValueEach(store.LevelMain, "KEYWORD", kws)
	if len(kws) > 0 {
		writeLine(b, "%K", strings.Join(kws, ", "))
	}
	b.WriteString("\n")
}

// journalWithVolumePages renders ADS's conventional "%J" line, which
// embeds the volume inline with the journal name.
func journalWithVolumePages(ref *store.Reference) string {
	journal := ref.FindValue(store.LevelHost, "JOURNAL")
	if journal == "" {
		return ""
	}
	if vol := ref.FindValue(store.LevelMain, "VOLUME"); vol != "" {
		return fmt.Sprintf("%s, %s", journal, vol)
	}
	return journal
}

func writeLine(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", tag, value)
}

func writePersons(b *strings.Builder, ref *store.Reference) {
	var people []string
	people = ref.FindValueEach(store.LevelMain, "AUTHOR", people)
	for _, p := range people {
		if p == name.EtAl {
			writeLine(b, "%A", "et al.")
			continue
		}
		writeLine(b, "%A", name.Build(p))
	}
}
