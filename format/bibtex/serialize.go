package bibtex

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

// Serialize implements format.Serializer, rendering a canonical-tag
// collection as BibTeX entries.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, opts *format.SerializeOptions) error {
	for i, ref := range collection.All() {
		if err := writeEntry(w, ref, opts.Options); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	return nil
}

func writeEntry(w io.Writer, ref *store.Reference, opts reftype.FormatOptions) error {
	entryType := entryTypeFor(ref)
	key := ref.FindValue(store.LevelMain, "REFNUM")
	if key == "" {
		key = "ref"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", entryType, key)

	writeField(&b, "title", joinTitle(ref, store.LevelMain))
	writePersons(&b, "author", ref, store.LevelMain, "AUTHOR")
	writePersons(&b, "editor", ref, store.LevelMain, "EDITOR")
	writePersons(&b, "editor", ref, store.LevelHost, "EDITOR")

	if journal := ref.FindValue(store.LevelHost, "JOURNAL"); journal != "" {
		writeField(&b, "journal", journal)
	} else if bt := joinTitle(ref, store.LevelHost); bt != "" {
		writeField(&b, "booktitle", bt)
	}

	writeField(&b, "year", ref.FindValue(store.LevelMain, "DATE:YEAR"))
	writeField(&b, "month", ref.FindValue(store.LevelMain, "DATE:MONTH"))
	writeField(&b, "volume", ref.FindValueFirstOf(store.LevelHost, "VOLUME"))
	writeField(&b, "number", ref.FindValueFirstOf(store.LevelHost, "ISSUE"))
	writeField(&b, "pages", pagesRange(ref, opts))
	writeField(&b, "pagetotal", ref.FindValue(store.LevelMain, "PAGES:TOTAL"))
	writeField(&b, "publisher", ref.FindValue(store.LevelMain, "PUBLISHER"))
	writeField(&b, "address", ref.FindValue(store.LevelMain, "ADDRESS"))
	writeField(&b, "edition", ref.FindValue(store.LevelMain, "EDITION"))
	writeField(&b, "series", joinTitle(ref, store.LevelSeries))
	writeField(&b, "school", ref.FindValue(store.LevelHost, "DEGREEGRANTOR"))
	writeField(&b, "institution", ref.FindValue(store.LevelMain, "SPONSOR"))
	writeField(&b, "doi", ref.FindValue(store.LevelMain, "DOI"))
	writeField(&b, "isbn", ref.FindValue(store.LevelMain, "ISBN"))
	writeField(&b, "issn", ref.FindValue(store.LevelMain, "ISSN"))
	writeField(&b, "url", ref.FindValue(store.LevelMain, "URL"))
	writeKeywords(&b, ref)
	writeField(&b, "abstract", ref.FindValue(store.LevelMain, "ABSTRACT"))
	writeField(&b, "note", ref.FindValue(store.LevelMain, "NOTES"))
	writeField(&b, "language", ref.FindValue(store.LevelMain, "LANGUAGE"))

	if opts.Has(reftype.OptFinalComma) {
		b.WriteString("}\n")
	} else {
		s := b.String()
		s = strings.TrimRight(s, "\n")
		s = strings.TrimSuffix(s, ",")
		b.Reset()
		b.WriteString(s)
		b.WriteString("\n}\n")
	}

	_, err := w.Write([]byte(b.String()))
	return err
}

func writeField(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s = {%s},\n", tag, escapeBibtex(value))
}

func writeKeywords(b *strings.Builder, ref *store.Reference) {
	var kws []string
	kws = ref.FindValueEach(store.LevelMain, "KEYWORD", kws)
	if len(kws) == 0 {
		return
	}
	fmt.Fprintf(b, "  keywords = {%s},\n", strings.Join(kws, ", "))
}

func writePersons(b *strings.Builder, tag string, ref *store.Reference, level store.Level, srcTag string) {
	var parsed []string
	parsed = ref.FindValueEach(level, srcTag, parsed)
	if len(parsed) == 0 {
		return
	}
	names := make([]string, 0, len(parsed))
	for _, p := range parsed {
		if p == name.EtAl {
			names = append(names, "others")
			continue
		}
		names = append(names, name.Build(p))
	}
	fmt.Fprintf(b, "  %s = {%s},\n", tag, escapeBibtex(strings.Join(names, " and ")))
}

// joinTitle recombines a level's TITLE (already possibly "Title: Subtitle"
// after conversion) for output.
func joinTitle(ref *store.Reference, level store.Level) string {
	return ref.FindValue(level, "TITLE")
}

func pagesRange(ref *store.Reference, opts reftype.FormatOptions) string {
	start := ref.FindValue(store.LevelMain, "PAGES:START")
	end := ref.FindValue(store.LevelMain, "PAGES:STOP")
	if start == "" {
		return ref.FindValue(store.LevelMain, "ARTICLENUMBER")
	}
	if end == "" {
		return start
	}
	dash := "--"
	if opts.Has(reftype.OptSingleDashRange) {
		dash = "-"
	}
	return start + dash + end
}

func entryTypeFor(ref *store.Reference) string {
	t := strings.ToLower(ref.FindValue(store.LevelMain, "TYPE"))
	switch t {
	case "thesis":
		genre, _ := reftype.FindGenre(ref, store.LevelMain)
		if strings.Contains(strings.ToLower(genre), "master") {
			return "mastersthesis"
		}
		return "phdthesis"
	case "conference paper":
		return "inproceedings"
	case "conference proceedings":
		return "proceedings"
	case "book section":
		if ref.FindValue(store.LevelHost, "JOURNAL") != "" {
			return "article"
		}
		return "incollection"
	case "report":
		return "techreport"
	case "web page":
		return "online"
	case "computer program":
		return "software"
	case "patent":
		return "patent"
	case "manual":
		return "manual"
	case "pamphlet":
		return "booklet"
	case "unpublished work":
		return "unpublished"
	case "dataset":
		return "misc"
	case "book":
		return "book"
	case "article":
		return "article"
	default:
		if ref.FindValue(store.LevelHost, "JOURNAL") != "" {
			return "article"
		}
		return "misc"
	}
}

func escapeBibtex(s string) string {
	r := strings.NewReplacer(
		"\\", `\\`,
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
	)
	return r.Replace(s)
}
