package mods

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
// collection as a <modsCollection> of MODS 3.8 records.
func (f *Out) Serialize(w io.Writer, collection *store.Collection, _ *format.SerializeOptions) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<modsCollection xmlns="http://www.loc.gov/mods/v3">` + "\n")
	for _, ref := range collection.All() {
		writeMods(&b, ref)
	}
	b.WriteString("</modsCollection>\n")
	_, err := w.Write([]byte(b.String()))
	return err
}

func writeMods(b *strings.Builder, ref *store.Reference) {
	id := ref.FindValue(store.LevelMain, "REFNUM")
	if id != "" {
		fmt.Fprintf(b, `  <mods ID="%s">`+"\n", escapeXML(id))
	} else {
		b.WriteString("  <mods>\n")
	}

	writeTitleInfo(b, ref, store.LevelMain, "    ")
	writeNames(b, ref, store.LevelMain, "    ")

	if genre, _ := reftype.FindGenre(ref, store.LevelMain); genre != "" {
		fmt.Fprintf(b, "    <genre>%s</genre>\n", escapeXML(genre))
	}

	b.WriteString("    <originInfo>\n")
	if d := dateIssued(ref, store.LevelMain); d != "" {
		fmt.Fprintf(b, "      <dateIssued>%s</dateIssued>\n", escapeXML(d))
	}
	if p := ref.FindValue(store.LevelMain, "PUBLISHER"); p != "" {
		fmt.Fprintf(b, "      <publisher>%s</publisher>\n", escapeXML(p))
	}
	if a := ref.FindValue(store.LevelMain, "ADDRESS"); a != "" {
		fmt.Fprintf(b, "      <place><placeTerm>%s</placeTerm></place>\n", escapeXML(a))
	}
	if ed := ref.FindValue(store.LevelMain, "EDITION"); ed != "" {
		fmt.Fprintf(b, "      <edition>%s</edition>\n", escapeXML(ed))
	}
	b.WriteString("    </originInfo>\n")

	var kws []string
	kws = ref.FindValueEach(store.LevelMain, "KEYWORD", kws)
	for _, k := range kws {
		fmt.Fprintf(b, "    <subject><topic>%s</topic></subject>\n", escapeXML(k))
	}
	if abs := ref.FindValue(store.LevelMain, "ABSTRACT"); abs != "" {
		fmt.Fprintf(b, "    <abstract>%s</abstract>\n", escapeXML(abs))
	}
	if n := ref.FindValue(store.LevelMain, "NOTES"); n != "" {
		fmt.Fprintf(b, "    <note>%s</note>\n", escapeXML(n))
	}
	if lang := ref.FindValue(store.LevelMain, "LANGUAGE"); lang != "" {
		fmt.Fprintf(b, "    <language><languageTerm>%s</languageTerm></language>\n", escapeXML(lang))
	}
	if doi := ref.FindValue(store.LevelMain, "DOI"); doi != "" {
		fmt.Fprintf(b, `    <identifier type="doi">%s</identifier>`+"\n", escapeXML(doi))
	}
	if isbn := ref.FindValue(store.LevelMain, "ISBN"); isbn != "" {
		fmt.Fprintf(b, `    <identifier type="isbn">%s</identifier>`+"\n", escapeXML(isbn))
	}
	if issn := ref.FindValue(store.LevelMain, "ISSN"); issn != "" {
		fmt.Fprintf(b, `    <identifier type="issn">%s</identifier>`+"\n", escapeXML(issn))
	}
	if url := ref.FindValue(store.LevelMain, "URL"); url != "" {
		fmt.Fprintf(b, "    <location><url>%s</url></location>\n", escapeXML(url))
	}

	writeHost(b, ref)

	b.WriteString("  </mods>\n")
}

// dateIssued assembles a MODS W3CDTF date ("YYYY", "YYYY-MM", or
// "YYYY-MM-DD") from a level's qualified date tags, using the PARTDATE
// variants at LevelHost and the plain DATE variants elsewhere.
func dateIssued(ref *store.Reference, level store.Level) string {
	prefix := "DATE"
	if level == store.LevelHost {
		prefix = "PARTDATE"
	}
	y := ref.FindValue(level, prefix+":YEAR")
	if y == "" {
		return ""
	}
	m := ref.FindValue(level, prefix+":MONTH")
	if m == "" {
		return y
	}
	d := ref.FindValue(level, prefix+":DAY")
	if d == "" {
		return fmt.Sprintf("%s-%s", y, m)
	}
	return fmt.Sprintf("%s-%s-%s", y, m, d)
}

func writeHost(b *strings.Builder, ref *store.Reference) {
	hasHost := ref.FindValue(store.LevelHost, "TITLE") != "" ||
		ref.FindValue(store.LevelHost, "JOURNAL") != "" ||
		ref.FindValue(store.LevelHost, "VOLUME") != ""
	if !hasHost {
		return
	}
	b.WriteString(`    <relatedItem type="host">` + "\n")
	writeTitleInfo(b, ref, store.LevelHost, "      ")
	writeNames(b, ref, store.LevelHost, "      ")

	vol := ref.FindValue(store.LevelHost, "VOLUME")
	iss := ref.FindValue(store.LevelHost, "ISSUE")
	start := ref.FindValue(store.LevelMain, "PAGES:START")
	end := ref.FindValue(store.LevelMain, "PAGES:STOP")
	total := ref.FindValue(store.LevelMain, "PAGES:TOTAL")
	article := ref.FindValue(store.LevelMain, "ARTICLENUMBER")
	partDate := dateIssued(ref, store.LevelHost)
	if vol != "" || iss != "" || start != "" || article != "" || partDate != "" {
		b.WriteString("      <part>\n")
		if vol != "" {
			fmt.Fprintf(b, `        <detail type="volume"><number>%s</number></detail>`+"\n", escapeXML(vol))
		}
		if iss != "" {
			fmt.Fprintf(b, `        <detail type="issue"><number>%s</number></detail>`+"\n", escapeXML(iss))
		}
		switch {
		case start != "" && end != "":
			fmt.Fprintf(b, "        <extent unit=\"pages\"><start>%s</start><end>%s</end></extent>\n", escapeXML(start), escapeXML(end))
		case start != "":
			fmt.Fprintf(b, "        <extent unit=\"pages\"><start>%s</start></extent>\n", escapeXML(start))
		case article != "":
			fmt.Fprintf(b, `        <extent unit="pages"><start>%s</start></extent>`+"\n", escapeXML(article))
		}
		if total != "" {
			fmt.Fprintf(b, "        <extent unit=\"pages\"><total>%s</total></extent>\n", escapeXML(total))
		}
		if partDate != "" {
			fmt.Fprintf(b, "        <date>%s</date>\n", escapeXML(partDate))
		}
		b.WriteString("      </part>\n")
	}
	b.WriteString("    </relatedItem>\n")
}

func writeTitleInfo(b *strings.Builder, ref *store.Reference, level store.Level, indent string) {
	title := ref.FindValue(level, "TITLE")
	if title == "" {
		return
	}
	main, sub := splitTitle(title)
	fmt.Fprintf(b, "%s<titleInfo>\n", indent)
	fmt.Fprintf(b, "%s  <title>%s</title>\n", indent, escapeXML(main))
	if sub != "" {
		fmt.Fprintf(b, "%s  <subTitle>%s</subTitle>\n", indent, escapeXML(sub))
	}
	fmt.Fprintf(b, "%s</titleInfo>\n", indent)
}

func splitTitle(title string) (main, sub string) {
	if idx := strings.Index(title, ": "); idx >= 0 {
		return title[:idx], title[idx+2:]
	}
	return title, ""
}

func writeNames(b *strings.Builder, ref *store.Reference, level store.Level, indent string) {
	var authors, editors []string
	authors = ref.FindValueEach(level, "AUTHOR", authors)
	editors = ref.FindValueEach(level, "EDITOR", editors)
	for _, a := range authors {
		writeName(b, a, "aut", indent)
	}
	for _, e := range editors {
		writeName(b, e, "edt", indent)
	}
}

func writeName(b *strings.Builder, parsed, role, indent string) {
	if parsed == name.EtAl {
		fmt.Fprintf(b, "%s<name><namePart>et al.</namePart></name>\n", indent)
		return
	}
	parts := strings.Split(parsed, "|")
	family := parts[0]
	fmt.Fprintf(b, "%s<name type=\"personal\">\n", indent)
	fmt.Fprintf(b, "%s  <namePart type=\"family\">%s</namePart>\n", indent, escapeXML(family))
	for _, g := range parts[1:] {
		if g == "" {
			continue
		}
		fmt.Fprintf(b, "%s  <namePart type=\"given\">%s</namePart>\n", indent, escapeXML(g))
	}
	fmt.Fprintf(b, "%s  <role><roleTerm type=\"code\" authority=\"marcrelator\">%s</roleTerm></role>\n", indent, role)
	fmt.Fprintf(b, "%s</name>\n", indent)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
