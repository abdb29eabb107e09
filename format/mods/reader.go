package mods

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/helpers"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/xmlnode"
)

// Parse implements format.Parser over MODS XML: a bare <mods> root, or a
// <modsCollection> wrapping several sibling <mods> records.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := xmlnode.NewParser(string(buf))
	root := p.Parse()
	if root == nil {
		return nil, fmt.Errorf("empty or malformed MODS document")
	}

	var modsNodes []*xmlnode.Node
	if xmlnode.TagEquals(root.Tag, "modsCollection", "") {
		modsNodes = root.FindChildren("mods")
	} else {
		modsNodes = []*xmlnode.Node{root}
	}

	out := store.NewCollection()
	for i, m := range modsNodes {
		ref := store.NewReference()
		refnum := m.Attr("ID")
		if refnum == "" {
			refnum = fmt.Sprintf("mods%d", i+1)
		}
		ref.Add("REFNUM", refnum, store.LevelMain)

		readModsBody(ref, m, store.LevelMain)

		if host := findRelatedItem(m, "host"); host != nil {
			readModsBody(ref, host, store.LevelHost)
		}
		if series := findRelatedItem(m, "series"); series != nil {
			readModsBody(ref, series, store.LevelSeries)
		}

		rawType := ref.FindValueFirstOf(store.LevelMain, "genre", "typeOfResource")
		ref.Add("TYPE", rawType, store.LevelMain)

		out.Append(ref)
	}
	return out, nil
}

func findRelatedItem(m *xmlnode.Node, kind string) *xmlnode.Node {
	for _, ri := range m.FindChildren("relatedItem") {
		if strings.EqualFold(ri.Attr("type"), kind) {
			return ri
		}
	}
	return nil
}

// readModsBody extracts the fields this module understands from one
// <mods>-shaped element (the top-level record or a host/series
// relatedItem) and adds them to ref at the given level.
func readModsBody(ref *store.Reference, m *xmlnode.Node, level store.Level) {
	for _, ti := range m.FindChildren("titleInfo") {
		if t := ti.FindChild("title"); t != nil && t.Value != "" {
			ref.Add("title", t.Value, level)
		}
		if st := ti.FindChild("subTitle"); st != nil && st.Value != "" {
			ref.Add("subtitle", st.Value, level)
		}
	}

	for _, n := range m.FindChildren("name") {
		parsed := parseModsName(n)
		if parsed == "" {
			continue
		}
		tag := "name"
		if roleIsEditor(n) {
			tag = "name:editor"
		}
		ref.AddCanDup(tag, parsed, level)
	}

	for _, oi := range m.FindChildren("originInfo") {
		if d := oi.FindChild("dateIssued"); d != nil && d.Value != "" {
			addEdtfDate(ref, "dateIssued", d.Value, level)
		}
		if d := oi.FindChild("dateCreated"); d != nil && d.Value != "" {
			addEdtfDate(ref, "dateCreated", d.Value, level)
		}
		if p := oi.FindChild("publisher"); p != nil && p.Value != "" {
			ref.Add("publisher", p.Value, level)
		}
		if ed := oi.FindChild("edition"); ed != nil && ed.Value != "" {
			ref.Add("edition", ed.Value, level)
		}
		for _, pl := range oi.FindChildren("place") {
			if pt := pl.FindChild("placeTerm"); pt != nil && pt.Value != "" {
				ref.Add("place", pt.Value, level)
			}
		}
	}

	for _, g := range m.FindChildren("genre") {
		if g.Value != "" {
			ref.Add("genre", g.Value, level)
		}
	}

	for _, pd := range m.FindChildren("physicalDescription") {
		for _, ext := range pd.FindChildren("extent") {
			ref.Add("extent", extentValue(ext), level)
		}
	}

	for _, part := range m.FindChildren("part") {
		for _, det := range part.FindChildren("detail") {
			switch strings.ToLower(det.Attr("type")) {
			case "volume":
				if n := det.FindChild("number"); n != nil {
					ref.Add("volume", n.Value, level)
				}
			case "issue":
				if n := det.FindChild("number"); n != nil {
					ref.Add("issue", n.Value, level)
				}
			}
		}
		for _, ext := range part.FindChildren("extent") {
			if t := ext.FindChild("total"); t != nil && t.Value != "" {
				ref.Add("extentTotal", t.Value, level)
				continue
			}
			ref.Add("extent", extentValue(ext), level)
		}
	}

	for _, id := range m.FindChildren("identifier") {
		t := strings.ToLower(id.Attr("type"))
		if t == "" || id.Value == "" {
			continue
		}
		ref.Add("identifier:"+t, id.Value, level)
	}

	for _, loc := range m.FindChildren("location") {
		for _, u := range loc.FindChildren("url") {
			if u.Value != "" {
				ref.Add("location:url", u.Value, level)
			}
		}
	}

	for _, a := range m.FindChildren("abstract") {
		if a.Value != "" {
			ref.Add("abstract", a.Value, level)
		}
	}
	for _, n := range m.FindChildren("note") {
		if n.Value != "" {
			ref.Add("note", n.Value, level)
		}
	}
	for _, lang := range m.FindChildren("language") {
		if lt := lang.FindChild("languageTerm"); lt != nil && lt.Value != "" {
			ref.Add("language", lt.Value, level)
		}
	}
	for _, subj := range m.FindChildren("subject") {
		if t := subj.FindChild("topic"); t != nil && t.Value != "" {
			ref.Add("subject", t.Value, level)
		}
	}
	if tor := m.FindChild("typeOfResource"); tor != nil && tor.Value != "" {
		ref.Add("typeOfResource", tor.Value, level)
	}
}

// addEdtfDate parses a MODS dateIssued/dateCreated value (which may carry
// EDTF month/day precision or uncertainty markers) and adds the year under
// baseTag and, when present, the month/day under baseTag+"Month"/"Day" so
// the table can translate each into its own qualified DATE tag. A value the
// EDTF parser doesn't recognise is kept as the bare year field.
func addEdtfDate(ref *store.Reference, baseTag, raw string, level store.Level) {
	d, err := helpers.ParseEDTF(raw)
	if err != nil || d.Year == 0 {
		ref.Add(baseTag, raw, level)
		return
	}
	ref.Add(baseTag, strconv.Itoa(d.Year), level)
	if d.Month > 0 {
		ref.Add(baseTag+"Month", fmt.Sprintf("%02d", d.Month), level)
	}
	if d.Day > 0 {
		ref.Add(baseTag+"Day", fmt.Sprintf("%02d", d.Day), level)
	}
}

func extentValue(ext *xmlnode.Node) string {
	start := ext.FindChild("start")
	end := ext.FindChild("end")
	if start != nil {
		if end != nil && end.Value != "" {
			return start.Value + "-" + end.Value
		}
		return start.Value
	}
	return ext.Value
}

// roleIsEditor recognises an editor role however MODS expresses it: a bare
// code, a marcrelator label, or a full marcrelator URI.
func roleIsEditor(n *xmlnode.Node) bool {
	for _, role := range n.FindChildren("role") {
		if rt := role.FindChild("roleTerm"); rt != nil {
			if helpers.NormalizeRole(rt.Value) == "edt" {
				return true
			}
		}
	}
	return false
}

// parseModsName builds the pipe-encoded internal name form from a MODS
// <name> element's family/given nameParts, or, when the element has only an
// untyped namePart, returns that text run through name.Parse.
func parseModsName(n *xmlnode.Node) string {
	var family, given []string
	hasTyped := false
	for _, np := range n.FindChildren("namePart") {
		switch strings.ToLower(np.Attr("type")) {
		case "family":
			hasTyped = true
			family = append(family, np.Value)
		case "given":
			hasTyped = true
			given = append(given, np.Value)
		case "termsofaddress", "date":
			// skipped: neither family nor given
		default:
			if !hasTyped && np.Value != "" {
				return name.Parse(np.Value, nil, nil)
			}
		}
	}
	if len(family) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(family, " "))
	for _, g := range given {
		b.WriteByte('|')
		b.WriteString(g)
	}
	return b.String()
}
