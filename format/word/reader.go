package word

import (
	"fmt"
	"io"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/xmlnode"
)

// Parse implements format.Parser over Word 2007's bibliography XML: a
// <b:Sources> wrapper of <b:Source> records. xmlnode.TagEquals strips the
// "b:" namespace prefix generically, so lookups below use bare names.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := xmlnode.NewParser(string(buf))
	root := p.Parse()
	if root == nil {
		return nil, fmt.Errorf("empty or malformed Word bibliography document")
	}

	var sourcesNode *xmlnode.Node
	if xmlnode.TagEquals(root.Tag, "Sources", "b") {
		sourcesNode = root
	} else if s := root.FindChild("Sources"); s != nil {
		sourcesNode = s
	} else {
		sourcesNode = root
	}

	out := store.NewCollection()
	for i, src := range sourcesNode.FindChildren("Source") {
		out.Append(readSource(src, i))
	}
	return out, nil
}

func readSource(src *xmlnode.Node, i int) *store.Reference {
	ref := store.NewReference()

	refnum := fmt.Sprintf("word%d", i+1)
	if tag := src.FindChild("Tag"); tag != nil && tag.Value != "" {
		refnum = tag.Value
	}
	ref.Add("REFNUM", refnum, store.LevelMain)

	rawType := "Misc"
	if st := src.FindChild("SourceType"); st != nil && st.Value != "" {
		rawType = st.Value
	}
	ref.Add("TYPE", rawType, store.LevelMain)

	if t := src.FindChild("Title"); t != nil && t.Value != "" {
		ref.Add("Title", t.Value, store.LevelMain)
	}
	if jn := src.FindChild("JournalName"); jn != nil && jn.Value != "" {
		ref.Add("JournalName", jn.Value, store.LevelMain)
	}
	if cn := src.FindChild("ConferenceName"); cn != nil && cn.Value != "" {
		ref.Add("ConferenceName", cn.Value, store.LevelMain)
	}
	if y := src.FindChild("Year"); y != nil && y.Value != "" {
		ref.Add("Year", y.Value, store.LevelMain)
	}
	if v := src.FindChild("Volume"); v != nil && v.Value != "" {
		ref.Add("Volume", v.Value, store.LevelMain)
	}
	if iss := src.FindChild("Issue"); iss != nil && iss.Value != "" {
		ref.Add("Issue", iss.Value, store.LevelMain)
	}
	if pg := src.FindChild("Pages"); pg != nil && pg.Value != "" {
		ref.Add("Pages", pg.Value, store.LevelMain)
	}
	if pub := src.FindChild("Publisher"); pub != nil && pub.Value != "" {
		ref.Add("Publisher", pub.Value, store.LevelMain)
	}
	if city := src.FindChild("City"); city != nil && city.Value != "" {
		ref.Add("City", city.Value, store.LevelMain)
	}
	if sn := src.FindChild("StandardNumber"); sn != nil && sn.Value != "" {
		ref.Add("StandardNumber", sn.Value, store.LevelMain)
	}
	if u := src.FindChild("URL"); u != nil && u.Value != "" {
		ref.Add("URL", u.Value, store.LevelMain)
	}
	if c := src.FindChild("Comments"); c != nil && c.Value != "" {
		ref.Add("Comments", c.Value, store.LevelMain)
	}

	readAuthors(ref, src, "Author")
	readAuthors(ref, src, "Editor")

	return ref
}

// readAuthors walks <b:Author><b:Author><b:NameList><b:Person>... (the
// outer "Author" wrapper, the role element repeated inside it, then the
// name list) emitting one raw entry per <b:Person>'s Last/First pair.
func readAuthors(ref *store.Reference, src *xmlnode.Node, role string) {
	wrapper := src.FindChild("Author")
	if wrapper == nil {
		return
	}
	inner := wrapper.FindChild(role)
	if inner == nil {
		return
	}
	nl := inner.FindChild("NameList")
	if nl == nil {
		return
	}
	for _, person := range nl.FindChildren("Person") {
		last := person.FindChild("Last")
		first := person.FindChild("First")
		if last == nil {
			continue
		}
		parsed := last.Value
		if first != nil && first.Value != "" {
			parsed += "|" + first.Value
		}
		ref.AddCanDup(role, parsed, store.LevelMain)
	}
}
