package endnotexml

import (
	"fmt"
	"io"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/xmlnode"
)

// Parse implements format.Parser over EndNote's XML library export:
// <xml><records><record>...</record></records></xml>, normalising each
// record onto the tagged EndNote format's raw tag vocabulary.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := xmlnode.NewParser(string(buf))
	root := p.Parse()
	if root == nil {
		return nil, fmt.Errorf("empty or malformed EndNote XML document")
	}

	var recordsNode *xmlnode.Node
	if xmlnode.TagEquals(root.Tag, "records", "") {
		recordsNode = root
	} else if rs := root.FindChild("records"); rs != nil {
		recordsNode = rs
	} else {
		recordsNode = root
	}

	out := store.NewCollection()
	for i, rec := range recordsNode.FindChildren("record") {
		out.Append(readRecord(rec, i))
	}
	return out, nil
}

func readRecord(rec *xmlnode.Node, i int) *store.Reference {
	ref := store.NewReference()

	refnum := fmt.Sprintf("endnotexml%d", i+1)
	if rn := rec.FindChild("rec-number"); rn != nil && rn.Value != "" {
		refnum = rn.Value
	}
	ref.Add("REFNUM", refnum, store.LevelMain)

	rawType := "Journal Article"
	if rt := rec.FindChild("ref-type"); rt != nil {
		if n := rt.Attr("name"); n != "" {
			rawType = n
		}
	}
	ref.Add("TYPE", rawType, store.LevelMain)

	if titles := rec.FindChild("titles"); titles != nil {
		if t := titles.FindChild("title"); t != nil {
			ref.Add("%T", styleText(t), store.LevelMain)
		}
	}

	if contribs := rec.FindChild("contributors"); contribs != nil {
		if authors := contribs.FindChild("authors"); authors != nil {
			for _, a := range authors.FindChildren("author") {
				addName(ref, "%A", styleText(a))
			}
		}
	}

	if per := rec.FindChild("periodical"); per != nil {
		if ft := per.FindChild("full-title"); ft != nil {
			ref.Add("%J", styleText(ft), store.LevelMain)
		}
	}
	if v := rec.FindChild("volume"); v != nil {
		ref.Add("%V", styleText(v), store.LevelMain)
	}
	if n := rec.FindChild("number"); n != nil {
		ref.Add("%N", styleText(n), store.LevelMain)
	}
	if pg := rec.FindChild("pages"); pg != nil {
		ref.Add("%P", styleText(pg), store.LevelMain)
	}
	if pub := rec.FindChild("publisher"); pub != nil {
		ref.Add("%I", styleText(pub), store.LevelMain)
	}
	if isbn := rec.FindChild("isbn"); isbn != nil {
		ref.Add("%@", styleText(isbn), store.LevelMain)
	}
	if abs := rec.FindChild("abstract"); abs != nil {
		ref.Add("%X", styleText(abs), store.LevelMain)
	}
	if dates := rec.FindChild("dates"); dates != nil {
		if y := dates.FindChild("year"); y != nil {
			ref.Add("%D", styleText(y), store.LevelMain)
		}
	}
	if urls := rec.FindChild("urls"); urls != nil {
		if ru := urls.FindChild("related-urls"); ru != nil {
			if u := ru.FindChild("url"); u != nil {
				ref.Add("%U", styleText(u), store.LevelMain)
			}
		}
	}
	if kws := rec.FindChild("keywords"); kws != nil {
		for _, k := range kws.FindChildren("keyword") {
			ref.AddCanDup("%K", styleText(k), store.LevelMain)
		}
	}
	if eid := rec.FindChild("electronic-resource-num"); eid != nil {
		ref.Add("%R", styleText(eid), store.LevelMain)
	}

	return ref
}

func addName(ref *store.Reference, tag, value string) {
	for _, n := range name.SplitNames(value) {
		if name.IsEtAlMarker(n) {
			ref.AddCanDup(tag, name.EtAl, store.LevelMain)
			continue
		}
		ref.AddCanDup(tag, name.Parse(n, nil, nil), store.LevelMain)
	}
}

// styleText returns a node's text, preferring a nested <style> child (the
// verbatim-whitespace wrapper EndNote XML uses for every leaf value) over
// the node's own collapsed text.
func styleText(n *xmlnode.Node) string {
	if s := n.FindChild("style"); s != nil {
		return s.Value
	}
	return n.Value
}
