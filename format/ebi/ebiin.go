package ebi

import (
	"bytes"
	"fmt"
	"io"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/xmlnode"
)

// EbiIn implements format.Parser over the EBI/Europe PMC full-text JATS
// flavour: a <article><front><article-meta> wrapper instead of PubMed's
// flat <MedlineCitation>. It normalises onto the same raw tag vocabulary as
// In so medlineTable serves both readers.
type EbiIn struct{}

var (
	_ format.Format = (*EbiIn)(nil)
	_ format.Parser = (*EbiIn)(nil)
)

func (f *EbiIn) Name() string        { return "ebiin" }
func (f *EbiIn) Description() string { return "EBI/Europe PMC JATS full-text citation export (reader)" }
func (f *EbiIn) Extensions() []string {
	return []string{"xml"}
}
func (f *EbiIn) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("<article-meta")) || bytes.Contains(peek, []byte("<front>"))
}

func init() {
	format.Register(&EbiIn{})
	reftype.RegisterTable(reftype.EBIIN, medlineTable)
}

func (f *EbiIn) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := xmlnode.NewParser(string(buf))
	root := p.Parse()
	if root == nil {
		return nil, fmt.Errorf("empty or malformed JATS document")
	}

	var articles []*xmlnode.Node
	if xmlnode.TagEquals(root.Tag, "article", "") {
		articles = []*xmlnode.Node{root}
	} else {
		articles = root.FindChildren("article")
	}

	out := store.NewCollection()
	for i, a := range articles {
		out.Append(readJATSArticle(a, i))
	}
	return out, nil
}

func readJATSArticle(a *xmlnode.Node, i int) *store.Reference {
	ref := store.NewReference()

	front := a.FindChild("front")
	if front == nil {
		front = a
	}
	meta := front.FindChild("article-meta")
	if meta == nil {
		meta = front
	}

	refnum := fmt.Sprintf("jats%d", i+1)
	for _, id := range meta.FindChildren("article-id") {
		if id.Attr("pub-id-type") == "pmid" && id.Value != "" {
			refnum = id.Value
		}
		if id.Attr("pub-id-type") == "doi" && id.Value != "" {
			ref.Add("DOI", id.Value, store.LevelMain)
		}
	}
	ref.Add("REFNUM", refnum, store.LevelMain)

	if tg := meta.FindChild("title-group"); tg != nil {
		if t := tg.FindChild("article-title"); t != nil && t.Value != "" {
			ref.Add("ArticleTitle", t.Value, store.LevelMain)
		}
	}

	if cg := meta.FindChild("contrib-group"); cg != nil {
		for _, c := range cg.FindChildren("contrib") {
			nm := c.FindChild("name")
			if nm == nil {
				continue
			}
			surname := nm.FindChild("surname")
			given := nm.FindChild("given-names")
			if surname == nil {
				continue
			}
			parsed := surname.Value
			if given != nil && given.Value != "" {
				parsed += "|" + given.Value
			}
			ref.AddCanDup("AuthorList", parsed, store.LevelMain)
		}
	}

	if jtg := front.FindChild("journal-meta"); jtg != nil {
		if jt := jtg.FindChild("journal-title"); jt != nil && jt.Value != "" {
			ref.Add("Journal", jt.Value, store.LevelMain)
		}
		for _, issn := range jtg.FindChildren("issn") {
			if issn.Value != "" {
				ref.Add("ISSN", issn.Value, store.LevelMain)
			}
		}
	}

	if v := meta.FindChild("volume"); v != nil {
		ref.Add("Volume", v.Value, store.LevelMain)
	}
	if iss := meta.FindChild("issue"); iss != nil {
		ref.Add("Issue", iss.Value, store.LevelMain)
	}
	if y := meta.FindChild("pub-date"); y != nil {
		if yr := y.FindChild("year"); yr != nil {
			ref.Add("PubDate", yr.Value, store.LevelMain)
		}
	}
	fp := meta.FindChild("fpage")
	lp := meta.FindChild("lpage")
	if fp != nil {
		pages := fp.Value
		if lp != nil && lp.Value != "" {
			pages += "-" + lp.Value
		}
		ref.Add("MedlinePgn", pages, store.LevelMain)
	}

	if abs := meta.FindChild("abstract"); abs != nil && abs.Value != "" {
		ref.Add("Abstract", abs.Value, store.LevelMain)
	}

	ref.Add("TYPE", "Journal Article", store.LevelMain)

	return ref
}
