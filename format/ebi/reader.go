package ebi

import (
	"fmt"
	"io"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/xmlnode"
)

// Parse implements format.Parser over standard PubMed/MEDLINE XML: a
// <PubmedArticleSet> of <PubmedArticle><MedlineCitation><Article> records,
// or a single bare <MedlineCitation>.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := xmlnode.NewParser(string(buf))
	root := p.Parse()
	if root == nil {
		return nil, fmt.Errorf("empty or malformed MEDLINE document")
	}

	var citations []*xmlnode.Node
	switch {
	case xmlnode.TagEquals(root.Tag, "PubmedArticleSet", ""):
		for _, pa := range root.FindChildren("PubmedArticle") {
			if mc := pa.FindChild("MedlineCitation"); mc != nil {
				citations = append(citations, mc)
			}
		}
	case xmlnode.TagEquals(root.Tag, "PubmedArticle", ""):
		if mc := root.FindChild("MedlineCitation"); mc != nil {
			citations = append(citations, mc)
		}
	default:
		citations = []*xmlnode.Node{root}
	}

	out := store.NewCollection()
	for i, mc := range citations {
		ref := readCitation(mc, i)
		out.Append(ref)
	}
	return out, nil
}

func readCitation(mc *xmlnode.Node, i int) *store.Reference {
	ref := store.NewReference()

	pmid := ""
	if p := mc.FindChild("PMID"); p != nil {
		pmid = p.Value
	}
	if pmid == "" {
		pmid = fmt.Sprintf("pmid%d", i+1)
	}
	ref.Add("REFNUM", pmid, store.LevelMain)

	art := mc.FindChild("Article")
	if art == nil {
		art = mc
	}

	if t := art.FindChild("ArticleTitle"); t != nil && t.Value != "" {
		ref.Add("ArticleTitle", t.Value, store.LevelMain)
	}

	if al := art.FindChild("AuthorList"); al != nil {
		for _, a := range al.FindChildren("Author") {
			last := a.FindChild("LastName")
			fore := a.FindChild("ForeName")
			if last == nil {
				continue
			}
			parsed := last.Value
			if fore != nil && fore.Value != "" {
				parsed += "|" + fore.Value
			}
			ref.AddCanDup("AuthorList", parsed, store.LevelMain)
		}
	}

	if j := art.FindChild("Journal"); j != nil {
		if t := j.FindChild("Title"); t != nil {
			ref.Add("Journal", t.Value, store.LevelMain)
		}
		if ji := j.FindChild("JournalIssue"); ji != nil {
			if v := ji.FindChild("Volume"); v != nil {
				ref.Add("Volume", v.Value, store.LevelMain)
			}
			if iss := ji.FindChild("Issue"); iss != nil {
				ref.Add("Issue", iss.Value, store.LevelMain)
			}
			if pd := ji.FindChild("PubDate"); pd != nil {
				ref.Add("PubDate", pubYear(pd), store.LevelMain)
			}
		}
		if issn := j.FindChild("ISSN"); issn != nil {
			ref.Add("ISSN", issn.Value, store.LevelMain)
		}
	}

	if pag := art.FindChild("Pagination"); pag != nil {
		if mp := pag.FindChild("MedlinePgn"); mp != nil {
			ref.Add("MedlinePgn", mp.Value, store.LevelMain)
		}
	}

	if abs := art.FindChild("Abstract"); abs != nil {
		var parts []string
		for _, at := range abs.FindChildren("AbstractText") {
			if at.Value != "" {
				parts = append(parts, at.Value)
			}
		}
		if len(parts) > 0 {
			ref.Add("Abstract", strings.Join(parts, " "), store.LevelMain)
		}
	}

	if lang := art.FindChild("Language"); lang != nil && lang.Value != "" {
		ref.Add("Language", lang.Value, store.LevelMain)
	}

	if ptl := art.FindChild("PublicationTypeList"); ptl != nil {
		for _, pt := range ptl.FindChildren("PublicationType") {
			if pt.Value != "" {
				ref.Add("PublicationType", pt.Value, store.LevelMain)
				ref.Add("TYPE", pt.Value, store.LevelMain)
			}
		}
	}
	if ref.FindValue(store.LevelMain, "TYPE") == "" {
		ref.Add("TYPE", "Journal Article", store.LevelMain)
	}

	if mh := mc.FindChild("MeshHeadingList"); mh != nil {
		for _, h := range mh.FindChildren("MeshHeading") {
			if d := h.FindChild("DescriptorName"); d != nil && d.Value != "" {
				ref.AddCanDup("Keyword", d.Value, store.LevelMain)
			}
		}
	}

	if eids := findArticleIDList(mc); eids != nil {
		for _, id := range eids.FindChildren("ArticleId") {
			if strings.EqualFold(id.Attr("IdType"), "doi") && id.Value != "" {
				ref.Add("DOI", id.Value, store.LevelMain)
			}
		}
	}

	return ref
}

func findArticleIDList(mc *xmlnode.Node) *xmlnode.Node {
	for c := mc.Down; c != nil; c = c.Next {
		if xmlnode.TagEquals(c.Tag, "ArticleIdList", "") {
			return c
		}
		if xmlnode.TagEquals(c.Tag, "PubmedData", "") {
			if l := c.FindChild("ArticleIdList"); l != nil {
				return l
			}
		}
	}
	return nil
}

func pubYear(pd *xmlnode.Node) string {
	if y := pd.FindChild("Year"); y != nil {
		return y.Value
	}
	if md := pd.FindChild("MedlineDate"); md != nil {
		return md.Value
	}
	return ""
}
