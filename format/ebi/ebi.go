// Package ebi provides the MEDLINEIN/EBIIN format plugins for PubMed's
// MEDLINE/PubMed XML citation export (the schema EBI's Europe PMC mirrors).
package ebi

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
)

type In struct{}

var (
	_ format.Format = (*In)(nil)
	_ format.Parser = (*In)(nil)
)

func (f *In) Name() string        { return "medlinein" }
func (f *In) Description() string { return "PubMed/MEDLINE XML citation export (reader)" }
func (f *In) Extensions() []string {
	return []string{"xml", "nxml"}
}
func (f *In) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("<PubmedArticle")) || bytes.Contains(peek, []byte("<MedlineCitation"))
}

func init() {
	format.Register(&In{})
	reftype.RegisterTable(reftype.MEDLINEIN, medlineTable)
}
