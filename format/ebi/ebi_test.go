package ebi

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleMedline = `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>21236825</PMID>
      <Article>
        <Journal>
          <Title>Journal of Examples</Title>
          <JournalIssue><Volume>12</Volume><PubDate><Year>2019</Year></PubDate></JournalIssue>
        </Journal>
        <ArticleTitle>Primary Results</ArticleTitle>
        <Pagination><MedlinePgn>101-9</MedlinePgn></Pagination>
        <AuthorList>
          <Author><LastName>Garcia</LastName><ForeName>Maria</ForeName></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestParseMedline(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleMedline), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "ArticleTitle"); got != "Primary Results" {
		t.Fatalf("ArticleTitle = %q", got)
	}
}

func TestConvertMedlinePageExpansion(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleMedline), format.NewParseOptions())
	param := pipeline.NewParam(reftype.MEDLINEIN, reftype.Unknown)
	out, err := pipeline.Convert(raw, reftype.MEDLINEIN, "sample.xml", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "PAGES:START"); got != "101" {
		t.Fatalf("PAGESTART = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "PAGES:STOP"); got != "109" {
		t.Fatalf("PAGEEND = %q", got)
	}
}
