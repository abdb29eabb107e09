package word

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleWord = `<?xml version="1.0" encoding="UTF-8"?>
<b:Sources xmlns:b="http://schemas.openxmlformats.org/officeDocument/2006/bibliography">
  <b:Source>
    <b:Tag>ref1</b:Tag>
    <b:SourceType>ArticleInAPeriodical</b:SourceType>
    <b:Title>Primary Results</b:Title>
    <b:JournalName>Journal of Examples</b:JournalName>
    <b:Year>2019</b:Year>
    <b:Volume>12</b:Volume>
    <b:Pages>101-109</b:Pages>
    <b:Author>
      <b:Author>
        <b:NameList>
          <b:Person><b:Last>Garcia</b:Last><b:First>Maria</b:First></b:Person>
        </b:NameList>
      </b:Author>
    </b:Author>
  </b:Source>
</b:Sources>`

func TestParseWord(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleWord), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "Title"); got != "Primary Results" {
		t.Fatalf("Title = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "Author"); got != "Garcia|Maria" {
		t.Fatalf("Author = %q", got)
	}
}

func TestConvertWordArticle(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleWord), format.NewParseOptions())
	param := pipeline.NewParam(reftype.WORDIN, reftype.WORD2007OUT)
	out, err := pipeline.Convert(raw, reftype.WORDIN, "sample.xml", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "PAGES:START"); got != "101" {
		t.Fatalf("PAGESTART = %q", got)
	}
}

func TestSerializeWord(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "ref1", store.LevelMain)
	ref.Add("TYPE", "Article", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("AUTHOR", "Garcia|Maria", store.LevelMain)

	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "<b:SourceType>ArticleInAPeriodical</b:SourceType>") {
		t.Fatalf("missing SourceType: %s", out)
	}
	if !strings.Contains(out, "<b:Last>Garcia</b:Last>") {
		t.Fatalf("missing author: %s", out)
	}
}
