package endnote

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleEndNote = `%0 Journal Article
%A Garcia, Maria
%T Primary Results
%J Journal of Examples
%D 2019
%V 12
%P 101-109

`

func TestParseEndNote(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleEndNote), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "%T"); got != "Primary Results" {
		t.Fatalf("%%T = %q", got)
	}
}

func TestConvertEndNoteArticle(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleEndNote), format.NewParseOptions())
	param := pipeline.NewParam(reftype.ENDNOTEIN, reftype.ENDNOTEOUT)
	out, err := pipeline.Convert(raw, reftype.ENDNOTEIN, "sample.enw", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "PAGES:START"); got != "101" {
		t.Fatalf("PAGESTART = %q", got)
	}
	if got := ref.FindValue(store.LevelHost, "JOURNAL"); got != "Journal of Examples" {
		t.Fatalf("JOURNAL = %q", got)
	}
}

func TestSerializeEndNote(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r1", store.LevelMain)
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
	if !strings.Contains(out, "%0 Journal Article") {
		t.Fatalf("missing %%0 line: %s", out)
	}
	if !strings.Contains(out, "%A Garcia, Maria") {
		t.Fatalf("missing %%A line: %s", out)
	}
}
