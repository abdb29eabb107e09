package isi

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleISI = `PT J
AU Garcia, M.
TI Primary Results
SO JOURNAL OF EXAMPLES
PY 2019
VL 12
BP 101
EP 109
ER

`

func TestParseISI(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleISI), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "TI"); got != "Primary Results" {
		t.Fatalf("TI = %q", got)
	}
}

func TestConvertISIArticle(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleISI), format.NewParseOptions())
	param := pipeline.NewParam(reftype.ISIIN, reftype.ISIOUT)
	out, err := pipeline.Convert(raw, reftype.ISIIN, "sample.isi", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "PAGES:START"); got != "101" {
		t.Fatalf("PAGESTART = %q", got)
	}
}
