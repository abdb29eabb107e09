package ris

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleRIS = `TY  - JOUR
AU  - Garcia, Maria
TI  - Primary Results
T2  - Journal of Examples
PY  - 2019
VL  - 12
SP  - 101
EP  - 109
DO  - 10.1000/example
ER  -

`

func TestParseRIS(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleRIS), format.NewParseOptions())
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
	if got := ref.FindValue(store.LevelMain, "AU"); got != "Garcia|Maria" {
		t.Fatalf("AU = %q", got)
	}
}

func TestConvertRISArticle(t *testing.T) {
	raw, err := (&In{}).Parse(strings.NewReader(sampleRIS), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	param := pipeline.NewParam(reftype.RISIN, reftype.RISOUT)
	out, err := pipeline.Convert(raw, reftype.RISIN, "sample.ris", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "TITLE"); got != "Primary Results" {
		t.Fatalf("TITLE = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "PAGES:START"); got != "101" {
		t.Fatalf("PAGESTART = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "PAGES:STOP"); got != "109" {
		t.Fatalf("PAGEEND = %q", got)
	}
}

func TestSerializeRIS(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r1", store.LevelMain)
	ref.Add("TYPE", "Article", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("AUTHOR", "Garcia|Maria", store.LevelMain)
	ref.Add("DATE:YEAR", "2019", store.LevelMain)

	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "TY  - JOUR") {
		t.Fatalf("missing TY line: %s", out)
	}
	if !strings.Contains(out, "AU  - Garcia, Maria") {
		t.Fatalf("missing AU line: %s", out)
	}
}

func TestSerializeRISArticleNumberFallback(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r2", store.LevelMain)
	ref.Add("TYPE", "Article", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("ARTICLENUMBER", "e12345", store.LevelMain)

	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out := b.String(); !strings.Contains(out, "SP  - e12345") {
		t.Fatalf("expected ARTICLENUMBER fallback for SP line, got: %s", out)
	}
}
