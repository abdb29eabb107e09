package nbib

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleNBIB = `PMID- 21236825
TI  - Primary Results
FAU - Garcia, Maria
JT  - Journal of Examples
DP  - 2019
VI  - 12
PG  - 101-109

`

func TestParseNBIB(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleNBIB), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "REFNUM"); got != "21236825" {
		t.Fatalf("REFNUM = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "TI"); got != "Primary Results" {
		t.Fatalf("TI = %q", got)
	}
}

func TestConvertNBIBArticle(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleNBIB), format.NewParseOptions())
	param := pipeline.NewParam(reftype.NBIBIN, reftype.NBIBOUT)
	out, err := pipeline.Convert(raw, reftype.NBIBIN, "sample.nbib", param)
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

func TestWriteLineWraps(t *testing.T) {
	var b strings.Builder
	long := strings.Repeat("word ", 30)
	writeLine(&b, "AB", long)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if len(line) > wrapColumn {
			t.Fatalf("line exceeds %d columns: %q", wrapColumn, line)
		}
	}
}
