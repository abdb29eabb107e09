package copac

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleCopac = `TI: A Survey Of Examples
AU: Garcia, Maria
PY: 2019
PB: Acme Press

`

func TestParseCopac(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleCopac), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "TI"); got != "A Survey Of Examples" {
		t.Fatalf("TI = %q", got)
	}
}

func TestConvertCopacBook(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleCopac), format.NewParseOptions())
	param := pipeline.NewParam(reftype.COPACIN, reftype.Unknown)
	out, err := pipeline.Convert(raw, reftype.COPACIN, "sample.copac", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "PUBLISHER"); got != "Acme Press" {
		t.Fatalf("PUBLISHER = %q", got)
	}
}
