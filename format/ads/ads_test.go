package ads

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/store"
)

func TestSerializeADS(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r1", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("AUTHOR", "Garcia|Maria", store.LevelMain)
	ref.Add("DATE:YEAR", "2019", store.LevelMain)
	ref.Add("JOURNAL", "Journal of Examples", store.LevelHost)
	ref.Add("VOLUME", "12", store.LevelMain)

	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "%T Primary Results") {
		t.Fatalf("missing %%T line: %s", out)
	}
	if !strings.Contains(out, "%A Garcia, Maria") {
		t.Fatalf("missing %%A line: %s", out)
	}
	if !strings.Contains(out, "%J Journal of Examples, 12") {
		t.Fatalf("missing %%J line: %s", out)
	}
}

func TestSerializeADSArticleNumberFallback(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r2", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("ARTICLENUMBER", "e12345", store.LevelMain)

	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out := b.String(); !strings.Contains(out, "%P e12345") {
		t.Fatalf("expected ARTICLENUMBER fallback for %%P line, got: %s", out)
	}
}
