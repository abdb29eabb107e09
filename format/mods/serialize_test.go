package mods

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/store"
)

func TestSerializeModsGenreAndDate(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r1", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("GENRE:BIBUTILS", "periodical", store.LevelMain)
	ref.Add("DATE:YEAR", "2019", store.LevelMain)
	ref.Add("DATE:MONTH", "07", store.LevelMain)

	var b strings.Builder
	writeMods(&b, ref)
	out := b.String()

	if !strings.Contains(out, "<genre>periodical</genre>") {
		t.Fatalf("expected genre element, got:\n%s", out)
	}
	if !strings.Contains(out, "<dateIssued>2019-07</dateIssued>") {
		t.Fatalf("expected month-precision dateIssued, got:\n%s", out)
	}
}

func TestSerializeModsArticleNumberFallback(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "r2", store.LevelMain)
	ref.Add("TITLE", "Primary Results", store.LevelMain)
	ref.Add("ARTICLENUMBER", "e12345", store.LevelMain)
	ref.Add("PAGES:TOTAL", "9", store.LevelMain)
	ref.Add("VOLUME", "12", store.LevelHost)
	ref.Add("PARTDATE:YEAR", "2020", store.LevelHost)

	var b strings.Builder
	writeMods(&b, ref)
	out := b.String()

	if !strings.Contains(out, "<start>e12345</start>") {
		t.Fatalf("expected ARTICLENUMBER fallback for <start>, got:\n%s", out)
	}
	if !strings.Contains(out, "<total>9</total>") {
		t.Fatalf("expected PAGES:TOTAL extent, got:\n%s", out)
	}
	if !strings.Contains(out, "<date>2020</date>") {
		t.Fatalf("expected host-level PARTDATE in <part>/<date>, got:\n%s", out)
	}
}
