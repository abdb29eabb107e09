package bibtex

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

func TestParseArticle(t *testing.T) {
	src := `@article{smith2020,
  title = {A Study of Things},
  author = {Smith, John and Doe, Jane},
  journal = {Journal of Studies},
  year = {2020},
  pages = {101--109},
}`
	col, err := (&In{}).Parse(strings.NewReader(src), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d entries, want 1", col.Len())
	}
	ref := col.At(0)
	if ref.FindValue(store.LevelMain, "TYPE") != "article" {
		t.Fatalf("type = %q", ref.FindValue(store.LevelMain, "TYPE"))
	}
	if ref.FindValue(store.LevelMain, "year") != "2020" {
		t.Fatalf("year = %q", ref.FindValue(store.LevelMain, "year"))
	}
	var authors []string
	authors = ref.FindValueEach(store.LevelMain, "author", authors)
	if len(authors) != 2 {
		t.Fatalf("authors = %v", authors)
	}
	if authors[0] != "Smith|John" {
		t.Fatalf("author[0] = %q, want Smith|John", authors[0])
	}
}

func TestParseStripsLaTeXBraces(t *testing.T) {
	src := `@misc{key1, title = {{A} Title With {Braces}}}`
	col, err := (&In{}).Parse(strings.NewReader(src), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cleanEntry(col.At(0))
	if got := col.At(0).FindValue(store.LevelMain, "title"); got != "A Title With Braces" {
		t.Fatalf("title = %q", got)
	}
}

func TestEntryTypeForRoundTrip(t *testing.T) {
	ref := store.NewReference()
	ref.Add("TYPE", "Article", store.LevelMain)
	ref.Add("JOURNAL", "X", store.LevelHost)
	if got := entryTypeFor(ref); got != "article" {
		t.Fatalf("entryTypeFor = %q", got)
	}
}

func TestEntryTypeForMastersGenre(t *testing.T) {
	ref := store.NewReference()
	ref.Add("TYPE", "thesis", store.LevelMain)
	ref.Add("GENRE:MARC", "Master's thesis", store.LevelMain)
	if got := entryTypeFor(ref); got != "mastersthesis" {
		t.Fatalf("entryTypeFor = %q, want mastersthesis", got)
	}
}

func TestPagesRangeArticleNumberFallback(t *testing.T) {
	ref := store.NewReference()
	ref.Add("ARTICLENUMBER", "e12345", store.LevelMain)
	if got := pagesRange(ref, reftype.FormatOptions(0)); got != "e12345" {
		t.Fatalf("pagesRange = %q, want ARTICLENUMBER fallback", got)
	}
}

func TestSerializeWritesPageTotal(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "doe2021", store.LevelMain)
	ref.Add("TYPE", "Article", store.LevelMain)
	ref.Add("TITLE", "A Title", store.LevelMain)
	ref.Add("PAGES:TOTAL", "9", store.LevelMain)
	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out := b.String(); !strings.Contains(out, "pagetotal = {9}") {
		t.Fatalf("missing pagetotal field: %s", out)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	ref := store.NewReference()
	ref.Add("REFNUM", "doe2021", store.LevelMain)
	ref.Add("TYPE", "Article", store.LevelMain)
	ref.Add("TITLE", "A Title", store.LevelMain)
	ref.AddCanDup("AUTHOR", "Doe|Jane", store.LevelMain)
	ref.Add("JOURNAL", "Some Journal", store.LevelHost)
	ref.Add("DATE:YEAR", "2021", store.LevelMain)
	col := store.NewCollection()
	col.Append(ref)

	var b strings.Builder
	if err := (&Out{}).Serialize(&b, col, format.NewSerializeOptions()); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "@article{doe2021,") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "Doe, Jane") {
		t.Fatalf("missing author: %s", out)
	}
}
