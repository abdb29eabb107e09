package biblatex

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleBiblatex = `@online{ex1,
  editora = {Garcia, Maria},
  title = {Primary Results},
  year = {2019},
  eprinttype = {arxiv},
  eprint = {1234.5678},
  url = {https://example.org/ex1},
}
`

func TestParseBiblatex(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleBiblatex), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "title"); got != "Primary Results" {
		t.Fatalf("title = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "editora"); got != "Garcia|Maria" {
		t.Fatalf("editora = %q", got)
	}
}

func TestConvertBiblatexOnline(t *testing.T) {
	raw, err := (&In{}).Parse(strings.NewReader(sampleBiblatex), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	param := pipeline.NewParam(reftype.BIBLATEXIN, reftype.MODSOUT)
	out, err := pipeline.Convert(raw, reftype.BIBLATEXIN, "sample.bib", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "TITLE"); got != "Primary Results" {
		t.Fatalf("TITLE = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "DATE:YEAR"); got != "2019" {
		t.Fatalf("YEAR = %q", got)
	}
}

func TestExtractHref(t *testing.T) {
	text, url := extractHref(`See \href{https://example.org}{the archive} for details.`)
	if want := "See the archive for details."; text != want {
		t.Fatalf("extractHref text = %q, want %q", text, want)
	}
	if want := "https://example.org"; url != want {
		t.Fatalf("extractHref url = %q, want %q", url, want)
	}
}

func TestExtractHrefNoMatch(t *testing.T) {
	text, url := extractHref("plain note with no link")
	if text != "plain note with no link" || url != "" {
		t.Fatalf("extractHref(%q) = (%q, %q), want unchanged text and empty url", "plain note with no link", text, url)
	}
}

func TestReaderKeepsHrefURL(t *testing.T) {
	const src = `@online{ex2,
  title = {With Link},
  note = {See \href{https://example.org/archive}{the archive} for details.},
}
`
	col, err := (&In{}).Parse(strings.NewReader(src), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "note"); got != "See the archive for details." {
		t.Fatalf("note = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "url"); got != "https://example.org/archive" {
		t.Fatalf("url = %q, want href target preserved", got)
	}
}

func TestConvertBiblatexEditorRole(t *testing.T) {
	const src = `@collection{ex3,
  editora = {Garcia, Maria},
  editoratype = {compiler},
  title = {Primary Results},
  year = {2019},
}
`
	raw, err := (&In{}).Parse(strings.NewReader(src), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	param := pipeline.NewParam(reftype.BIBLATEXIN, reftype.MODSOUT)
	out, err := pipeline.Convert(raw, reftype.BIBLATEXIN, "sample.bib", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "COMPILER"); got != "Garcia|Maria" {
		t.Fatalf("COMPILER = %q, want editoratype=compiler routed off EDITOR", got)
	}
	if got := ref.FindValue(store.LevelMain, "EDITOR"); got != "" {
		t.Fatalf("EDITOR = %q, want empty once routed to COMPILER", got)
	}
}

func TestConvertBiblatexUnknownGenre(t *testing.T) {
	const src = `@thesis{ex4,
  title = {Primary Results},
  type = {some unheard-of degree},
  year = {2019},
}
`
	raw, err := (&In{}).Parse(strings.NewReader(src), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	param := pipeline.NewParam(reftype.BIBLATEXIN, reftype.MODSOUT)
	out, err := pipeline.Convert(raw, reftype.BIBLATEXIN, "sample.bib", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "GENRE:UNKNOWN"); got != "some unheard-of degree" {
		t.Fatalf("GENRE:UNKNOWN = %q, want the unrecognised genre preserved rather than dropped", got)
	}
}

func TestCanParseBiblatex(t *testing.T) {
	in := &In{}
	if !in.CanParse([]byte("@online{ex1, editora = {x}}")) {
		t.Fatal("expected CanParse to recognize biblatex-specific fields")
	}
	if in.CanParse([]byte("@article{ex1, author = {x}}")) {
		t.Fatal("expected CanParse to reject plain bibtex without biblatex markers")
	}
}
