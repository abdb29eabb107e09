package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/osu-libraries/bibconv/diag"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"

	_ "github.com/osu-libraries/bibconv/format/bibtex"
)

// snapshot flattens a reference into a comparable, order-independent shape
// so cmp.Diff reports a useful mismatch instead of a pointer dump.
type snapshot struct {
	Tag   string
	Value string
	Level store.Level
}

func snapshotRef(ref *store.Reference) []snapshot {
	var out []snapshot
	for _, e := range ref.Entries() {
		out = append(out, snapshot{Tag: e.Tag, Value: e.Value, Level: e.Level})
	}
	return out
}

func TestConvertArticleProducesCanonicalTags(t *testing.T) {
	raw := store.NewReference()
	raw.Add("REFNUM", "ex1", store.LevelMain)
	raw.Add("TYPE", "article", store.LevelMain)
	raw.Add("title", "Primary Results", store.LevelMain)
	raw.Add("author", "Garcia|Maria", store.LevelMain)
	raw.Add("journal", "Journal of Examples", store.LevelMain)
	raw.Add("pages", "101-9", store.LevelMain)

	col := store.NewCollection()
	col.Append(raw)

	param := NewParam(reftype.BIBTEXIN, reftype.MODSOUT)
	out, err := Convert(col, reftype.BIBTEXIN, "sample.bib", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("got %d references, want 1", out.Len())
	}
	ref := out.At(0)

	want := []snapshot{
		{Tag: "REFNUM", Value: "ex1", Level: store.LevelMain},
		{Tag: "TYPE", Value: "Article", Level: store.LevelMain},
		{Tag: "TITLE", Value: "Primary Results", Level: store.LevelMain},
		{Tag: "AUTHOR", Value: "Garcia|Maria", Level: store.LevelMain},
		{Tag: "JOURNAL", Value: "Journal of Examples", Level: store.LevelHost},
		{Tag: "PAGES:START", Value: "101", Level: store.LevelMain},
		{Tag: "PAGES:STOP", Value: "109", Level: store.LevelMain},
	}
	if diff := cmp.Diff(want, snapshotRef(ref)); diff != "" {
		t.Fatalf("converted reference mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertUnknownTagWarnsInVerboseMode(t *testing.T) {
	raw := store.NewReference()
	raw.Add("REFNUM", "ex2", store.LevelMain)
	raw.Add("TYPE", "article", store.LevelMain)
	raw.Add("nonesuch", "mystery value", store.LevelMain)

	col := store.NewCollection()
	col.Append(raw)

	param := NewParam(reftype.BIBTEXIN, reftype.MODSOUT)
	param.Options |= reftype.OptVerbose
	param.Diag = &diag.Sink{}

	if _, err := Convert(col, reftype.BIBTEXIN, "sample.bib", param); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(param.Diag.Records) == 0 {
		t.Fatal("expected a diagnostic for the untranslatable tag, got none")
	}
}
