package pipeline

import (
	"testing"

	"github.com/osu-libraries/bibconv/diag"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

func TestResolveCrossrefMergesParentAtHostLevel(t *testing.T) {
	parent := store.NewReference()
	parent.Add("REFNUM", "proc2020", store.LevelMain)
	parent.Add("TYPE", "proceedings", store.LevelMain)
	parent.Add("TITLE", "Proceedings of Examples", store.LevelMain)
	parent.Add("DATE:YEAR", "2020", store.LevelMain)

	child := store.NewReference()
	child.Add("REFNUM", "ex1", store.LevelMain)
	child.Add("XREF", "proc2020", store.LevelMain)

	all := store.NewCollection()
	all.Append(parent)
	all.Append(child)

	sink := &diag.Sink{}
	resolveCrossref(child, all, reftype.ReftypeInproceedings, sink, "sample.bib", 1)

	if sink.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", sink.Records)
	}
	if got := child.FindValue(store.LevelHost, "BOOKTITLE"); got != "Proceedings of Examples" {
		t.Fatalf("BOOKTITLE = %q, want renamed parent TITLE", got)
	}
	if got := child.FindValue(store.LevelHost, "DATE:YEAR"); got != "2020" {
		t.Fatalf("YEAR = %q", got)
	}
	if i := child.Find("XREF", store.LevelMain); i == store.NotFound || !child.Used(i) {
		t.Fatalf("child's XREF entry not marked used after resolving")
	}
}

func TestResolveCrossrefUnresolvedWarns(t *testing.T) {
	child := store.NewReference()
	child.Add("REFNUM", "ex1", store.LevelMain)
	child.Add("XREF", "missing", store.LevelMain)

	all := store.NewCollection()
	all.Append(child)

	sink := &diag.Sink{}
	resolveCrossref(child, all, reftype.ReftypeArticle, sink, "sample.bib", 0)

	if sink.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", sink.Len())
	}
}

func TestFindCrossrefParentIsCaseSensitive(t *testing.T) {
	parent := store.NewReference()
	parent.Add("REFNUM", "Smith2020", store.LevelMain)

	other := store.NewReference()
	other.Add("REFNUM", "smith2020", store.LevelMain)

	all := store.NewCollection()
	all.Append(parent)
	all.Append(other)

	got := findCrossrefParent(all, "Smith2020")
	if got != parent {
		t.Fatal("expected exact-case match to resolve to the matching-case parent")
	}
	if findCrossrefParent(all, "SMITH2020") != nil {
		t.Fatal("expected no match for a key differing only by case")
	}
}
