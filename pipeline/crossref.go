package pipeline

import (
	"strings"

	"github.com/osu-libraries/bibconv/diag"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

// resolveCrossref implements the generic cross-reference merge: a child
// reference's XREF tag names the REFNUM of a parent reference already seen
// in the same collection. Every parent field not itself a REFNUM/XREF is
// copied onto the child at LevelHost, so an Inproceedings/Incollection
// child picks up its containing Proceedings/Book's venue, year, and
// publisher without the source format having to repeat them per entry.
//
// When the child's own type is Inproceedings or Incollection, the parent's
// TITLE is renamed to BOOKTITLE on the way in: the parent is a proceedings
// or edited collection, and "the proceedings' title" is a more useful
// internal tag than a second bare TITLE at LevelHost.
func resolveCrossref(ref *store.Reference, all *store.Collection, rt reftype.Reftype, sink *diag.Sink, filename string, idx int) {
	xref := ref.FindValue(store.LevelMain, "XREF")
	if xref == "" {
		return
	}
	parent := findCrossrefParent(all, xref)
	if parent == nil {
		sink.Warnf(filename, idx, "XREF", "unresolved cross-reference to %q", xref)
		return
	}

	if i := ref.Find("XREF", store.LevelMain); i != store.NotFound {
		ref.SetUsed(i)
	}

	renameTitle := rt == reftype.ReftypeInproceedings || rt == reftype.ReftypeIncollection

	for _, e := range parent.Entries() {
		switch strings.ToUpper(e.Tag) {
		case "REFNUM", "XREF":
			continue
		}
		tag := e.Tag
		if renameTitle && strings.EqualFold(tag, "TITLE") {
			tag = "BOOKTITLE"
		}
		ref.AddCanDup(tag, e.Value, store.LevelHost)
	}
}

// findCrossrefParent resolves an XREF/crossref target by exact,
// case-sensitive key match (cleanRefMatch), not store.Collection's own
// case-insensitive FindByRefnum: biblatex keys are case-sensitive, and two
// keys differing only by case ("Smith2020"/"smith2020") name two different
// entries.
func findCrossrefParent(all *store.Collection, xref string) *store.Reference {
	for _, r := range all.All() {
		if cleanRefMatch(xref, r.FindValue(store.LevelAny, "REFNUM")) {
			return r
		}
	}
	return nil
}
