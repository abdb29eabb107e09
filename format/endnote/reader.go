package endnote

import (
	"io"
	"strconv"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/format/taggedline"
)

// Parse implements format.Parser over EndNote's tagged import format: each
// record is a run of "%X value" lines terminated by a blank line.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	records, err := taggedline.Scan(r, " ", "")
	if err != nil {
		return nil, err
	}

	out := store.NewCollection()
	for i, rec := range records {
		ref := store.NewReference()
		refnum := ""
		for _, ln := range rec {
			switch ln.Tag {
			case "%0":
				ref.Add("TYPE", ln.Value, store.LevelMain)
				continue
			case "%F":
				refnum = ln.Value
				continue
			case "%A", "%E":
				addName(ref, ln.Tag, ln.Value)
				continue
			}
			ref.AddCanDup(ln.Tag, ln.Value, store.LevelMain)
		}
		if refnum == "" {
			refnum = "endnote" + strconv.Itoa(i+1)
		}
		ref.Add("REFNUM", refnum, store.LevelMain)
		out.Append(ref)
	}
	return out, nil
}

func addName(ref *store.Reference, tag, value string) {
	for _, n := range name.SplitNames(value) {
		if name.IsEtAlMarker(n) {
			ref.AddCanDup(tag, name.EtAl, store.LevelMain)
			continue
		}
		ref.AddCanDup(tag, name.Parse(n, nil, nil), store.LevelMain)
	}
}

// cleanEntry strips the LaTeX-style markup occasionally carried over into
// EndNote exports from a BibTeX source, the same pass bibtex's reader runs.
func cleanEntry(ref *store.Reference) {
	for i, e := range ref.Entries() {
		switch e.Tag {
		case "REFNUM", "TYPE", "%U", "%R":
			continue
		}
		ref.SetValue(i, pipeline.StripLaTeXGroups(e.Value))
	}
}
