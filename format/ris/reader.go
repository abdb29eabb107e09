package ris

import (
	"io"
	"strconv"
	"strings"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/format/taggedline"
)

// Parse implements format.Parser over RIS: each record is a run of "TAG  -
// value" lines terminated by "ER  -", with RIS's own tags (TY, AU, TI, ...)
// carried through as raw tags for the converter to translate.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	records, err := taggedline.Scan(r, "  - ", "ER")
	if err != nil {
		return nil, err
	}

	out := store.NewCollection()
	for i, rec := range records {
		ref := store.NewReference()
		refnum := ""
		for _, ln := range rec {
			switch strings.ToUpper(ln.Tag) {
			case "ER":
				continue
			case "TY":
				ref.Add("TYPE", ln.Value, store.LevelMain)
				continue
			case "ID":
				refnum = ln.Value
				continue
			case "AU", "A1":
				addName(ref, ln.Tag, ln.Value)
				continue
			case "A2", "ED":
				addName(ref, ln.Tag, ln.Value)
				continue
			}
			ref.AddCanDup(ln.Tag, ln.Value, store.LevelMain)
		}
		if refnum == "" {
			refnum = defaultRefnum(i)
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

func defaultRefnum(i int) string {
	return "ris" + strconv.Itoa(i+1)
}

// cleanEntry is RIS's cleaner stage: currently a no-op since RIS carries no
// LaTeX-style markup, registered so the pipeline has a uniform hook to call
// even when there is nothing to clean.
func cleanEntry(ref *store.Reference) {
	_ = ref
}
