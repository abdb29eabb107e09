package copac

import (
	"io"
	"strconv"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/format/taggedline"
)

// Parse implements format.Parser over COPAC: each record is a run of
// "XX: value" lines terminated by a blank line.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	records, err := taggedline.Scan(r, ":", "")
	if err != nil {
		return nil, err
	}

	out := store.NewCollection()
	for i, rec := range records {
		ref := store.NewReference()
		for _, ln := range rec {
			switch ln.Tag {
			case "AU", "ED":
				addName(ref, ln.Tag, ln.Value)
				continue
			}
			ref.AddCanDup(ln.Tag, ln.Value, store.LevelMain)
		}
		ref.Add("TYPE", "Book", store.LevelMain)
		ref.Add("REFNUM", "copac"+strconv.Itoa(i+1), store.LevelMain)
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
