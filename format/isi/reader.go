package isi

import (
	"io"
	"strconv"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/name"
	"github.com/osu-libraries/bibconv/store"
	"github.com/osu-libraries/bibconv/format/taggedline"
)

// Parse implements format.Parser over the ISI tagged export format: each
// record is a run of "XX value" lines terminated by a bare "ER" line. A
// leading "FN"/"VR" file header, if present, produces no record of its own
// since only runs that carry a "PT" line become records.
func (f *In) Parse(r io.Reader, opts *format.ParseOptions) (*store.Collection, error) {
	records, err := taggedline.Scan(r, " ", "ER")
	if err != nil {
		return nil, err
	}

	out := store.NewCollection()
	n := 0
	for _, rec := range records {
		hasType := false
		for _, ln := range rec {
			if ln.Tag == "PT" {
				hasType = true
			}
		}
		if !hasType {
			continue
		}
		n++

		ref := store.NewReference()
		for _, ln := range rec {
			switch ln.Tag {
			case "ER":
				continue
			case "PT":
				ref.Add("TYPE", ln.Value, store.LevelMain)
				continue
			case "AU", "AF", "BE":
				addName(ref, ln.Tag, ln.Value)
				continue
			}
			ref.AddCanDup(ln.Tag, ln.Value, store.LevelMain)
		}
		ref.Add("REFNUM", "isi"+strconv.Itoa(n), store.LevelMain)
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

func cleanEntry(ref *store.Reference) {
	_ = ref
}
