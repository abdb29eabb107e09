package copac

import "github.com/osu-libraries/bibconv/reftype"

// copacTable is the COPACIN type table and tag translation rules, grounded
// in the COPAC union catalogue's "TI:"/"AU:" tagged record vocabulary.
var copacTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "Book", Type: reftype.ReftypeBook, Default: true},
		{Name: "Serial", Type: reftype.ReftypeArticle},
		{Name: "Thesis", Type: reftype.ReftypeThesisPhD},
	},
	Common: []reftype.TagRule{
		{RawTag: "TI", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "AU", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "ED", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "PY", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PB", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PP", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "SE", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 2},
		{RawTag: "SN", OutTag: "ISBN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "NT", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
		{RawTag: "LA", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
