package isi

import "github.com/osu-libraries/bibconv/reftype"

// isiTable is the ISIIN type table and tag translation rules, grounded in
// the Web of Science "PT" (publication type) code and its tagged field set.
var isiTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "J", Type: reftype.ReftypeArticle, Default: true},
		{Name: "B", Type: reftype.ReftypeBook},
		{Name: "S", Type: reftype.ReftypeProceedings},
		{Name: "P", Type: reftype.ReftypePatent},
	},
	Common: []reftype.TagRule{
		{RawTag: "TI", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "AU", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "AF", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "BE", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "SO", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "BS", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 2},
		{RawTag: "PY", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "VL", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "IS", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "BP", OutTag: "PAGES:START", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "EP", OutTag: "PAGES:STOP", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PU", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PI", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "SN", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "BN", OutTag: "ISBN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "DI", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "AB", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "DE", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "ID", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "LA", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "C1", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
