package endnotexml

import "github.com/osu-libraries/bibconv/reftype"

// endnoteXMLTable is the ENDNOTEXMLIN type table and tag translation rules,
// reusing the tagged EndNote format's raw tag names (the reader normalises
// onto them) so the two EndNote readers share one vocabulary.
var endnoteXMLTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "Journal Article", Type: reftype.ReftypeArticle, Default: true},
		{Name: "Book", Type: reftype.ReftypeBook},
		{Name: "Book Section", Type: reftype.ReftypeInbook},
		{Name: "Conference Paper", Type: reftype.ReftypeInproceedings},
		{Name: "Thesis", Type: reftype.ReftypeThesisPhD},
		{Name: "Report", Type: reftype.ReftypeTechreport},
		{Name: "Web Page", Type: reftype.ReftypeOnline},
	},
	Common: []reftype.TagRule{
		{RawTag: "%T", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "%A", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "%E", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "%D", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%J", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "%V", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%N", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%P", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "%I", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%@", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%U", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "%X", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%K", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%R", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
