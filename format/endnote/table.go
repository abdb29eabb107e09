package endnote

import "github.com/osu-libraries/bibconv/reftype"

// endnoteTable is the ENDNOTEIN type table and tag translation rules,
// grounded in EndNote's "%0 Reference Type" vocabulary.
var endnoteTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "Journal Article", Type: reftype.ReftypeArticle},
		{Name: "Book", Type: reftype.ReftypeBook},
		{Name: "Book Section", Type: reftype.ReftypeInbook},
		{Name: "Conference Paper", Type: reftype.ReftypeInproceedings},
		{Name: "Conference Proceedings", Type: reftype.ReftypeProceedings},
		{Name: "Thesis", Type: reftype.ReftypeThesisPhD},
		{Name: "Report", Type: reftype.ReftypeTechreport},
		{Name: "Unpublished Work", Type: reftype.ReftypeUnpublished},
		{Name: "Web Page", Type: reftype.ReftypeOnline},
		{Name: "Dataset", Type: reftype.ReftypeDataset},
		{Name: "Computer Program", Type: reftype.ReftypeSoftware},
		{Name: "Patent", Type: reftype.ReftypePatent},
		{Name: "Generic", Type: reftype.ReftypeMisc, Default: true},
	},
	Common: []reftype.TagRule{
		{RawTag: "%T", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "%A", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "%E", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "%D", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%J", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "%B", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "%V", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%N", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%P", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "%I", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%C", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%@", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%U", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "%X", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%K", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%G", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%7", OutTag: "EDITION", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%8", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
		{RawTag: "%R", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "%9", OutTag: "GENRE", Process: reftype.ProcessGenre, LevelOffset: 0},
		{RawTag: "%W", OutTag: "DEGREEGRANTOR", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
