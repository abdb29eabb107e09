package bibtex

import "github.com/osu-libraries/bibconv/reftype"

// bibtexTable is the BIBTEXIN type table and tag translation rules,
// grounded in the standard BibTeX entry-type set.
var bibtexTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "article", Type: reftype.ReftypeArticle},
		{Name: "book", Type: reftype.ReftypeBook},
		{Name: "inbook", Type: reftype.ReftypeInbook},
		{Name: "incollection", Type: reftype.ReftypeIncollection},
		{Name: "inproceedings", Type: reftype.ReftypeInproceedings},
		{Name: "conference", Type: reftype.ReftypeInproceedings},
		{Name: "proceedings", Type: reftype.ReftypeProceedings},
		{Name: "phdthesis", Type: reftype.ReftypeThesisPhD},
		{Name: "mastersthesis", Type: reftype.ReftypeThesisMasters},
		{Name: "techreport", Type: reftype.ReftypeTechreport},
		{Name: "report", Type: reftype.ReftypeTechreport},
		{Name: "unpublished", Type: reftype.ReftypeUnpublished},
		{Name: "online", Type: reftype.ReftypeOnline},
		{Name: "electronic", Type: reftype.ReftypeOnline},
		{Name: "dataset", Type: reftype.ReftypeDataset},
		{Name: "software", Type: reftype.ReftypeSoftware},
		{Name: "patent", Type: reftype.ReftypePatent},
		{Name: "manual", Type: reftype.ReftypeManual},
		{Name: "booklet", Type: reftype.ReftypeBooklet},
		{Name: "misc", Type: reftype.ReftypeMisc, Default: true},
	},
	Common: []reftype.TagRule{
		{RawTag: "title", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "subtitle", OutTag: "SUBTITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "author", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "editor", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "year", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "date", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "month", OutTag: "DATE:MONTH", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "publisher", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "address", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "pages", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "eid", OutTag: "ARTICLENUMBER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "edition", OutTag: "EDITION", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "doi", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "isbn", OutTag: "ISBN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "issn", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "url", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "eprint", OutTag: "URL", Process: reftype.ProcessBtEprint, LevelOffset: 0},
		{RawTag: "archiveprefix", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
		{RawTag: "primaryclass", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
		{RawTag: "keywords", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "abstract", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "note", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
		{RawTag: "language", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "howpublished", OutTag: "", Process: reftype.ProcessHowPublished, LevelOffset: 0},
		{RawTag: "volume", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "number", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "series", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 2},
		{RawTag: "organization", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "institution", OutTag: "SPONSOR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "school", OutTag: "DEGREEGRANTOR", Process: reftype.ProcessBltSchool, LevelOffset: 0},
		{RawTag: "type", OutTag: "GENRE", Process: reftype.ProcessBltThesisType, LevelOffset: 0},
		{RawTag: "annote", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
		{RawTag: "chapter", OutTag: "CHAPTER", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{
		reftype.ReftypeArticle: {
			{RawTag: "journal", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
			{RawTag: "volume", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
		reftype.ReftypeInproceedings: {
			{RawTag: "booktitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
			{RawTag: "volume", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
		reftype.ReftypeIncollection: {
			{RawTag: "booktitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
			{RawTag: "volume", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
		reftype.ReftypeInbook: {
			{RawTag: "booktitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
	},
}
