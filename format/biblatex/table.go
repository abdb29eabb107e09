package biblatex

import "github.com/osu-libraries/bibconv/reftype"

// biblatexTable is the BIBLATEXIN type table and tag translation rules,
// extending BibTeX's entry-type set with biblatex's additions (online,
// dataset, software with proper entry types rather than BibTeX's misc
// overload) and its multi-role editor fields.
var biblatexTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "article", Type: reftype.ReftypeArticle},
		{Name: "book", Type: reftype.ReftypeBook},
		{Name: "inbook", Type: reftype.ReftypeInbook},
		{Name: "bookinbook", Type: reftype.ReftypeInbook},
		{Name: "incollection", Type: reftype.ReftypeIncollection},
		{Name: "inproceedings", Type: reftype.ReftypeInproceedings},
		{Name: "proceedings", Type: reftype.ReftypeProceedings},
		{Name: "thesis", Type: reftype.ReftypeThesisPhD},
		{Name: "phdthesis", Type: reftype.ReftypeThesisPhD},
		{Name: "mastersthesis", Type: reftype.ReftypeThesisMasters},
		{Name: "report", Type: reftype.ReftypeTechreport},
		{Name: "unpublished", Type: reftype.ReftypeUnpublished},
		{Name: "online", Type: reftype.ReftypeOnline},
		{Name: "dataset", Type: reftype.ReftypeDataset},
		{Name: "software", Type: reftype.ReftypeSoftware},
		{Name: "patent", Type: reftype.ReftypePatent},
		{Name: "misc", Type: reftype.ReftypeMisc, Default: true},
	},
	Common: []reftype.TagRule{
		{RawTag: "title", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "subtitle", OutTag: "SUBTITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "author", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "editor", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "editora", OutTag: "", Process: reftype.ProcessBltEditor, LevelOffset: 0},
		{RawTag: "editorb", OutTag: "", Process: reftype.ProcessBltEditor, LevelOffset: 0},
		{RawTag: "editorc", OutTag: "", Process: reftype.ProcessBltEditor, LevelOffset: 0},
		{RawTag: "editoratype", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
		{RawTag: "editorbtype", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
		{RawTag: "editorctype", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
		{RawTag: "date", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "year", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "publisher", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "location", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "pages", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "eid", OutTag: "ARTICLENUMBER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "pagetotal", OutTag: "PAGES:TOTAL", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "edition", OutTag: "EDITION", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "doi", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "isbn", OutTag: "ISBN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "issn", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "url", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "eprint", OutTag: "URL", Process: reftype.ProcessBtEprint, LevelOffset: 0},
		{RawTag: "eprinttype", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
		{RawTag: "eprintclass", OutTag: "", Process: reftype.ProcessBltSkip, LevelOffset: 0},
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
		{RawTag: "entrysubtype", OutTag: "GENRE", Process: reftype.ProcessBltSubtype, LevelOffset: 0},
		{RawTag: "annotation", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
		{RawTag: "chapter", OutTag: "CHAPTER", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{
		reftype.ReftypeArticle: {
			{RawTag: "journaltitle", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
			{RawTag: "journal", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
		reftype.ReftypeInproceedings: {
			{RawTag: "booktitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
			{RawTag: "eventtitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
		reftype.ReftypeIncollection: {
			{RawTag: "booktitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
		reftype.ReftypeInbook: {
			{RawTag: "booktitle", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
		},
	},
}
