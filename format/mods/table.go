package mods

import "github.com/osu-libraries/bibconv/reftype"

// modsTable is the MODSIN type table and tag translation rules. MODS'
// typeOfResource/genre pair determines the work type; the reader stores the
// first of genre and typeOfResource as the raw TYPE string consulted here.
var modsTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "article", Type: reftype.ReftypeArticle},
		{Name: "book", Type: reftype.ReftypeBook},
		{Name: "chapter", Type: reftype.ReftypeIncollection},
		{Name: "conference publication", Type: reftype.ReftypeInproceedings},
		{Name: "proceedings", Type: reftype.ReftypeProceedings},
		{Name: "thesis", Type: reftype.ReftypeThesisPhD},
		{Name: "masters thesis", Type: reftype.ReftypeThesisMasters},
		{Name: "technical report", Type: reftype.ReftypeTechreport},
		{Name: "software, multimedia", Type: reftype.ReftypeSoftware},
		{Name: "dataset", Type: reftype.ReftypeDataset},
		{Name: "patent", Type: reftype.ReftypePatent},
		{Name: "text", Type: reftype.ReftypeMisc, Default: true},
	},
	Common: []reftype.TagRule{
		{RawTag: "title", OutTag: "TITLE", Process: reftype.ProcessTitle},
		{RawTag: "subtitle", OutTag: "SUBTITLE", Process: reftype.ProcessTitle},
		{RawTag: "name", OutTag: "AUTHOR", Process: reftype.ProcessPerson},
		{RawTag: "name:editor", OutTag: "EDITOR", Process: reftype.ProcessPerson},
		{RawTag: "dateIssued", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple},
		{RawTag: "dateIssuedMonth", OutTag: "DATE:MONTH", Process: reftype.ProcessSimple},
		{RawTag: "dateIssuedDay", OutTag: "DATE:DAY", Process: reftype.ProcessSimple},
		{RawTag: "dateCreated", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple},
		{RawTag: "dateCreatedMonth", OutTag: "DATE:MONTH", Process: reftype.ProcessSimple},
		{RawTag: "dateCreatedDay", OutTag: "DATE:DAY", Process: reftype.ProcessSimple},
		{RawTag: "publisher", OutTag: "PUBLISHER", Process: reftype.ProcessSimple},
		{RawTag: "place", OutTag: "ADDRESS", Process: reftype.ProcessSimple},
		{RawTag: "edition", OutTag: "EDITION", Process: reftype.ProcessSimple},
		{RawTag: "extent", OutTag: "PAGES", Process: reftype.ProcessPages},
		{RawTag: "extentTotal", OutTag: "PAGES:TOTAL", Process: reftype.ProcessSimple},
		{RawTag: "volume", OutTag: "VOLUME", Process: reftype.ProcessSimple},
		{RawTag: "issue", OutTag: "ISSUE", Process: reftype.ProcessSimple},
		{RawTag: "genre", OutTag: "GENRE", Process: reftype.ProcessGenre},
		{RawTag: "identifier:doi", OutTag: "DOI", Process: reftype.ProcessSimple},
		{RawTag: "identifier:isbn", OutTag: "ISBN", Process: reftype.ProcessSimple},
		{RawTag: "identifier:issn", OutTag: "ISSN", Process: reftype.ProcessSimple},
		{RawTag: "identifier:uri", OutTag: "URL", Process: reftype.ProcessURL},
		{RawTag: "location:url", OutTag: "URL", Process: reftype.ProcessURL},
		{RawTag: "abstract", OutTag: "ABSTRACT", Process: reftype.ProcessSimple},
		{RawTag: "note", OutTag: "NOTES", Process: reftype.ProcessNotes},
		{RawTag: "language", OutTag: "LANGUAGE", Process: reftype.ProcessSimple},
		{RawTag: "subject", OutTag: "KEYWORD", Process: reftype.ProcessSimple},
		{RawTag: "school", OutTag: "DEGREEGRANTOR", Process: reftype.ProcessBltSchool},
	},
}
