package word

import "github.com/osu-libraries/bibconv/reftype"

// wordTable is the WORDIN type table and tag translation rules, grounded
// in Word 2007's <b:SourceType> vocabulary.
var wordTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "ArticleInAPeriodical", Type: reftype.ReftypeArticle},
		{Name: "Book", Type: reftype.ReftypeBook},
		{Name: "BookSection", Type: reftype.ReftypeInbook},
		{Name: "ConferenceProceedings", Type: reftype.ReftypeInproceedings},
		{Name: "Report", Type: reftype.ReftypeTechreport},
		{Name: "InternetSite", Type: reftype.ReftypeOnline},
		{Name: "DocumentFromInternetSite", Type: reftype.ReftypeOnline},
		{Name: "Patent", Type: reftype.ReftypePatent},
		{Name: "Misc", Type: reftype.ReftypeMisc, Default: true},
	},
	Common: []reftype.TagRule{
		{RawTag: "Title", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "Author", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "Editor", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "Year", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "JournalName", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "ConferenceName", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "Volume", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Issue", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Pages", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "Publisher", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "City", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "StandardNumber", OutTag: "ISBN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "URL", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "Comments", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
