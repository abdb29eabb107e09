package ebi

import "github.com/osu-libraries/bibconv/reftype"

// medlineTable is the MEDLINEIN/EBIIN type table and tag translation rules.
// Both readers in this package normalise onto the same raw tag vocabulary
// (ArticleTitle, AuthorList, Journal, ...) before translation, so one table
// serves both format identifiers.
var medlineTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "Journal Article", Type: reftype.ReftypeArticle, Default: true},
		{Name: "Review", Type: reftype.ReftypeArticle},
		{Name: "Dataset", Type: reftype.ReftypeDataset},
	},
	Common: []reftype.TagRule{
		{RawTag: "ArticleTitle", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "AuthorList", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "Journal", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "PubDate", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Volume", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Issue", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "MedlinePgn", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "Abstract", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "ISSN", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Language", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PublicationType", OutTag: "GENRE", Process: reftype.ProcessGenre, LevelOffset: 0},
		{RawTag: "DOI", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Keyword", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
