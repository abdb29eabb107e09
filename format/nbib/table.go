package nbib

import "github.com/osu-libraries/bibconv/reftype"

// nbibTable is the NBIBIN type table and tag translation rules, grounded in
// the PubMed/MEDLINE citation tag set (PT, TI, AU, JT, DP, VI, IP, PG, ...).
var nbibTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "Journal Article", Type: reftype.ReftypeArticle, Default: true},
		{Name: "Review", Type: reftype.ReftypeArticle},
		{Name: "Dataset", Type: reftype.ReftypeDataset},
	},
	Common: []reftype.TagRule{
		{RawTag: "TI", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "AU", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "FAU", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "JT", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "TA", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "DP", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "VI", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "IP", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PG", OutTag: "PAGES", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "AB", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "LID", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "AID", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "IS", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "MH", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "OT", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "LA", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PT", OutTag: "GENRE", Process: reftype.ProcessGenre, LevelOffset: 0},
		{RawTag: "PL", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{},
}
