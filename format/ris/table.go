package ris

import "github.com/osu-libraries/bibconv/reftype"

// risTable is the RISIN type table and tag translation rules, grounded in
// the standard RIS TY/tag vocabulary (Thomson Reuters' RIS format).
var risTable = &reftype.Table{
	Types: []reftype.TypeEntry{
		{Name: "JOUR", Type: reftype.ReftypeArticle},
		{Name: "JFULL", Type: reftype.ReftypeArticle},
		{Name: "BOOK", Type: reftype.ReftypeBook},
		{Name: "CHAP", Type: reftype.ReftypeInbook},
		{Name: "CONF", Type: reftype.ReftypeInproceedings},
		{Name: "CPAPER", Type: reftype.ReftypeInproceedings},
		{Name: "THES", Type: reftype.ReftypeThesisPhD},
		{Name: "RPRT", Type: reftype.ReftypeTechreport},
		{Name: "UNPB", Type: reftype.ReftypeUnpublished},
		{Name: "ELEC", Type: reftype.ReftypeOnline},
		{Name: "DATA", Type: reftype.ReftypeDataset},
		{Name: "COMP", Type: reftype.ReftypeSoftware},
		{Name: "PAT", Type: reftype.ReftypePatent},
		{Name: "MANSCPT", Type: reftype.ReftypeManual},
		{Name: "GEN", Type: reftype.ReftypeMisc, Default: true},
	},
	Common: []reftype.TagRule{
		{RawTag: "TI", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "T1", OutTag: "TITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "ST", OutTag: "SUBTITLE", Process: reftype.ProcessTitle, LevelOffset: 0},
		{RawTag: "AU", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "A1", OutTag: "AUTHOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "A2", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "ED", OutTag: "EDITOR", Process: reftype.ProcessPerson, LevelOffset: 0},
		{RawTag: "PY", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "Y1", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "DA", OutTag: "DATE:YEAR", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "T2", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "JO", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "JF", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "JA", OutTag: "JOURNAL", Process: reftype.ProcessSimple, LevelOffset: 1},
		{RawTag: "T3", OutTag: "TITLE", Process: reftype.ProcessSimple, LevelOffset: 2},
		{RawTag: "VL", OutTag: "VOLUME", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "IS", OutTag: "ISSUE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "SP", OutTag: "PAGES:START", Process: reftype.ProcessPages, LevelOffset: 0},
		{RawTag: "EP", OutTag: "PAGES:STOP", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "PB", OutTag: "PUBLISHER", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "CY", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "SN", OutTag: "ISSN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "BN", OutTag: "ISBN", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "DO", OutTag: "DOI", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "UR", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "L1", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "L2", OutTag: "URL", Process: reftype.ProcessURL, LevelOffset: 0},
		{RawTag: "AB", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "N1", OutTag: "NOTES", Process: reftype.ProcessNotes, LevelOffset: 0},
		{RawTag: "N2", OutTag: "ABSTRACT", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "KW", OutTag: "KEYWORD", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "LA", OutTag: "LANGUAGE", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "ET", OutTag: "EDITION", Process: reftype.ProcessSimple, LevelOffset: 0},
		{RawTag: "M3", OutTag: "GENRE", Process: reftype.ProcessGenre, LevelOffset: 0},
		{RawTag: "AD", OutTag: "ADDRESS", Process: reftype.ProcessSimple, LevelOffset: 0},
	},
	Rules: map[reftype.Reftype][]reftype.TagRule{
		reftype.ReftypeThesisPhD: {
			{RawTag: "PB", OutTag: "DEGREEGRANTOR", Process: reftype.ProcessSimple, LevelOffset: 0},
		},
	},
}
