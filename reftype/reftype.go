// Package reftype holds the format identifiers, reftype tables, and tag
// translation tables that drive the converter: for each (input format,
// source tag, reference type), which internal tag to emit, which semantic
// Process to run, and at what level offset.
package reftype

import (
	"strings"

	"github.com/osu-libraries/bibconv/store"
)

// FormatID is a stable identifier for one of the input or output formats
// this module supports.
type FormatID int

const (
	Unknown FormatID = iota

	MODSIN
	BIBTEXIN
	RISIN
	ENDNOTEIN
	COPACIN
	ISIIN
	MEDLINEIN
	ENDNOTEXMLIN
	BIBLATEXIN
	EBIIN
	WORDIN
	NBIBIN

	MODSOUT
	BIBTEXOUT
	RISOUT
	ENDNOTEOUT
	ISIOUT
	WORD2007OUT
	ADSABSOUT
	NBIBOUT
)

var formatNames = map[FormatID]string{
	MODSIN: "modsin", BIBTEXIN: "bibtexin", RISIN: "risin", ENDNOTEIN: "endnotein",
	COPACIN: "copacin", ISIIN: "isiin", MEDLINEIN: "medlinein", ENDNOTEXMLIN: "endnotexmlin",
	BIBLATEXIN: "biblatexin", EBIIN: "ebiin", WORDIN: "wordin", NBIBIN: "nbibin",
	MODSOUT: "modsout", BIBTEXOUT: "bibtexout", RISOUT: "risout", ENDNOTEOUT: "endnoteout",
	ISIOUT: "isiout", WORD2007OUT: "word2007out", ADSABSOUT: "adsabsout", NBIBOUT: "nbibout",
}

func (f FormatID) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFormatID looks up a format identifier by its lowercase name, as
// accepted on the CLI (e.g. "bibtexin", "risout").
func ParseFormatID(name string) (FormatID, bool) {
	name = strings.ToLower(name)
	for id, n := range formatNames {
		if n == name {
			return id, true
		}
	}
	return Unknown, false
}

// FormatOptions is a bitfield of output-writer flags.
type FormatOptions uint32

const (
	OptVerbose FormatOptions = 1 << iota
	OptFinalComma
	OptSingleDashRange
	OptWhitespacePad
	OptBracketsNotQuotes
	OptUppercaseTags
	OptStrictKey
	OptShortTitle
	OptDropKey
)

func (o FormatOptions) Has(flag FormatOptions) bool { return o&flag != 0 }

// Process is the fixed set of semantic actions the converter can dispatch
// a field to.
type Process int

const (
	ProcessSimple Process = iota
	ProcessPages
	ProcessNotes
	ProcessPerson
	ProcessBltEditor
	ProcessHowPublished
	ProcessURL
	ProcessGenre
	ProcessBtEprint
	ProcessBltThesisType
	ProcessBltSchool
	ProcessBltSubtype
	ProcessBltSkip
	ProcessTitle
)

// Reftype is the canonical work type a raw type string is mapped to.
type Reftype int

const (
	ReftypeMisc Reftype = iota
	ReftypeArticle
	ReftypeBook
	ReftypeInbook
	ReftypeIncollection
	ReftypeInproceedings
	ReftypeProceedings
	ReftypeThesisPhD
	ReftypeThesisMasters
	ReftypeTechreport
	ReftypeUnpublished
	ReftypeOnline
	ReftypeDataset
	ReftypeSoftware
	ReftypePatent
	ReftypeManual
	ReftypeBooklet
)

// TypeEntry is one row of a per-format "raw type string -> reftype" table.
type TypeEntry struct {
	Name    string
	Type    Reftype
	Default bool
}

// TagRule is one row of a per-format (reftype, raw tag) -> (internal tag,
// process, level offset) translation table.
type TagRule struct {
	RawTag      string
	OutTag      string
	Process     Process
	LevelOffset store.Level
}

// Table bundles the type table and tag rules for one input format.
type Table struct {
	Types []TypeEntry
	// Rules maps a Reftype to the list of tag rules that apply only to that
	// type; it is consulted first.
	Rules map[Reftype][]TagRule
	// Common holds rules that apply regardless of reftype, consulted after
	// a type-specific miss.
	Common []TagRule
}

// TypeOf looks up rawType (case-insensitive) against the table, returning
// the default entry's type if no match.
func (t *Table) TypeOf(rawType string) Reftype {
	for _, e := range t.Types {
		if strings.EqualFold(e.Name, rawType) {
			return e.Type
		}
	}
	for _, e := range t.Types {
		if e.Default {
			return e.Type
		}
	}
	return ReftypeMisc
}

// Translate looks up (reftype, rawTag) and returns the matching rule and
// true, or the zero rule and false if nothing matches (a warn-and-skip
// condition at the call site).
func (t *Table) Translate(rt Reftype, rawTag string) (TagRule, bool) {
	for _, r := range t.Rules[rt] {
		if strings.EqualFold(r.RawTag, rawTag) {
			return r, true
		}
	}
	for _, r := range t.Common {
		if strings.EqualFold(r.RawTag, rawTag) {
			return r, true
		}
	}
	return TagRule{}, false
}
