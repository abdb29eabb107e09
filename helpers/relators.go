package helpers

import "strings"

// marcRelators maps a MARC relator code to its human-readable label. This
// is a subset of the full vocabulary, scoped to the scholarly-contributor
// roles a converter's biblatex/MODS/RIS readers actually emit.
var marcRelators = map[string]string{
	"aut": "Author",
	"cre": "Creator",
	"edt": "Editor",
	"com": "Compiler",
	"trl": "Translator",
	"ill": "Illustrator",
	"pht": "Photographer",
	"art": "Artist",
	"cmp": "Composer",

	"ctb": "Contributor",
	"aui": "Author of introduction",
	"aft": "Author of afterword",
	"ann": "Annotator",
	"cmm": "Commentator",
	"wpr": "Writer of preface",
	"wam": "Writer of accompanying material",

	"ths": "Thesis advisor",
	"dgs": "Degree supervisor",
	"dgc": "Degree committee member",
	"opn": "Opponent",

	"pbl": "Publisher",
	"dst": "Distributor",
	"bkd": "Book designer",
	"bkp": "Book producer",
	"prt": "Printer",
	"tyg": "Typographer",

	"res": "Researcher",
	"fnd": "Funder",
	"spn": "Sponsor",
	"his": "Host institution",

	"dtc": "Data contributor",
	"dtm": "Data manager",
	"prg": "Programmer",

	"prf": "Performer",
	"act": "Actor",
	"nrt": "Narrator",
	"sng": "Singer",
	"cnd": "Conductor",
	"drt": "Director",
	"pro": "Producer",

	"org": "Originator",
	"isb": "Issuing body",
	"cph": "Copyright holder",
	"oth": "Other",

	"col": "Collector",
	"cur": "Curator",
	"own": "Owner",
	"dnr": "Donor",
}

// roleAliases maps plain-text role names, as they show up in a record's
// editortype/role field rather than a MARC code or relator URI, to their
// MARC relator code.
var roleAliases = map[string]string{
	"author":           "aut",
	"authors":          "aut",
	"creator":          "cre",
	"creators":         "cre",
	"editor":           "edt",
	"editors":          "edt",
	"collaborator":     "ctb",
	"compiler":         "com",
	"translator":       "trl",
	"contributor":      "ctb",
	"photographer":     "pht",
	"illustrator":      "ill",
	"advisor":          "ths",
	"thesis advisor":   "ths",
	"committee":        "dgc",
	"committee member": "dgc",
	"publisher":        "pbl",
	"funder":           "fnd",
	"sponsor":          "spn",
	"redactor":         "red",
	"director":         "drt",
	"producer":         "pro",
	"performer":        "prf",
}

// editorOutTags maps a MARC relator code onto the internal field a
// multi-role editor should be filed under, mirroring biblatex's
// editora/editorb/editorc + editortype role split.
var editorOutTags = map[string]string{
	"ctb": "COLLABORATOR",
	"com": "COMPILER",
	"red": "REDACTOR",
	"drt": "DIRECTOR",
	"pro": "PRODUCER",
	"prf": "PERFORMER",
}

// RelatorCodeFromURI extracts the relator code from a bare "relators:xxx"
// token or a full "http://id.loc.gov/vocabulary/relators/xxx" URI; a value
// that's neither is returned unchanged.
func RelatorCodeFromURI(uri string) string {
	if strings.HasPrefix(uri, "relators:") {
		return strings.TrimPrefix(uri, "relators:")
	}
	if idx := strings.Index(uri, "relators/"); idx >= 0 {
		return strings.TrimSuffix(uri[idx+len("relators/"):], "/")
	}
	return uri
}

// RelatorLabel returns the human-readable label for a relator code, URI, or
// alias, falling back to the input unchanged if nothing matches.
func RelatorLabel(codeOrURI string) string {
	code := strings.ToLower(RelatorCodeFromURI(codeOrURI))
	if label, ok := marcRelators[code]; ok {
		return label
	}
	return codeOrURI
}

// NormalizeRole reduces a role value — a MARC code, a relator URI, a label
// ("Editor"), or a common alias ("collaborator") — to its lowercase MARC
// relator code. A role this package doesn't recognize is returned as-is so
// the caller can still render or compare it.
func NormalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return ""
	}

	code := strings.ToLower(RelatorCodeFromURI(role))
	if _, ok := marcRelators[code]; ok {
		return code
	}

	lowerRole := strings.ToLower(role)
	for c, label := range marcRelators {
		if strings.ToLower(label) == lowerRole {
			return c
		}
	}

	if normalized, ok := roleAliases[lowerRole]; ok {
		return normalized
	}

	return role
}

// EditorOutTag resolves a biblatex-style editor role (a plain word such as
// "collaborator", or a MARC code/URI/label meaning the same thing) to the
// internal field an editora/editorb/editorc value should be filed under.
// EDITOR is returned for a role with no dedicated field — a plain "editor",
// an unrecognised value, or an empty one.
func EditorOutTag(role string) string {
	if tag, ok := editorOutTags[NormalizeRole(role)]; ok {
		return tag
	}
	return "EDITOR"
}
