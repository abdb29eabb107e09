package pipeline

import (
	"fmt"
	"strings"

	"github.com/osu-libraries/bibconv/helpers"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

// Convert runs the format-agnostic middle of the pipeline over raw (a
// collection freshly produced by a format's Parser, still using that
// format's native tags) and returns a collection using the canonical
// internal tags every writer expects: clean, determine each reference's
// type, resolve cross-references, then translate every field through the
// format's reftype table.
func Convert(raw *store.Collection, formatID reftype.FormatID, filename string, param *Param) (*store.Collection, error) {
	table, ok := reftype.TableFor(formatID)
	if !ok {
		return nil, &store.Error{Status: store.BadInput, Message: fmt.Sprintf("no reftype table registered for %s", formatID)}
	}
	clean := cleanerFor(formatID)

	out := store.NewCollection()
	for i, ref := range raw.All() {
		if clean != nil {
			clean(ref)
		}

		rawType := ref.FindValueFirstOf(store.LevelMain, "TYPE", "GENRE", "M3")
		rt := determineType(table, rawType)

		resolveCrossref(ref, raw, rt, param.Diag, filename, i)

		converted := convertReference(ref, rt, table, param, filename, i)
		out.Append(converted)
	}
	return out, nil
}

// convertReference dispatches every entry of ref through table's tag rules,
// emitting translated fields onto a fresh canonical-tag Reference.
func convertReference(ref *store.Reference, rt reftype.Reftype, table *reftype.Table, param *Param, filename string, idx int) *store.Reference {
	out := store.NewReference()
	out.Add("REFNUM", ref.FindValue(store.LevelMain, "REFNUM"), store.LevelMain)
	out.Add("TYPE", typeName(rt), store.LevelMain)

	for i, e := range ref.Entries() {
		if ref.Used(i) || e.Value == "" {
			continue
		}
		switch strings.ToUpper(e.Tag) {
		case "REFNUM", "TYPE", "GENRE", "XREF":
			continue
		}

		rule, ok := table.Translate(rt, e.Tag)
		if !ok {
			if param.Options.Has(reftype.OptVerbose) {
				param.Diag.Warnf(filename, idx, e.Tag, "no translation rule for this tag under type %v", rt)
			}
			continue
		}

		level := e.Level
		if rule.LevelOffset > level {
			level = rule.LevelOffset
		}

		runProcess(out, ref, rule, e.Tag, e.Value, level, param, filename, idx)
	}

	return out
}

// runProcess applies one (Process, value) pair, appending zero or more
// entries to out. ref is the raw reference the field came from, consulted
// by processes (BLT_EDITOR) that need a sibling field's value.
func runProcess(out *store.Reference, ref *store.Reference, rule reftype.TagRule, rawTag, value string, level store.Level, param *Param, filename string, idx int) {
	switch rule.Process {
	case reftype.ProcessSimple:
		out.AddCanDup(partTag(rule.OutTag, level), value, level)

	case reftype.ProcessTitle:
		processTitle(out, rule.OutTag, value, level)

	case reftype.ProcessPages:
		processPages(out, value, level)

	case reftype.ProcessNotes:
		out.AddCanDup(rule.OutTag, helpers.CleanText(value), level)

	case reftype.ProcessPerson:
		out.AddCanDup(rule.OutTag, value, level)

	case reftype.ProcessBltEditor:
		// The editora/editorb/editorc field picks its output tag from its
		// own editortype sibling (editoratype, editorbtype, editorctype),
		// not from a fixed rule: "collaborator" -> COLLABORATOR, etc.
		out.AddCanDup(bltEditorOutTag(ref, rawTag), value, level)

	case reftype.ProcessHowPublished:
		processHowPublished(out, value, level)

	case reftype.ProcessURL:
		out.AddCanDup(rule.OutTag, extractURL(value), level)

	case reftype.ProcessGenre:
		emitGenre(out, value, level, param, filename, idx)

	case reftype.ProcessBtEprint:
		out.AddCanDup("URL", eprintURL(value), level)

	case reftype.ProcessBltThesisType:
		emitGenre(out, value, level, param, filename, idx)

	case reftype.ProcessBltSchool:
		out.AddCanDup("DEGREEGRANTOR", value, level)

	case reftype.ProcessBltSubtype:
		emitGenre(out, value, level, param, filename, idx)

	case reftype.ProcessBltSkip:
		// Field carries no internal-tag equivalent; dropped intentionally.

	default:
		out.AddCanDup(rule.OutTag, value, level)
	}
}

// emitGenre tags a genre value with the authority that recognises it
// (GENRE:MARC or GENRE:BIBUTILS), falling back to GENRE:UNKNOWN rather than
// dropping the value when neither authority lists it.
func emitGenre(out *store.Reference, value string, level store.Level, param *Param, filename string, idx int) {
	tag := reftype.GenreTag(value)
	if tag == "GENRE:UNKNOWN" && param.Options.Has(reftype.OptVerbose) {
		param.Diag.Warnf(filename, idx, "GENRE", "genre %q not found in the MARC or bibutils authority, tagging GENRE:UNKNOWN", value)
	}
	out.AddCanDup(tag, value, level)
}

// bltEditorOutTag resolves a biblatex editora/editorb/editorc field's
// output tag from its matching editortype sibling field (editoratype,
// editorbtype, editorctype): collaborator, compiler, redactor, director,
// producer, or performer, or any MARC relator code/URI meaning the same
// role. An absent or unrecognised editortype value falls back to EDITOR,
// same as a plain editor field.
func bltEditorOutTag(ref *store.Reference, fieldTag string) string {
	return helpers.EditorOutTag(ref.FindValue(store.LevelMain, fieldTag+"type"))
}

// partTag namespaces a host/series-level DATE:* field as PARTDATE:*, so a
// child's own publication date and the date of the item that contains it
// (e.g. a journal issue's date on an article) don't collide under the same
// tag at different levels.
func partTag(outTag string, level store.Level) string {
	if level > store.LevelMain && strings.HasPrefix(outTag, "DATE:") {
		return "PARTDATE:" + strings.TrimPrefix(outTag, "DATE:")
	}
	return outTag
}

func typeName(rt reftype.Reftype) string {
	switch rt {
	case reftype.ReftypeArticle:
		return "Article"
	case reftype.ReftypeBook:
		return "Book"
	case reftype.ReftypeInbook:
		return "Book Section"
	case reftype.ReftypeIncollection:
		return "Book Section"
	case reftype.ReftypeInproceedings:
		return "Conference Paper"
	case reftype.ReftypeProceedings:
		return "Conference Proceedings"
	case reftype.ReftypeThesisPhD:
		return "Thesis"
	case reftype.ReftypeThesisMasters:
		return "Thesis"
	case reftype.ReftypeTechreport:
		return "Report"
	case reftype.ReftypeUnpublished:
		return "Unpublished Work"
	case reftype.ReftypeOnline:
		return "Web Page"
	case reftype.ReftypeDataset:
		return "Dataset"
	case reftype.ReftypeSoftware:
		return "Computer Program"
	case reftype.ReftypePatent:
		return "Patent"
	case reftype.ReftypeManual:
		return "Manual"
	case reftype.ReftypeBooklet:
		return "Pamphlet"
	default:
		return "Generic"
	}
}

// processTitle assembles a TITLE and an optional SUBTITLE field the way
// bibutils' process_title_all does: when both are present they are joined
// as "Title: Subtitle" (a single space when the title already ends in
// ':'); a lone subtitle with no title is promoted to the title slot.
func processTitle(out *store.Reference, outTag, value string, level store.Level) {
	if strings.EqualFold(outTag, "SUBTITLE") {
		existing := out.FindValue(level, "TITLE")
		if existing == "" {
			out.ReplaceOrAdd("TITLE", value, level)
			return
		}
		if strings.HasSuffix(existing, value) {
			return
		}
		sep := ": "
		if strings.HasSuffix(existing, ":") {
			sep = " "
		}
		out.ReplaceOrAdd("TITLE", existing+sep+value, level)
		return
	}
	out.AddCanDup(outTag, value, level)
}

// processPages splits a "101-109" or abbreviated "101-9" page range into
// PAGES:START/PAGES:STOP tags, expanding the abbreviated end per the
// leading digits of the start ("101-9" -> start 101, end 109). A single
// page number with no dash becomes PAGES:START only; a distinct
// ARTICLENUMBER tag (wired from fields such as BibTeX's "eid") is left for
// writers to fall back to when PAGES:START is absent entirely.
func processPages(out *store.Reference, value string, level store.Level) {
	value = strings.TrimSpace(value)
	dash := strings.IndexAny(value, "-–—")
	if dash < 0 {
		out.Add("PAGES:START", value, level)
		return
	}
	start := strings.TrimSpace(value[:dash])
	end := value[dash:]
	end = strings.TrimLeft(end, "-–— \t")
	out.Add("PAGES:START", start, level)
	out.Add("PAGES:STOP", expandPageEnd(start, end), level)
}

func expandPageEnd(start, end string) string {
	if len(end) >= len(start) || !isAllDigits(start) || !isAllDigits(end) {
		return end
	}
	prefixLen := len(start) - len(end)
	return start[:prefixLen] + end
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// processHowPublished splits BibTeX's overloaded howpublished field: a
// "\url{...}" payload becomes a URL field, everything else is treated as a
// free-text publisher note.
func processHowPublished(out *store.Reference, value string, level store.Level) {
	if u := extractURL(value); u != value && u != "" {
		out.AddCanDup("URL", u, level)
		return
	}
	out.AddCanDup("PUBLISHER", value, level)
}

var urlWrappers = []string{`\url{`, `\href{`}

// extractURL pulls a bare URL out of a LaTeX \url{...} or \href{...}{...}
// wrapper, returning the value unchanged if no wrapper is present.
func extractURL(value string) string {
	for _, w := range urlWrappers {
		if idx := strings.Index(value, w); idx >= 0 {
			rest := value[idx+len(w):]
			if end := strings.IndexByte(rest, '}'); end >= 0 {
				return rest[:end]
			}
		}
	}
	return strings.TrimSpace(value)
}

// eprintURL builds an arXiv abstract-page URL from a bare eprint identifier
// the way BibTeX's archivePrefix/eprint pair is conventionally resolved.
func eprintURL(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	return "https://arxiv.org/abs/" + id
}
