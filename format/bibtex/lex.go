package bibtex

import (
	"strings"

	"github.com/osu-libraries/bibconv/diag"
)

// rawEntry is one parsed "@type{key, tag = value, ...}" block before it is
// turned into a store.Reference.
type rawEntry struct {
	EntryType string
	Key       string
	Fields    []rawField
}

type rawField struct {
	Tag   string
	Value string
}

// lexer tokenizes a BibTeX source buffer into entries, resolving @string
// macros and "#"-concatenation as it goes, the way the original's
// brace-counting scanner does.
type lexer struct {
	buf    []rune
	pos    int
	macros map[string]string

	// sink and filename let readValue warn about an unresolved string
	// macro rather than silently passing the bare word through; both are
	// optional (a nil sink means no diagnostics are recorded).
	sink     *diag.Sink
	filename string
	curIndex int
}

func newLexer(src string) *lexer {
	return &lexer{buf: []rune(src), macros: defaultMacros()}
}

// withDiag attaches a diagnostic sink and source filename for warnings
// raised while lexing (currently: unresolved @string macro references).
func (l *lexer) withDiag(sink *diag.Sink, filename string) *lexer {
	l.sink = sink
	l.filename = filename
	return l
}

func defaultMacros() map[string]string {
	months := map[string]string{
		"jan": "January", "feb": "February", "mar": "March", "apr": "April",
		"may": "May", "jun": "June", "jul": "July", "aug": "August",
		"sep": "September", "oct": "October", "nov": "November", "dec": "December",
	}
	return months
}

func (l *lexer) eof() bool { return l.pos >= len(l.buf) }

func (l *lexer) peek() rune {
	if l.eof() {
		return 0
	}
	return l.buf[l.pos]
}

func (l *lexer) skipWS() {
	for !l.eof() && isSpace(l.peek()) {
		l.pos++
	}
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

// ParseEntries scans the whole source, returning every @entry it finds.
// @comment and @preamble blocks are skipped; @string macros are recorded
// and substituted into later field values.
func (l *lexer) ParseEntries() []rawEntry {
	var out []rawEntry
	for {
		if !l.seekNextAt() {
			break
		}
		l.pos++ // consume '@'
		typeName := l.readBareWord()
		lower := strings.ToLower(typeName)

		l.skipWS()
		open := l.peek()
		if open != '{' && open != '(' {
			continue
		}
		close := '}'
		if open == '(' {
			close = ')'
		}
		l.pos++

		switch lower {
		case "comment":
			l.skipBalanced(open, close)
			continue
		case "preamble":
			l.skipBalanced(open, close)
			continue
		case "string":
			name, val := l.readMacroDef(close)
			if name != "" {
				l.macros[strings.ToLower(name)] = val
			}
			continue
		}

		key := l.readKey()
		l.curIndex = len(out)
		fields := l.readFields(close)
		out = append(out, rawEntry{EntryType: lower, Key: key, Fields: fields})
	}
	return out
}

// seekNextAt advances to the next unconsumed '@', returning false at EOF.
func (l *lexer) seekNextAt() bool {
	for !l.eof() {
		if l.peek() == '@' {
			return true
		}
		l.pos++
	}
	return false
}

func (l *lexer) readBareWord() string {
	start := l.pos
	for !l.eof() && (isLetterDigit(l.peek())) {
		l.pos++
	}
	return string(l.buf[start:l.pos])
}

func isLetterDigit(r rune) bool {
	return r == '_' || r == '-' || r == ':' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (l *lexer) readKey() string {
	l.skipWS()
	start := l.pos
	for !l.eof() && l.peek() != ',' && l.peek() != '}' && l.peek() != ')' {
		l.pos++
	}
	key := strings.TrimSpace(string(l.buf[start:l.pos]))
	if !l.eof() && l.peek() == ',' {
		l.pos++
	}
	return key
}

// readFields reads "tag = value" pairs separated by commas until close.
func (l *lexer) readFields(close rune) []rawField {
	var out []rawField
	for {
		l.skipWS()
		if l.eof() || l.peek() == close {
			if !l.eof() {
				l.pos++
			}
			return out
		}
		if l.peek() == ',' {
			l.pos++
			continue
		}
		tag := l.readBareWord()
		l.skipWS()
		if l.eof() || l.peek() != '=' {
			// Malformed field; skip to next comma or close to recover.
			l.skipToAny(',', close)
			continue
		}
		l.pos++ // consume '='
		value := l.readValue(close, strings.ToLower(tag))
		if tag != "" {
			out = append(out, rawField{Tag: strings.ToLower(tag), Value: value})
		}
	}
}

func (l *lexer) skipToAny(delims ...rune) {
	for !l.eof() {
		c := l.peek()
		for _, d := range delims {
			if c == d {
				return
			}
		}
		l.pos++
	}
}

// readValue reads one field value: one or more {..}/"..."/bare-word/macro
// pieces joined by '#'. tag names the field being read, for the unresolved-
// macro warning.
func (l *lexer) readValue(close rune, tag string) string {
	var parts []string
	for {
		l.skipWS()
		if l.eof() {
			break
		}
		switch l.peek() {
		case '{':
			parts = append(parts, l.readBraced())
		case '"':
			parts = append(parts, l.readQuoted())
		default:
			word := l.readBareValueWord(close)
			if word == "" {
				goto done
			}
			if isAllDigits(word) {
				parts = append(parts, word)
			} else if m, ok := l.macros[strings.ToLower(word)]; ok {
				parts = append(parts, m)
			} else {
				if l.sink != nil {
					l.sink.Warnf(l.filename, l.curIndex, tag, "unresolved string macro %q passed through verbatim", word)
				}
				parts = append(parts, word)
			}
		}
		l.skipWS()
		if !l.eof() && l.peek() == '#' {
			l.pos++
			continue
		}
		break
	}
done:
	return strings.Join(parts, "")
}

func (l *lexer) readBraced() string {
	depth := 0
	start := l.pos
	for !l.eof() {
		switch l.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				l.pos++
				return string(l.buf[start+1 : l.pos-1])
			}
		}
		l.pos++
	}
	return string(l.buf[start:l.pos])
}

func (l *lexer) readQuoted() string {
	start := l.pos
	l.pos++ // opening quote
	depth := 0
	for !l.eof() {
		switch l.peek() {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				l.pos++
				return string(l.buf[start+1 : l.pos-1])
			}
		}
		l.pos++
	}
	return string(l.buf[start:l.pos])
}

func (l *lexer) readBareValueWord(close rune) string {
	start := l.pos
	for !l.eof() {
		c := l.peek()
		if c == ',' || c == close || c == '#' || isSpace(c) {
			break
		}
		l.pos++
	}
	return string(l.buf[start:l.pos])
}

func (l *lexer) skipBalanced(open, close rune) {
	depth := 1
	for !l.eof() && depth > 0 {
		switch l.peek() {
		case open:
			depth++
		case close:
			depth--
		}
		l.pos++
	}
}

func (l *lexer) readMacroDef(close rune) (string, string) {
	l.skipWS()
	name := l.readBareWord()
	l.skipWS()
	if l.eof() || l.peek() != '=' {
		l.skipBalanced('{', close)
		return "", ""
	}
	l.pos++
	val := l.readValue(close, "@string "+name)
	return name, val
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
