package helpers

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
	htmlCommentRegex = regexp.MustCompile(`<!--[\s\S]*?-->`)
	multiSpaceRegex  = regexp.MustCompile(`\s+`)
	blockEndRegex    = regexp.MustCompile(`</(?:p|div|li|h[1-6]|blockquote|tr)>`)
	brTagRegex       = regexp.MustCompile(`<br\s*/?>`)
)

// stripMarkup removes HTML comments and tags, converting block-level
// closing tags and <br> to a newline first so paragraph/line breaks
// survive as whitespace rather than being swallowed.
func stripMarkup(s string) string {
	s = htmlCommentRegex.ReplaceAllString(s, "")
	s = blockEndRegex.ReplaceAllString(s, "\n")
	s = brTagRegex.ReplaceAllString(s, "\n")
	return htmlTagRegex.ReplaceAllString(s, "")
}

// CleanText strips HTML markup a reader field may carry (abstracts and
// notes are the common offenders — RIS/MODS/biblatex sources sometimes
// embed it even though the format itself is plain text), decodes entities,
// collapses whitespace down to single spaces, and trims the result.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = stripMarkup(s)
	s = html.UnescapeString(s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
