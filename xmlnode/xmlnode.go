// Package xmlnode implements a small recursive-descent XML parser that
// produces a tree shared by every XML-based reader (MODS, EndNote XML,
// EBI/Medline, Word 2007). Ownership is tree-shaped: a Node owns its first
// child and its next sibling; there are no back edges.
package xmlnode

import (
	"strings"
	"unicode"

	"github.com/osu-libraries/bibconv/store"
)

// Node is one element of the parsed tree.
type Node struct {
	Tag   string
	Value string // text content; empty for elements with only child elements

	AttrNames  []string
	AttrValues []string

	Down *Node // first child
	Next *Node // next sibling
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	for i, a := range n.AttrNames {
		if strings.EqualFold(a, name) {
			return n.AttrValues[i]
		}
	}
	return ""
}

// Children returns the node's direct children as a slice, walking Down/Next.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.Down; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

// FindChild returns the first direct child whose tag matches name (any
// namespace prefix stripped), or nil.
func (n *Node) FindChild(name string) *Node {
	for c := n.Down; c != nil; c = c.Next {
		if TagEquals(c.Tag, name, "") {
			return c
		}
	}
	return nil
}

// FindChildren returns every direct child matching name.
func (n *Node) FindChildren(name string) []*Node {
	var out []*Node
	for c := n.Down; c != nil; c = c.Next {
		if TagEquals(c.Tag, name, "") {
			out = append(out, c)
		}
	}
	return out
}

// TagEquals compares a raw tag against a bare name, stripping an optional
// namespace prefix (e.g. "mods:title" matches "title" when prefix is "mods",
// or when prefix is "" the comparison strips whatever prefix is present).
func TagEquals(raw, name, prefix string) bool {
	bare := raw
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		if prefix == "" || strings.EqualFold(raw[:idx], prefix) {
			bare = raw[idx+1:]
		}
	}
	return strings.EqualFold(bare, name)
}

// Parser parses XML text into a Node tree. NSPrefix is parser-local (not a
// process-wide global, per the redesign note); parseElement consults it
// only to recognise a prefixed <style> element. No reader in this module
// sets it.
type Parser struct {
	NSPrefix string

	buf []rune
	pos int
}

// NewParser creates a parser over the given XML text.
func NewParser(text string) *Parser {
	return &Parser{buf: []rune(text)}
}

func (p *Parser) eof() bool { return p.pos >= len(p.buf) }

func (p *Parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.buf[p.pos]
}

func (p *Parser) skipWS() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

// Parse parses the root node and returns it. Malformed XML does not panic;
// unbalanced tags simply leave residual nodes, matching the original's
// failure model.
func (p *Parser) Parse() *Node {
	p.skipDeclAndComments()
	root, _ := p.parseElement()
	return root
}

// ParseAll parses a buffer that may contain several sibling top-level
// elements (e.g. concatenated <mods> records) and returns them all.
func (p *Parser) ParseAll() []*Node {
	var out []*Node
	p.skipDeclAndComments()
	for {
		p.skipWS()
		if p.eof() || p.peek() != '<' {
			break
		}
		n, ok := p.parseElement()
		if !ok {
			break
		}
		if n != nil {
			out = append(out, n)
		}
		p.skipDeclAndComments()
	}
	return out
}

func (p *Parser) skipDeclAndComments() {
	for {
		p.skipWS()
		if p.eof() || p.peek() != '<' {
			return
		}
		rest := string(p.buf[p.pos:])
		switch {
		case strings.HasPrefix(rest, "<?"):
			if end := strings.Index(rest, "?>"); end >= 0 {
				p.pos += len([]rune(rest[:end+2]))
				continue
			}
			return
		case strings.HasPrefix(rest, "<!--"):
			if end := strings.Index(rest, "-->"); end >= 0 {
				p.pos += len([]rune(rest[:end+3]))
				continue
			}
			return
		case strings.HasPrefix(rest, "<!"):
			if end := strings.IndexByte(rest, '>'); end >= 0 {
				p.pos += len([]rune(rest[:end+1]))
				continue
			}
			return
		default:
			return
		}
	}
}

// parseElement parses one <tag ...> ... </tag> or <tag .../> starting at the
// current '<'. Returns (node, true) on success.
func (p *Parser) parseElement() (*Node, bool) {
	if p.eof() || p.peek() != '<' {
		return nil, false
	}
	p.pos++ // consume '<'

	tag := p.readName()
	if tag == "" {
		return nil, false
	}
	node := &Node{Tag: tag}

	// attributes
	for {
		p.skipWS()
		if p.eof() {
			return node, true
		}
		c := p.peek()
		if c == '/' {
			p.pos++
			p.skipWS()
			if !p.eof() && p.peek() == '>' {
				p.pos++
			}
			return node, true // self-closing
		}
		if c == '>' {
			p.pos++
			break
		}
		name := p.readAttrName()
		if name == "" {
			p.pos++
			continue
		}
		p.skipWS()
		var val string
		if !p.eof() && p.peek() == '=' {
			p.pos++
			p.skipWS()
			val = p.readAttrValue()
		}
		node.AttrNames = append(node.AttrNames, name)
		node.AttrValues = append(node.AttrValues, val)
	}

	// content: preserve raw whitespace verbatim only inside <style>
	preserveWS := TagEquals(node.Tag, "style", p.NSPrefix)

	var text strings.Builder
	var lastChild *Node
	for {
		if p.eof() {
			break
		}
		if p.peek() == '<' {
			rest := string(p.buf[p.pos:])
			if strings.HasPrefix(rest, "</") {
				// closing tag
				p.pos += 2
				closeName := p.readName()
				p.skipWS()
				if !p.eof() && p.peek() == '>' {
					p.pos++
				}
				_ = closeName
				break
			}
			if strings.HasPrefix(rest, "<!--") {
				if end := strings.Index(rest, "-->"); end >= 0 {
					p.pos += len([]rune(rest[:end+3]))
					continue
				}
				break
			}
			child, ok := p.parseElement()
			if !ok {
				break
			}
			if lastChild == nil {
				node.Down = child
			} else {
				lastChild.Next = child
			}
			lastChild = child
			continue
		}
		ch := p.peek()
		p.pos++
		text.WriteRune(ch)
	}

	raw := text.String()
	if preserveWS {
		node.Value = decodeEntities(raw)
	} else {
		node.Value = decodeEntities(strings.TrimSpace(collapseWS(raw)))
	}
	return node, true
}

func collapseWS(s string) string {
	var b strings.Builder
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func (p *Parser) readName() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if unicode.IsSpace(c) || c == '>' || c == '/' {
			break
		}
		p.pos++
	}
	return string(p.buf[start:p.pos])
}

func (p *Parser) readAttrName() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if unicode.IsSpace(c) || c == '=' || c == '>' || c == '/' {
			break
		}
		p.pos++
	}
	return string(p.buf[start:p.pos])
}

func (p *Parser) readAttrValue() string {
	if p.eof() {
		return ""
	}
	quote := p.peek()
	if quote == '"' || quote == '\'' {
		p.pos++
		start := p.pos
		for !p.eof() && p.peek() != quote {
			p.pos++
		}
		val := string(p.buf[start:p.pos])
		if !p.eof() {
			p.pos++
		}
		return decodeEntities(val)
	}
	start := p.pos
	for !p.eof() && !unicode.IsSpace(p.peek()) && p.peek() != '>' {
		p.pos++
	}
	return decodeEntities(string(p.buf[start:p.pos]))
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// FindStart scans buf for the start of element tag ("<tag " or "<tag>"),
// honouring an optional namespace prefix, and returns its byte offset or -1.
func FindStart(buf, tag, nsPrefix string) int {
	candidates := []string{"<" + tag + " ", "<" + tag + ">", "<" + tag + "\t", "<" + tag + "\n"}
	if nsPrefix != "" {
		candidates = append(candidates,
			"<"+nsPrefix+":"+tag+" ", "<"+nsPrefix+":"+tag+">")
	}
	best := -1
	for _, c := range candidates {
		if i := strings.Index(buf, c); i >= 0 && (best == -1 || i < best) {
			best = i
		}
	}
	return best
}

// FindEnd scans buf for the end of element tag ("</tag>"), honouring an
// optional namespace prefix, and returns the offset just past it, or -1.
func FindEnd(buf, tag, nsPrefix string) int {
	candidates := []string{"</" + tag + ">"}
	if nsPrefix != "" {
		candidates = append(candidates, "</"+nsPrefix+":"+tag+">")
	}
	for _, c := range candidates {
		if i := strings.Index(buf, c); i >= 0 {
			return i + len(c)
		}
	}
	return -1
}

// GetEncoding parses the XML declaration's encoding attribute from the first
// line of a document. Unknown or absent returns store.CharsetUnknown.
func GetEncoding(line string) store.Charset {
	if !strings.HasPrefix(strings.TrimSpace(line), "<?xml") {
		return store.CharsetUnknown
	}
	idx := strings.Index(line, "encoding=")
	if idx < 0 {
		return store.CharsetUnknown
	}
	rest := line[idx+len("encoding="):]
	if len(rest) == 0 {
		return store.CharsetUnknown
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return store.CharsetUnknown
	}
	end := strings.IndexByte(rest[1:], quote)
	if end < 0 {
		return store.CharsetUnknown
	}
	enc := strings.ToLower(rest[1 : 1+end])
	switch enc {
	case "utf-8", "utf8":
		return store.CharsetUnicode
	case "gb18030":
		return store.CharsetGB18030
	default:
		return store.CharsetUnknown
	}
}
