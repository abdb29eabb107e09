package xmlnode

import (
	"testing"

	"github.com/osu-libraries/bibconv/store"
)

func TestParseSimpleElement(t *testing.T) {
	n := NewParser(`<title>A Paper</title>`).Parse()
	if n == nil || n.Tag != "title" || n.Value != "A Paper" {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNestedChildren(t *testing.T) {
	n := NewParser(`<titleInfo><title>A</title><subTitle>B</subTitle></titleInfo>`).Parse()
	if n.Tag != "titleInfo" {
		t.Fatalf("root tag = %q", n.Tag)
	}
	title := n.FindChild("title")
	sub := n.FindChild("subTitle")
	if title == nil || title.Value != "A" {
		t.Fatalf("title = %+v", title)
	}
	if sub == nil || sub.Value != "B" {
		t.Fatalf("subTitle = %+v", sub)
	}
}

func TestAttributes(t *testing.T) {
	n := NewParser(`<name type="personal" id="n1"/>`).Parse()
	if n.Attr("type") != "personal" || n.Attr("id") != "n1" {
		t.Fatalf("attrs = %v %v", n.AttrNames, n.AttrValues)
	}
}

func TestNamespacePrefixStripping(t *testing.T) {
	n := NewParser(`<mods:mods><mods:title>X</mods:title></mods:mods>`).Parse()
	p := &Parser{NSPrefix: "mods"}
	_ = p
	if !TagEquals(n.Tag, "mods", "mods") {
		t.Fatalf("root tag %q should match bare 'mods' under prefix mods", n.Tag)
	}
	child := n.FindChild("title")
	if child == nil || child.Value != "X" {
		t.Fatalf("expected title child found via namespace-stripped match, got %+v", child)
	}
}

func TestStyleElementPreservesWhitespace(t *testing.T) {
	n := NewParser(`<style>  leading and trailing  </style>`).Parse()
	if n.Value != "  leading and trailing  " {
		t.Fatalf("style content = %q, want whitespace preserved", n.Value)
	}
}

func TestFindStartFindEnd(t *testing.T) {
	buf := `<wrap><mods:mods id="1">body</mods:mods></wrap>`
	start := FindStart(buf, "mods", "mods")
	if start < 0 {
		t.Fatal("FindStart should locate namespaced tag")
	}
	end := FindEnd(buf, "mods", "mods")
	if end < 0 || end <= start {
		t.Fatal("FindEnd should locate the namespaced closing tag after start")
	}
}

func TestGetEncoding(t *testing.T) {
	if got := GetEncoding(`<?xml version="1.0" encoding="UTF-8"?>`); got != store.CharsetUnicode {
		t.Fatalf("GetEncoding = %v, want Unicode", got)
	}
	if got := GetEncoding(`<mods>`); got != store.CharsetUnknown {
		t.Fatalf("GetEncoding on non-declaration = %v, want Unknown", got)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	n := NewParser(`<a><!-- comment --><b>1</b></a>`).Parse()
	if n.FindChild("b") == nil {
		t.Fatal("expected <b> child to survive a leading comment")
	}
}
