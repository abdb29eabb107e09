package helpers

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "no markup here", "no markup here"},
		{"strips tags", "<p>hello <b>world</b></p>", "hello world"},
		{"decodes entities", "Caf&eacute; &amp; Bar", "Café & Bar"},
		{"collapses whitespace", "line one\n\n  line two", "line one line two"},
		{"br becomes separator", "first<br/>second", "first second"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CleanText(c.in); got != c.want {
				t.Errorf("CleanText(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
