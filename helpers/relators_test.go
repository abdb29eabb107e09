package helpers

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		name string
		role string
		want string
	}{
		{"bare code", "edt", "edt"},
		{"bare code uppercase", "EDT", "edt"},
		{"relators uri prefix", "relators:cre", "cre"},
		{"full marc uri", "http://id.loc.gov/vocabulary/relators/aut", "aut"},
		{"label match", "Thesis advisor", "ths"},
		{"plain alias", "collaborator", "ctb"},
		{"plain alias redactor", "redactor", "red"},
		{"unrecognised passthrough", "wizard", "wizard"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeRole(c.role); got != c.want {
				t.Errorf("NormalizeRole(%q) = %q, want %q", c.role, got, c.want)
			}
		})
	}
}

func TestEditorOutTag(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"", "EDITOR"},
		{"editor", "EDITOR"},
		{"collaborator", "COLLABORATOR"},
		{"compiler", "COMPILER"},
		{"redactor", "REDACTOR"},
		{"director", "DIRECTOR"},
		{"producer", "PRODUCER"},
		{"performer", "PERFORMER"},
		{"relators:drt", "DIRECTOR"},
		{"unrecognised", "EDITOR"},
	}
	for _, c := range cases {
		if got := EditorOutTag(c.role); got != c.want {
			t.Errorf("EditorOutTag(%q) = %q, want %q", c.role, got, c.want)
		}
	}
}

func TestRelatorLabel(t *testing.T) {
	if got := RelatorLabel("aut"); got != "Author" {
		t.Errorf("RelatorLabel(aut) = %q, want Author", got)
	}
	if got := RelatorLabel("relators:pbl"); got != "Publisher" {
		t.Errorf("RelatorLabel(relators:pbl) = %q, want Publisher", got)
	}
	if got := RelatorLabel("zzz"); got != "zzz" {
		t.Errorf("RelatorLabel(zzz) = %q, want passthrough zzz", got)
	}
}
