package name

import "testing"

func TestParseDirectForm(t *testing.T) {
	got := Parse("John Smith", nil, nil)
	if got != "Smith|John" {
		t.Fatalf("Parse = %q, want Smith|John", got)
	}
}

func TestParseInvertedFormWithSuffix(t *testing.T) {
	got := Parse("Smith, John Q. Jr.", nil, nil)
	if got != "Smith|John|Q.||Jr." {
		t.Fatalf("Parse = %q, want Smith|John|Q.||Jr.", got)
	}
}

func TestParseIdempotent(t *testing.T) {
	got := Parse("Smith|John", nil, nil)
	if got != "Smith|John" {
		t.Fatalf("Parse should be idempotent on already-parsed names, got %q", got)
	}
}

func TestParseAsIsVerbatim(t *testing.T) {
	got := Parse("World Health Organization", []string{"World Health Organization"}, nil)
	if got != "World Health Organization" {
		t.Fatalf("Parse(asis) = %q, want verbatim passthrough", got)
	}
}

func TestParseParticleAbsorption(t *testing.T) {
	got := Parse("Ludwig von Beethoven", nil, nil)
	if got != "von Beethoven|Ludwig" {
		t.Fatalf("Parse = %q, want particle absorbed into family", got)
	}
}

func TestFindEtAlSingleToken(t *testing.T) {
	if n := FindEtAl([]string{"Bob", "Lee", "others"}); n != 0 {
		t.Fatalf("FindEtAl(others) = %d, 'others' alone is not a recognised variant", n)
	}
	if n := FindEtAl([]string{"Bob", "Lee", "et", "al."}); n != 2 {
		t.Fatalf("FindEtAl(et al.) = %d, want 2", n)
	}
	if n := FindEtAl([]string{"Bob", "Lee", "et al."}); n != 1 {
		t.Fatalf("FindEtAl single-token variant = %d, want 1", n)
	}
}

func TestBuildRoundTrip(t *testing.T) {
	got := Build("Smith|John|Q||Jr.")
	if got != "Smith Jr., John Q." {
		t.Fatalf("Build = %q", got)
	}
}

func TestSplitNamesAndSeparator(t *testing.T) {
	got := SplitNames("Alice Jones and Bob Lee")
	if len(got) != 2 || got[0] != "Alice Jones" || got[1] != "Bob Lee" {
		t.Fatalf("SplitNames = %v", got)
	}
}
