package store

import "testing"

func TestAddAndFindCaseInsensitive(t *testing.T) {
	r := NewReference()
	r.Add("AUTHOR", "Smith|John", LevelMain)

	if i := r.Find("author", LevelAny); i == NotFound {
		t.Fatalf("find(%q) = NotFound, want a match", "author")
	}
	if i := r.Find("Author", LevelMain); i == NotFound {
		t.Fatalf("find with exact level failed")
	}
	if i := r.Find("author", LevelHost); i != NotFound {
		t.Fatalf("find at wrong level should miss, got index %d", i)
	}
}

func TestReplaceOrAdd(t *testing.T) {
	r := NewReference()
	r.Add("TITLE", "Draft", LevelMain)
	r.ReplaceOrAdd("TITLE", "Final", LevelMain)

	if got := r.FindValue(LevelMain, "TITLE"); got != "Final" {
		t.Fatalf("FindValue = %q, want Final", got)
	}
	if r.Num() != 1 {
		t.Fatalf("expected replace in place, got %d entries", r.Num())
	}

	r.ReplaceOrAdd("SUBTITLE", "New", LevelMain)
	if r.Num() != 2 {
		t.Fatalf("expected append for unseen tag, got %d entries", r.Num())
	}
}

func TestFindValueFirstOf(t *testing.T) {
	r := NewReference()
	r.Add("NUMBER", "4", LevelHost)

	if got := r.FindValueFirstOf(LevelHost, "ISSUE", "NUMBER"); got != "4" {
		t.Fatalf("FindValueFirstOf = %q, want 4", got)
	}
}

func TestDuplicateTagsPreserveInsertionOrder(t *testing.T) {
	r := NewReference()
	r.AddCanDup("AUTHOR", "Jones|Alice", LevelMain)
	r.AddCanDup("AUTHOR", "Lee|Bob", LevelMain)

	var got []string
	got = r.FindValueEach(LevelMain, "AUTHOR", got)
	if len(got) != 2 || got[0] != "Jones|Alice" || got[1] != "Lee|Bob" {
		t.Fatalf("FindValueEach = %v, want ordered [Jones|Alice Lee|Bob]", got)
	}
}

func TestUsedFlagDoesNotDropContent(t *testing.T) {
	r := NewReference()
	r.Add("TITLE", "A Paper", LevelMain)
	r.SetUsed(0)

	if !r.Used(0) {
		t.Fatal("expected entry to be marked used")
	}
	if r.Value(0) != "A Paper" {
		t.Fatal("used flag must not affect stored value")
	}

	r.ClearUsedAll()
	if r.Used(0) {
		t.Fatal("ClearUsedAll should reset used flags")
	}
}

func TestMaxLevel(t *testing.T) {
	r := NewReference()
	r.Add("TITLE", "Sub", LevelMain)
	r.Add("TITLE", "Parent", LevelHost)
	r.Add("SERIES", "A Series", LevelSeries)

	if got := r.MaxLevel(); got != LevelSeries {
		t.Fatalf("MaxLevel = %v, want LevelSeries", got)
	}
}

func TestCollectionFindByRefnum(t *testing.T) {
	c := NewCollection()
	parent := NewReference()
	parent.Add("REFNUM", "p", LevelMain)
	c.Append(parent)

	found := c.FindByRefnum("P")
	if found != parent {
		t.Fatal("FindByRefnum should be case-insensitive and return the parent")
	}
	if c.FindByRefnum("missing") != nil {
		t.Fatal("FindByRefnum should return nil for unknown refnum")
	}
}
