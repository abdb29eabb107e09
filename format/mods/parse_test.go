package mods

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/store"
)

const sampleMods = `<mods ID="ref1">
  <titleInfo><title>Primary Results</title><subTitle>A Survey</subTitle></titleInfo>
  <name type="personal">
    <namePart type="family">Garcia</namePart>
    <namePart type="given">Maria</namePart>
    <role><roleTerm type="code">aut</roleTerm></role>
  </name>
  <originInfo><dateIssued>2019</dateIssued><publisher>Acme Press</publisher></originInfo>
  <genre>periodical</genre>
  <relatedItem type="host">
    <titleInfo><title>Journal of Examples</title></titleInfo>
    <part>
      <detail type="volume"><number>12</number></detail>
      <extent unit="pages"><start>101</start><end>109</end></extent>
    </part>
  </relatedItem>
</mods>`

func TestParseModsBasic(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleMods), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "title"); got != "Primary Results" {
		t.Fatalf("title = %q", got)
	}
	if got := ref.FindValue(store.LevelMain, "REFNUM"); got != "ref1" {
		t.Fatalf("refnum = %q", got)
	}
	if got := ref.FindValue(store.LevelHost, "title"); got != "Journal of Examples" {
		t.Fatalf("host title = %q", got)
	}
	if got := ref.FindValue(store.LevelHost, "extent"); got != "101-109" {
		t.Fatalf("extent = %q", got)
	}
}

func TestParseModsNameRole(t *testing.T) {
	col, _ := (&In{}).Parse(strings.NewReader(sampleMods), format.NewParseOptions())
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "name"); got != "Garcia|Maria" {
		t.Fatalf("name = %q", got)
	}
}

func TestSplitTitle(t *testing.T) {
	main, sub := splitTitle("Main: Sub")
	if main != "Main" || sub != "Sub" {
		t.Fatalf("got %q / %q", main, sub)
	}
}
