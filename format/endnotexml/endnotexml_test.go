package endnotexml

import (
	"strings"
	"testing"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

const sampleEndNoteXML = `<xml><records>
<record>
  <rec-number>1</rec-number>
  <ref-type name="Journal Article">17</ref-type>
  <titles><title><style face="normal">Primary Results</style></title></titles>
  <contributors><authors><author><style face="normal">Garcia, Maria</style></author></authors></contributors>
  <periodical><full-title><style face="normal">Journal of Examples</style></full-title></periodical>
  <volume><style face="normal">12</style></volume>
  <pages><style face="normal">101-109</style></pages>
  <dates><year><style face="normal">2019</style></year></dates>
</record>
</records></xml>`

func TestParseEndNoteXML(t *testing.T) {
	col, err := (&In{}).Parse(strings.NewReader(sampleEndNoteXML), format.NewParseOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if col.Len() != 1 {
		t.Fatalf("got %d records, want 1", col.Len())
	}
	ref := col.At(0)
	if got := ref.FindValue(store.LevelMain, "%T"); got != "Primary Results" {
		t.Fatalf("%%T = %q", got)
	}
}

func TestConvertEndNoteXMLArticle(t *testing.T) {
	raw, _ := (&In{}).Parse(strings.NewReader(sampleEndNoteXML), format.NewParseOptions())
	param := pipeline.NewParam(reftype.ENDNOTEXMLIN, reftype.Unknown)
	out, err := pipeline.Convert(raw, reftype.ENDNOTEXMLIN, "sample.xml", param)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	ref := out.At(0)
	if got := ref.FindValue(store.LevelMain, "PAGES:START"); got != "101" {
		t.Fatalf("PAGESTART = %q", got)
	}
	if got := ref.FindValue(store.LevelHost, "JOURNAL"); got != "Journal of Examples" {
		t.Fatalf("JOURNAL = %q", got)
	}
}
