// Package endnotexml provides the ENDNOTEXMLIN format plugin for EndNote's
// XML library export: a <xml><records><record>... tree whose leaf text is
// always wrapped in a <style> element that must be read back verbatim.
package endnotexml

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
)

type In struct{}

var (
	_ format.Format = (*In)(nil)
	_ format.Parser = (*In)(nil)
)

func (f *In) Name() string        { return "endnotexmlin" }
func (f *In) Description() string { return "EndNote XML library export (reader)" }
func (f *In) Extensions() []string {
	return []string{"xml"}
}
func (f *In) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("<records>")) && bytes.Contains(peek, []byte("<style"))
}

func init() {
	format.Register(&In{})
	reftype.RegisterTable(reftype.ENDNOTEXMLIN, endnoteXMLTable)
}
