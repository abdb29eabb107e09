// Package word provides the WORDIN/WORD2007OUT format plugins for
// Microsoft Word 2007's <b:Sources> bibliography XML.
package word

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
)

type In struct{}
type Out struct{}

var (
	_ format.Format = (*In)(nil)
	_ format.Parser = (*In)(nil)

	_ format.Format     = (*Out)(nil)
	_ format.Serializer = (*Out)(nil)
)

func (f *In) Name() string        { return "wordin" }
func (f *In) Description() string { return "Microsoft Word 2007 bibliography XML (reader)" }
func (f *In) Extensions() []string {
	return []string{"xml"}
}
func (f *In) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("b:Sources")) || bytes.Contains(peek, []byte("b:Source>"))
}

func (f *Out) Name() string        { return "word2007out" }
func (f *Out) Description() string { return "Microsoft Word 2007 bibliography XML (writer)" }
func (f *Out) Extensions() []string {
	return []string{"xml"}
}
func (f *Out) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("b:Sources"))
}

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.WORDIN, wordTable)
}
