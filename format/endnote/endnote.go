// Package endnote provides the ENDNOTEIN/ENDNOTEOUT format plugins for the
// tagged "%X value" EndNote import/export format.
package endnote

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/pipeline"
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

func (f *In) Name() string              { return "endnotein" }
func (f *In) Description() string       { return "EndNote tagged import format (reader)" }
func (f *In) Extensions() []string      { return []string{"enw", "txt"} }
func (f *In) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("%0 ")) }

func (f *Out) Name() string              { return "endnoteout" }
func (f *Out) Description() string       { return "EndNote tagged import format (writer)" }
func (f *Out) Extensions() []string      { return []string{"enw"} }
func (f *Out) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("%0 ")) }

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.ENDNOTEIN, endnoteTable)
	pipeline.RegisterCleaner(reftype.ENDNOTEIN, cleanEntry)
}
