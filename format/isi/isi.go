// Package isi provides the ISIIN/ISIOUT format plugins for the Web of
// Science / ISI tagged export format.
package isi

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

func (f *In) Name() string              { return "isiin" }
func (f *In) Description() string       { return "Web of Science / ISI tagged export format (reader)" }
func (f *In) Extensions() []string      { return []string{"isi", "txt"} }
func (f *In) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("PT J")) || bytes.Contains(peek, []byte("\nPT ")) }

func (f *Out) Name() string              { return "isiout" }
func (f *Out) Description() string       { return "Web of Science / ISI tagged export format (writer)" }
func (f *Out) Extensions() []string      { return []string{"isi"} }
func (f *Out) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("PT J")) }

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.ISIIN, isiTable)
	pipeline.RegisterCleaner(reftype.ISIIN, cleanEntry)
}
