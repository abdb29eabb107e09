// Package ris provides the RISIN/RISOUT format plugins for the tagged-line
// Research Information Systems exchange format.
package ris

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

func (f *In) Name() string         { return "risin" }
func (f *In) Description() string  { return "Research Information Systems tagged format (reader)" }
func (f *In) Extensions() []string { return []string{"ris"} }
func (f *In) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("TY  - "))
}

func (f *Out) Name() string         { return "risout" }
func (f *Out) Description() string  { return "Research Information Systems tagged format (writer)" }
func (f *Out) Extensions() []string { return []string{"ris"} }
func (f *Out) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte("TY  - "))
}

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.RISIN, risTable)
	pipeline.RegisterCleaner(reftype.RISIN, cleanEntry)
}
