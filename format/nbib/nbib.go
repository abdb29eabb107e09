// Package nbib provides the NBIBIN/NBIBOUT format plugins for the PubMed
// "NBIB" tagged citation export format.
package nbib

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

func (f *In) Name() string              { return "nbibin" }
func (f *In) Description() string       { return "PubMed NBIB tagged citation format (reader)" }
func (f *In) Extensions() []string      { return []string{"nbib"} }
func (f *In) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("PMID- ")) || bytes.Contains(peek, []byte("PMID-")) }

func (f *Out) Name() string              { return "nbibout" }
func (f *Out) Description() string       { return "PubMed NBIB tagged citation format (writer)" }
func (f *Out) Extensions() []string      { return []string{"nbib"} }
func (f *Out) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("PMID- ")) }

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.NBIBIN, nbibTable)
	pipeline.RegisterCleaner(reftype.NBIBIN, cleanEntry)
}
