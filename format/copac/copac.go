// Package copac provides the COPACIN format plugin for the COPAC union
// catalogue's tagged export format. COPAC is read-only: the original
// catalogue has no corresponding writer to target.
package copac

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

func (f *In) Name() string              { return "copacin" }
func (f *In) Description() string       { return "COPAC union catalogue tagged export format (reader)" }
func (f *In) Extensions() []string      { return []string{"copac", "txt"} }
func (f *In) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("TI:")) && bytes.Contains(peek, []byte("AU:")) }

func init() {
	format.Register(&In{})
	reftype.RegisterTable(reftype.COPACIN, copacTable)
}
