// Package ads provides the ADSABSOUT format plugin for the NASA
// Astrophysics Data System's "%"-tagged abstract export format. ADS is
// write-only here: this module has no inbound ADS citations to read.
package ads

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
)

type Out struct{}

var (
	_ format.Format     = (*Out)(nil)
	_ format.Serializer = (*Out)(nil)
)

func (f *Out) Name() string        { return "adsabsout" }
func (f *Out) Description() string { return "NASA ADS tagged abstract export format (writer)" }
func (f *Out) Extensions() []string {
	return []string{"ads"}
}
func (f *Out) CanParse(peek []byte) bool { return bytes.Contains(peek, []byte("%R ")) }

func init() {
	format.Register(&Out{})
}
