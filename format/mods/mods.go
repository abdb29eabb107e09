// Package mods provides the MODSIN/MODSOUT format plugins: a reader that
// walks parsed MODS XML into a raw, mods-tagged field store using the
// xmlnode tree, and a writer that renders a canonical-tag collection back
// out as MODS XML.
package mods

import (
	"bytes"

	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
)

// Version documents the MODS specification this implementation targets.
const Version = "3.8"

// In implements MODSIN.
type In struct{}

// Out implements MODSOUT.
type Out struct{}

var (
	_ format.Format = (*In)(nil)
	_ format.Parser = (*In)(nil)

	_ format.Format     = (*Out)(nil)
	_ format.Serializer = (*Out)(nil)
)

func (f *In) Name() string         { return "modsin" }
func (f *In) Description() string  { return "Library of Congress MODS XML v" + Version + " (reader)" }
func (f *In) Extensions() []string { return []string{"xml", "mods"} }
func (f *In) CanParse(peek []byte) bool {
	return canParseMods(peek)
}

func (f *Out) Name() string         { return "modsout" }
func (f *Out) Description() string  { return "Library of Congress MODS XML v" + Version + " (writer)" }
func (f *Out) Extensions() []string { return []string{"xml", "mods"} }
func (f *Out) CanParse(peek []byte) bool {
	return canParseMods(peek)
}

func canParseMods(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	for _, p := range [][]byte{[]byte("loc.gov/mods"), []byte("<mods"), []byte("<modsCollection"), []byte("titleInfo")} {
		if bytes.Contains(peek, p) {
			return true
		}
	}
	return false
}

func init() {
	format.Register(&In{})
	format.Register(&Out{})
	reftype.RegisterTable(reftype.MODSIN, modsTable)
}
