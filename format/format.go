// Package format defines the interface every per-format reader/writer
// plugin implements, plus the registry formats are discovered through.
//
// Parser/Serializer operate on *store.Collection rather than a structured
// protobuf message, since this module's neutral representation is a
// tagged/levelled field store (see DESIGN.md for the reasoning).
package format

import (
	"io"

	"github.com/osu-libraries/bibconv/diag"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

// Format identifies a bibliographic exchange format plugin.
type Format interface {
	// Name returns the format identifier matching a reftype.FormatID's
	// String() (e.g. "bibtexin", "risout").
	Name() string

	// Description returns a human-readable format description.
	Description() string

	// Extensions returns file extensions associated with this format.
	Extensions() []string

	// CanParse returns true if this format can parse the given input.
	CanParse(peek []byte) bool
}

// Parser is a format that can segment and parse input into a raw,
// format-native field store. The returned collection has NOT yet been
// through the cleaner, cross-reference resolver, typer, or converter.
type Parser interface {
	Format
	Parse(r io.Reader, opts *ParseOptions) (*store.Collection, error)
}

// Serializer is a format that can render a canonical-tag collection (the
// converter's output) to an output stream.
type Serializer interface {
	Format
	Serialize(w io.Writer, collection *store.Collection, opts *SerializeOptions) error
}

// ParseOptions carries parse-time configuration.
type ParseOptions struct {
	// SourceName identifies the input for diagnostic messages.
	SourceName string

	// Strict fails on unknown tags instead of warning and skipping.
	Strict bool

	// Diag collects non-fatal parse-time warnings (e.g. an unresolved
	// BibTeX string macro passed through verbatim). Nil is valid; a reader
	// that receives a nil Diag simply doesn't warn.
	Diag *diag.Sink
}

// SerializeOptions carries write-time configuration.
type SerializeOptions struct {
	Options reftype.FormatOptions
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{}
}
