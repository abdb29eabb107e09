// Package pipeline implements the format-agnostic middle of the conversion
// pipeline: cleaner, cross-reference resolver, typer, and converter.
// Per-format readers and writers live under format/*; this package is what
// turns a reader's raw field store into the canonical internal-tag field
// store every writer consumes.
package pipeline

import (
	"fmt"
	"io"

	"github.com/osu-libraries/bibconv/diag"
	"github.com/osu-libraries/bibconv/format"
	"github.com/osu-libraries/bibconv/reftype"
	"github.com/osu-libraries/bibconv/store"
)

// Param is the caller-constructed bundle describing a single read+write
// pass: input/output format, charset intent, and writer flag options. It is
// not safe for concurrent mutation from multiple goroutines; a correct
// caller either confines one Param to one goroutine or guards it with its
// own mutex.
type Param struct {
	InputFormat  reftype.FormatID
	OutputFormat reftype.FormatID

	Charset       store.Charset
	CharsetSource store.CharsetSource

	Options reftype.FormatOptions

	// ProgName is used only in diagnostic messages.
	ProgName string

	Diag *diag.Sink
}

// NewParam builds a Param with sane zero-value defaults, following the
// teacher's NewParseOptions/NewSerializeOptions constructor pattern.
func NewParam(in, out reftype.FormatID) *Param {
	return &Param{
		InputFormat:  in,
		OutputFormat: out,
		Charset:      store.CharsetUnknown,
		CharsetSource: store.SourceDefault,
		Diag:         &diag.Sink{},
	}
}

// Read parses source using the reader registered for param.InputFormat,
// then runs it through Convert so the returned collection uses canonical
// internal tags regardless of the source format.
func Read(source io.Reader, filename string, param *Param) (*store.Collection, error) {
	parser, err := format.GetParser(param.InputFormat.String())
	if err != nil {
		return nil, &store.Error{Status: store.BadInput, Message: "unknown input format", Cause: err}
	}

	raw, err := parser.Parse(source, &format.ParseOptions{SourceName: filename, Diag: param.Diag})
	if err != nil {
		return nil, &store.Error{Status: store.BadInput, Message: "parsing input", Cause: err}
	}

	return Convert(raw, param.InputFormat, filename, param)
}

// Write serializes collection (already in canonical internal-tag form)
// using the writer registered for param.OutputFormat.
func Write(collection *store.Collection, sink io.Writer, param *Param) error {
	serializer, err := format.GetSerializer(param.OutputFormat.String())
	if err != nil {
		return &store.Error{Status: store.BadInput, Message: "unknown output format", Cause: err}
	}
	opts := &format.SerializeOptions{Options: param.Options}
	if err := serializer.Serialize(sink, collection, opts); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
