package sml

import (
	"log/slog"

	"github.com/joshuapare/smlkit/internal/decoder"
	"github.com/joshuapare/smlkit/internal/wsv"
)

// NewDecoder creates an incremental decoder that accepts already tokenized
// rows, one per line, through Decoder.AddRow.
func NewDecoder(opts Options) *Decoder {
	return decoder.New(opts.decoderOptions())
}

// LineDecoder decodes a document one line of text at a time, tracking line
// numbers for diagnostics. The whole-document entry points are built on it.
type LineDecoder struct {
	dec  *decoder.Decoder
	line int
	err  *Error
	log  *slog.Logger
}

// NewLineDecoder creates a LineDecoder positioned before the first line.
func NewLineDecoder(opts Options) *LineDecoder {
	return &LineDecoder{
		dec: decoder.New(opts.decoderOptions()),
		log: opts.logger(),
	}
}

// AddLine tokenizes line and applies the resulting row. It returns the root
// element from the call that completes the document and nil otherwise.
// Errors are *Error and sticky.
func (ld *LineDecoder) AddLine(line string) (*Element, error) {
	if ld.err != nil {
		return nil, ld.err
	}
	ld.line++

	row, err := wsv.ParseRow(line)
	if err != nil {
		return nil, ld.fail(rowError(ld.line, err))
	}
	root, err := ld.dec.AddRow(row)
	if err != nil {
		return nil, ld.fail(structureError(ld.line, err))
	}
	return root, nil
}

// Close reports an error if the document was never completed. It does not
// release anything and may be called more than once.
func (ld *LineDecoder) Close() error {
	if ld.err != nil {
		return ld.err
	}
	if err := ld.dec.Finish(); err != nil {
		return ld.fail(structureError(ld.line, err))
	}
	return nil
}

// Line returns the number of lines consumed.
func (ld *LineDecoder) Line() int { return ld.line }

// Done reports whether the root element has closed.
func (ld *LineDecoder) Done() bool { return ld.dec.Done() }

func (ld *LineDecoder) fail(err *Error) *Error {
	ld.err = err
	ld.log.Debug("parse failed", "kind", err.Kind, "line", err.Line, "error", err.Err)
	return err
}
