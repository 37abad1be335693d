package sml

import (
	"errors"
	"fmt"

	"github.com/joshuapare/smlkit/internal/decoder"
	"github.com/joshuapare/smlkit/internal/reliabletext"
	"github.com/joshuapare/smlkit/internal/wsv"
)

// ErrorKind tells which layer rejected the input.
type ErrorKind uint8

const (
	ErrorKindEncoding  ErrorKind = iota + 1 // bytes could not be decoded to text
	ErrorKindRow                            // a line is not valid WSV
	ErrorKindStructure                      // rows do not form a single SML element tree
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindEncoding:
		return "encoding"
	case ErrorKindRow:
		return "row"
	case ErrorKindStructure:
		return "structure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is returned by every parse entry point for malformed input.
type Error struct {
	Kind ErrorKind

	// Line is the 1-based line of the offending row. It is 0 for encoding
	// errors. For a missing end it is the last line read.
	Line int

	// Offset is the 0-based character offset within the line, for row errors.
	Offset int

	// Err is the underlying *DecodeError / reliabletext sentinel,
	// *SyntaxError or *StructuralError.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == ErrorKindEncoding {
		return "sml: " + e.Err.Error()
	}
	return fmt.Sprintf("sml: line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StructuralKind returns the structural error kind, or 0 when the error did
// not come from the structure decoder.
func (e *Error) StructuralKind() StructuralKind {
	var se *decoder.StructuralError
	if errors.As(e.Err, &se) {
		return se.Kind
	}
	return 0
}

// Sentinels for errors.Is. Structural sentinels match any error of the same
// kind.
var (
	ErrBadByteOrderMark = reliabletext.ErrBadByteOrderMark
	ErrBadLength        = reliabletext.ErrBadLength
	ErrInvalidCode      = reliabletext.ErrInvalidCode

	ErrUnexpectedQuote   = wsv.ErrUnexpectedQuote
	ErrInvalidAfterQuote = wsv.ErrInvalidAfterQuote
	ErrInvalidLineBreak  = wsv.ErrInvalidLineBreak
	ErrUnterminatedQuote = wsv.ErrUnterminatedQuote

	ErrMissingEnd    = decoder.ErrMissingEnd
	ErrExtraEnd      = decoder.ErrExtraEnd
	ErrBadRoot       = decoder.ErrBadRoot
	ErrNullTitle     = decoder.ErrNullTitle
	ErrNullAttribute = decoder.ErrNullAttribute
	ErrTooManyRoots  = decoder.ErrTooManyRoots
	ErrLimitExceeded = decoder.ErrLimitExceeded
)

func encodingError(err error) *Error {
	return &Error{Kind: ErrorKindEncoding, Err: err}
}

func rowError(line int, err error) *Error {
	e := &Error{Kind: ErrorKindRow, Line: line, Err: err}
	var se *wsv.SyntaxError
	if errors.As(err, &se) {
		e.Offset = se.Offset
	}
	return e
}

func structureError(line int, err error) *Error {
	return &Error{Kind: ErrorKindStructure, Line: line, Err: err}
}
