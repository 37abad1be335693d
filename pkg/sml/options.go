package sml

import (
	"io"
	"log/slog"

	"github.com/joshuapare/smlkit/internal/decoder"
	"github.com/joshuapare/smlkit/internal/reliabletext"
	"github.com/joshuapare/smlkit/internal/wsv"
	"github.com/joshuapare/smlkit/pkg/ast"
)

// Options controls parsing. The zero value applies no limits and logs
// nothing.
type Options struct {
	// Limits bounds the decoded tree (depth, width, name length).
	// If nil, the tree is unbounded. See DefaultLimits and StrictLimits.
	Limits *Limits

	// Logger receives debug records about decoding: detected encoding,
	// document completion and failures.
	// If nil, records are discarded.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) decoderOptions() decoder.Options {
	return decoder.Options{Limits: o.Limits, Logger: o.logger()}
}

// Tree types (re-exported for convenience).
type (
	Element   = ast.Element
	Attribute = ast.Attribute
	Node      = ast.Node
	Cell      = ast.Cell
	Row       = ast.Row
)

// Limits defines constraints on the decoded tree.
type Limits = ast.Limits

// LimitError reports an exceeded limit.
type LimitError = ast.LimitError

// DefaultLimits returns limits that every reasonable document satisfies.
func DefaultLimits() *Limits {
	l := ast.DefaultLimits()
	return &l
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() *Limits {
	l := ast.StrictLimits()
	return &l
}

// Decoder is the incremental structure decoder (re-exported for convenience).
type Decoder = decoder.Decoder

// Component error types (re-exported for convenience).
type (
	StructuralError = decoder.StructuralError
	StructuralKind  = decoder.Kind
	SyntaxError     = wsv.SyntaxError
	DecodeError     = reliabletext.DecodeError
)

// Encoding identifies the Unicode encoding form announced by a byte order mark.
type Encoding = reliabletext.Encoding

// Supported encodings.
const (
	UTF8    = reliabletext.UTF8
	UTF16BE = reliabletext.UTF16BE
	UTF16LE = reliabletext.UTF16LE
	UTF32BE = reliabletext.UTF32BE
)

// Structural error kinds.
const (
	KindMissingEnd    = decoder.KindMissingEnd
	KindExtraEnd      = decoder.KindExtraEnd
	KindBadRoot       = decoder.KindBadRoot
	KindNullTitle     = decoder.KindNullTitle
	KindNullAttribute = decoder.KindNullAttribute
	KindTooManyRoots  = decoder.KindTooManyRoots
	KindLimitExceeded = decoder.KindLimitExceeded
)
