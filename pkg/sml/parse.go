package sml

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/klauspost/compress/gzip"

	"github.com/joshuapare/smlkit/internal/mmfile"
	"github.com/joshuapare/smlkit/internal/reliabletext"
	"github.com/joshuapare/smlkit/internal/wsv"
)

// gzipMagic starts every gzip member. It cannot be confused with a byte
// order mark.
var gzipMagic = []byte{0x1f, 0x8b}

// Parse decodes a complete SML document. data must start with a UTF-8,
// UTF-16BE, UTF-16LE or UTF-32BE byte order mark.
//
// Example:
//
//	root, err := sml.Parse(data, sml.Options{})
//	if err != nil {
//	    var perr *sml.Error
//	    if errors.As(err, &perr) {
//	        log.Printf("line %d: %v", perr.Line, perr.Err)
//	    }
//	    return err
//	}
//	fmt.Println(root.Title)
func Parse(data []byte, opts Options) (*Element, error) {
	enc, body, err := reliabletext.Detect(data)
	if err != nil {
		return nil, encodingError(err)
	}
	text, err := reliabletext.DecodeBody(enc, body)
	if err != nil {
		return nil, encodingError(err)
	}
	opts.logger().Debug("decoded text", "encoding", enc.String(), "bytes", len(data))
	return ParseString(text, opts)
}

// ParseString decodes a document that is already text, without a byte
// order mark.
func ParseString(text string, opts Options) (*Element, error) {
	return ParseLines(reliabletext.Lines(text), opts)
}

// ParseLines decodes a document from a sequence of lines. Lines are consumed
// one at a time and rows after the root element are still checked, so the
// sequence is always read to the end unless an error occurs.
func ParseLines(lines iter.Seq[string], opts Options) (*Element, error) {
	ld := NewLineDecoder(opts)
	var root *Element
	for line := range lines {
		got, err := ld.AddLine(line)
		if err != nil {
			return nil, err
		}
		if got != nil {
			root = got
		}
	}
	if err := ld.Close(); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseReader reads r to the end and decodes it like Parse. Gzip-compressed
// input is inflated first.
func ParseReader(r io.Reader, opts Options) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sml: read: %w", err)
	}
	data, err = inflate(data)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts)
}

// ParseFile decodes the document stored at path. The file is memory-mapped
// where supported; gzip-compressed files are inflated first.
//
// Example:
//
//	root, err := sml.ParseFile("game.sml", sml.Options{Limits: sml.StrictLimits()})
func ParseFile(path string, opts Options) (*Element, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("sml: failed to open %s: %w", path, err)
	}
	defer cleanup()

	data, err = inflate(data)
	if err != nil {
		return nil, fmt.Errorf("sml: %s: %w", path, err)
	}
	opts.logger().Debug("parsing file", "path", path, "bytes", len(data))
	return Parse(data, opts)
}

// ParseRow tokenizes a single WSV line. On failure the error is a
// *SyntaxError holding the 0-based character offset of the first invalid
// character.
func ParseRow(line string) (Row, error) {
	return wsv.ParseRow(line)
}

// Decode converts bytes starting with a byte order mark to text.
func Decode(data []byte) (string, Encoding, error) {
	enc, body, err := reliabletext.Detect(data)
	if err != nil {
		return "", enc, err
	}
	text, err := reliabletext.DecodeBody(enc, body)
	return text, enc, err
}

// Lines yields the lines of text, split on line feed only.
func Lines(text string) iter.Seq[string] {
	return reliabletext.Lines(text)
}

// inflate returns data unchanged unless it is gzip-compressed.
func inflate(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return out, nil
}
