// Package reliabletext decodes "reliable text": Unicode text that always
// starts with an explicit byte order mark and is split into lines by a single
// separator character.
package reliabletext

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	// ErrBadByteOrderMark indicates the input does not start with a supported byte order mark.
	ErrBadByteOrderMark = errors.New("reliabletext: unrecognized byte order mark")
	// ErrBadLength indicates the body is not a whole number of code units.
	ErrBadLength = errors.New("reliabletext: length is not a multiple of the code unit size")
	// ErrInvalidCode indicates an invalid code sequence for the detected encoding.
	ErrInvalidCode = errors.New("reliabletext: invalid code sequence")
)

// Encoding identifies one of the supported Unicode encoding forms.
type Encoding uint8

const (
	EncodingUnknown Encoding = iota
	UTF8
	UTF16BE
	UTF16LE
	UTF32BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16BE:
		return "UTF-16BE"
	case UTF16LE:
		return "UTF-16LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

// CodeUnitSize returns the width of one code unit in bytes.
func (e Encoding) CodeUnitSize() int {
	switch e {
	case UTF16BE, UTF16LE:
		return UTF16CodeUnitSize
	case UTF32BE:
		return UTF32CodeUnitSize
	default:
		return 1
	}
}

// DecodeError reports an invalid code sequence.
type DecodeError struct {
	Encoding Encoding
	Offset   int // byte offset of the offending code unit, relative to the body after the mark
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("reliabletext: invalid %s sequence at byte %d", e.Encoding, e.Offset)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidCode }

// Detect identifies the encoding from the byte order mark and returns the
// body following the mark.
func Detect(data []byte) (Encoding, []byte, error) {
	switch {
	case bytes.HasPrefix(data, UTF8BOM):
		return UTF8, data[len(UTF8BOM):], nil
	case bytes.HasPrefix(data, UTF32BEBOM):
		return UTF32BE, data[len(UTF32BEBOM):], nil
	case bytes.HasPrefix(data, UTF16BEBOM):
		return UTF16BE, data[len(UTF16BEBOM):], nil
	case bytes.HasPrefix(data, UTF16LEBOM):
		return UTF16LE, data[len(UTF16LEBOM):], nil
	default:
		return EncodingUnknown, nil, ErrBadByteOrderMark
	}
}

// Decode detects the encoding of data from its byte order mark and decodes
// the remainder to a string.
func Decode(data []byte) (string, error) {
	enc, body, err := Detect(data)
	if err != nil {
		return "", err
	}
	return DecodeBody(enc, body)
}

// DecodeBody decodes body, which must not include a byte order mark.
func DecodeBody(enc Encoding, body []byte) (string, error) {
	if size := enc.CodeUnitSize(); len(body)%size != 0 {
		return "", fmt.Errorf("%w: %s body has %d bytes", ErrBadLength, enc, len(body))
	}
	switch enc {
	case UTF8:
		return decodeUTF8(body)
	case UTF16BE:
		return decodeUTF16(body, binary.BigEndian, enc)
	case UTF16LE:
		return decodeUTF16(body, binary.LittleEndian, enc)
	case UTF32BE:
		return decodeUTF32BE(body)
	default:
		return "", ErrBadByteOrderMark
	}
}

// decodeUTF8 fails on the first invalid byte instead of substituting U+FFFD.
func decodeUTF8(body []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, body)
	if err != nil {
		return "", &DecodeError{Encoding: UTF8, Offset: n}
	}
	return string(out), nil
}

// decodeUTF16 rejects unpaired surrogates instead of substituting U+FFFD.
func decodeUTF16(body []byte, order binary.ByteOrder, enc Encoding) (string, error) {
	var sb strings.Builder
	sb.Grow(len(body) / UTF16CodeUnitSize)

	for i := 0; i < len(body); i += UTF16CodeUnitSize {
		r := rune(order.Uint16(body[i:]))
		if !utf16.IsSurrogate(r) {
			sb.WriteRune(r)
			continue
		}
		if i+2*UTF16CodeUnitSize > len(body) {
			return "", &DecodeError{Encoding: enc, Offset: i}
		}
		lo := rune(order.Uint16(body[i+UTF16CodeUnitSize:]))
		pair := utf16.DecodeRune(r, lo)
		if pair == utf8.RuneError {
			return "", &DecodeError{Encoding: enc, Offset: i}
		}
		sb.WriteRune(pair)
		i += UTF16CodeUnitSize
	}
	return sb.String(), nil
}

func decodeUTF32BE(body []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(body) / UTF32CodeUnitSize)

	for i := 0; i < len(body); i += UTF32CodeUnitSize {
		r := rune(binary.BigEndian.Uint32(body[i:]))
		if !utf8.ValidRune(r) {
			return "", &DecodeError{Encoding: UTF32BE, Offset: i}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
