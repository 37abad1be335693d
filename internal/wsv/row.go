// Package wsv tokenizes a single line of whitespace-separated values into a
// row of optional string cells.
//
// Grammar, outside quotes:
//   - whitespace separates cells
//   - a lone "-" is a null cell; "-" followed by anything else starts a literal
//   - "#" starts a comment that runs to the end of the line
//
// Inside double quotes every character is literal. A doubled quote inserts a
// literal quote, and a closing quote followed by /" inserts a line feed, so
// "a"/"b" is the two-line value a\nb.
package wsv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joshuapare/smlkit/pkg/ast"
)

const (
	quote        = '"'
	nullSentinel = '-'
	commentStart = '#'
	escapeSlash  = '/'
	lineFeed     = '\n'
)

// state is the tokenizer position relative to the cell being built.
type state uint8

const (
	stateReady         state = iota // between cells
	stateNull                       // a bare "-" has been read
	stateUnquoted                   // inside an unquoted cell
	stateQuoted                     // inside quotes
	stateQuotedEnd                  // just read a quote that may close the cell
	stateQuotedNewline              // read quote and slash, expecting a quote
)

func (s state) String() string {
	switch s {
	case stateReady:
		return "ready"
	case stateNull:
		return "null"
	case stateUnquoted:
		return "unquoted"
	case stateQuoted:
		return "quoted"
	case stateQuotedEnd:
		return "quoted-end"
	case stateQuotedNewline:
		return "quoted-newline"
	default:
		return "invalid"
	}
}

// ParseRow splits line into cells. On failure the returned *SyntaxError
// carries the 0-based character offset of the first invalid character.
func ParseRow(line string) (ast.Row, error) {
	var t tokenizer
	offset := 0
	for _, ch := range line {
		stop, err := t.step(ch)
		if err != nil {
			return nil, &SyntaxError{Offset: offset, Err: err}
		}
		if stop {
			break
		}
		offset++
	}
	if err := t.finish(); err != nil {
		return nil, &SyntaxError{Offset: utf8.RuneCountInString(line), Err: err}
	}
	return t.row, nil
}

type tokenizer struct {
	state state
	cell  strings.Builder
	row   ast.Row
}

// step consumes one character. stop reports that the rest of the line is a
// comment.
func (t *tokenizer) step(ch rune) (stop bool, err error) {
	switch t.state {
	case stateReady:
		switch {
		case ch == quote:
			t.state = stateQuoted
		case ch == nullSentinel:
			t.state = stateNull
		case ch == commentStart:
			return true, nil
		case unicode.IsSpace(ch):
		default:
			t.cell.WriteRune(ch)
			t.state = stateUnquoted
		}

	case stateNull:
		switch {
		case ch == quote:
			return false, ErrUnexpectedQuote
		case ch == commentStart:
			return true, nil
		case unicode.IsSpace(ch):
			t.emitNull()
		default:
			t.cell.WriteRune(nullSentinel)
			t.cell.WriteRune(ch)
			t.state = stateUnquoted
		}

	case stateUnquoted:
		switch {
		case ch == quote:
			return false, ErrUnexpectedQuote
		case ch == commentStart:
			return true, nil
		case unicode.IsSpace(ch):
			t.emitValue()
		default:
			t.cell.WriteRune(ch)
		}

	case stateQuoted:
		if ch == quote {
			t.state = stateQuotedEnd
		} else {
			t.cell.WriteRune(ch)
		}

	case stateQuotedEnd:
		switch {
		case ch == quote:
			t.cell.WriteRune(quote)
			t.state = stateQuoted
		case ch == escapeSlash:
			t.state = stateQuotedNewline
		case ch == commentStart:
			return true, nil
		case unicode.IsSpace(ch):
			t.emitValue()
		default:
			return false, ErrInvalidAfterQuote
		}

	case stateQuotedNewline:
		if ch != quote {
			return false, ErrInvalidLineBreak
		}
		t.cell.WriteRune(lineFeed)
		t.state = stateQuoted
	}
	return false, nil
}

// finish flushes the pending cell at end of line or at a comment.
func (t *tokenizer) finish() error {
	switch t.state {
	case stateQuoted, stateQuotedNewline:
		return ErrUnterminatedQuote
	case stateNull:
		t.emitNull()
	case stateUnquoted, stateQuotedEnd:
		t.emitValue()
	}
	return nil
}

func (t *tokenizer) emitNull() {
	t.row = append(t.row, ast.Null())
	t.state = stateReady
}

func (t *tokenizer) emitValue() {
	t.row = append(t.row, ast.Value(t.cell.String()))
	t.cell.Reset()
	t.state = stateReady
}
