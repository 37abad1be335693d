package wsv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedQuote indicates a double quote inside a null or unquoted cell.
	ErrUnexpectedQuote = errors.New("wsv: unexpected double quote")
	// ErrInvalidAfterQuote indicates a character other than quote, slash,
	// comment or whitespace directly after a closing quote.
	ErrInvalidAfterQuote = errors.New("wsv: invalid character after closing quote")
	// ErrInvalidLineBreak indicates a line break escape not completed by a quote.
	ErrInvalidLineBreak = errors.New("wsv: invalid line break escape")
	// ErrUnterminatedQuote indicates the line ended inside a quoted value.
	ErrUnterminatedQuote = errors.New("wsv: unterminated quoted value")
)

// SyntaxError reports the first invalid character of a line.
type SyntaxError struct {
	Offset int // 0-based character offset; the line length for unterminated quotes
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at character %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
