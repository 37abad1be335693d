package wsv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/smlkit/pkg/ast"
)

var (
	v = ast.Value
	n = ast.Null
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ast.Row
	}{
		{name: "simple values", line: "x y z", want: ast.Row{v("x"), v("y"), v("z")}},
		{name: "tabs and runs of spaces", line: "\tx  \t y ", want: ast.Row{v("x"), v("y")}},
		{name: "unicode whitespace", line: "a b　c", want: ast.Row{v("a"), v("b"), v("c")}},
		{name: "null alone", line: "-", want: ast.Row{n()}},
		{name: "null padded", line: "  -  ", want: ast.Row{n()}},
		{name: "two nulls", line: "- -", want: ast.Row{n(), n()}},
		{name: "dash prefix is literal", line: "- -1", want: ast.Row{n(), v("-1")}},
		{name: "dash word", line: "-x", want: ast.Row{v("-x")}},
		{name: "double dash", line: "--", want: ast.Row{v("--")}},
		{name: "dash slash", line: "-/", want: ast.Row{v("-/")}},
		{name: "quoted dash is a value", line: `"-" -`, want: ast.Row{v("-"), n()}},
		{name: "empty quoted", line: `""`, want: ast.Row{v("")}},
		{name: "escaped quote", line: `"one""two"`, want: ast.Row{v(`one"two`)}},
		{name: "escaped newline", line: `""/""`, want: ast.Row{v("\n")}},
		{name: "newline between text", line: `"a"/"b"`, want: ast.Row{v("a\nb")}},
		{name: "mixed quoting", line: `"one""two" "" ""/""`, want: ast.Row{v(`one"two`), v(""), v("\n")}},
		{name: "quoted whitespace and hash", line: `"a b # c"`, want: ast.Row{v("a b # c")}},
		{name: "dash inside unquoted", line: "a-b", want: ast.Row{v("a-b")}},
		{name: "non-ascii values", line: "äöü 𝄞", want: ast.Row{v("äöü"), v("𝄞")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRowEmpty(t *testing.T) {
	for _, line := range []string{"", "    ", "\t", "#", "# comment", "   # comment \"unbalanced"} {
		got, err := ParseRow(line)
		require.NoError(t, err, "line %q", line)
		assert.Empty(t, got, "line %q", line)
	}
}

func TestParseRowComments(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ast.Row
	}{
		{name: "after quoted", line: `"one"#`, want: ast.Row{v("one")}},
		{name: "after quoted with garbage", line: `"one"#rest "x`, want: ast.Row{v("one")}},
		{name: "terminates unquoted", line: "abc#def", want: ast.Row{v("abc")}},
		{name: "terminates null", line: "x -#c", want: ast.Row{v("x"), n()}},
		{name: "after separator", line: "x y -#Comment", want: ast.Row{v("x"), v("y"), n()}},
		{name: "hash inside quotes is text", line: `"a#b" #c`, want: ast.Row{v("a#b")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRowErrors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		offset int
		err    error
	}{
		{name: "quote after null", line: `-"`, offset: 1, err: ErrUnexpectedQuote},
		{name: "quote inside unquoted", line: `ab"c"`, offset: 2, err: ErrUnexpectedQuote},
		{name: "text after closing quote", line: `"a"b`, offset: 3, err: ErrInvalidAfterQuote},
		{name: "dash after closing quote", line: `x "a"-`, offset: 5, err: ErrInvalidAfterQuote},
		{name: "bad line break escape", line: `"a"/b"`, offset: 4, err: ErrInvalidLineBreak},
		{name: "hash after slash", line: `"a"/#`, offset: 4, err: ErrInvalidLineBreak},
		{name: "unterminated", line: `x "abc`, offset: 6, err: ErrUnterminatedQuote},
		{name: "unterminated after escape", line: `"a"/`, offset: 4, err: ErrUnterminatedQuote},
		{name: "unterminated counts characters", line: `"äöü`, offset: 4, err: ErrUnterminatedQuote},
		{name: "offset counts characters", line: `ä"`, offset: 1, err: ErrUnexpectedQuote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.line)
			require.Error(t, err)
			assert.Nil(t, got)
			require.ErrorIs(t, err, tt.err)

			var synErr *SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, tt.offset, synErr.Offset)
			assert.Contains(t, err.Error(), fmt.Sprintf("at character %d", tt.offset))
		})
	}
}

// TestTransitions drives the state machine one character at a time so that
// every edge is exercised in isolation.
func TestTransitions(t *testing.T) {
	tests := []struct {
		from     state
		ch       rune
		to       state
		stop     bool
		err      error
		wantCell string
		wantRow  ast.Row
	}{
		{from: stateReady, ch: '"', to: stateQuoted},
		{from: stateReady, ch: '-', to: stateNull},
		{from: stateReady, ch: '#', to: stateReady, stop: true},
		{from: stateReady, ch: ' ', to: stateReady},
		{from: stateReady, ch: 'a', to: stateUnquoted, wantCell: "a"},

		{from: stateNull, ch: '"', to: stateNull, err: ErrUnexpectedQuote},
		{from: stateNull, ch: '#', to: stateNull, stop: true},
		{from: stateNull, ch: ' ', to: stateReady, wantRow: ast.Row{n()}},
		{from: stateNull, ch: 'a', to: stateUnquoted, wantCell: "-a"},

		{from: stateUnquoted, ch: '"', to: stateUnquoted, err: ErrUnexpectedQuote},
		{from: stateUnquoted, ch: '#', to: stateUnquoted, stop: true},
		{from: stateUnquoted, ch: ' ', to: stateReady, wantRow: ast.Row{v("")}},
		{from: stateUnquoted, ch: 'a', to: stateUnquoted, wantCell: "a"},

		{from: stateQuoted, ch: '"', to: stateQuotedEnd},
		{from: stateQuoted, ch: ' ', to: stateQuoted, wantCell: " "},
		{from: stateQuoted, ch: '#', to: stateQuoted, wantCell: "#"},

		{from: stateQuotedEnd, ch: '"', to: stateQuoted, wantCell: `"`},
		{from: stateQuotedEnd, ch: '/', to: stateQuotedNewline},
		{from: stateQuotedEnd, ch: '#', to: stateQuotedEnd, stop: true},
		{from: stateQuotedEnd, ch: ' ', to: stateReady, wantRow: ast.Row{v("")}},
		{from: stateQuotedEnd, ch: 'a', to: stateQuotedEnd, err: ErrInvalidAfterQuote},

		{from: stateQuotedNewline, ch: '"', to: stateQuoted, wantCell: "\n"},
		{from: stateQuotedNewline, ch: 'a', to: stateQuotedNewline, err: ErrInvalidLineBreak},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%q", tt.from, tt.ch), func(t *testing.T) {
			tok := tokenizer{state: tt.from}
			stop, err := tok.step(tt.ch)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stop, stop)
			assert.Equal(t, tt.to, tok.state, "got state %s", tok.state)
			assert.Equal(t, tt.wantCell, tok.cell.String())
			assert.Equal(t, tt.wantRow, tok.row)
		})
	}
}

func TestFinish(t *testing.T) {
	tests := []struct {
		from    state
		err     error
		wantRow ast.Row
	}{
		{from: stateReady},
		{from: stateNull, wantRow: ast.Row{n()}},
		{from: stateUnquoted, wantRow: ast.Row{v("")}},
		{from: stateQuotedEnd, wantRow: ast.Row{v("")}},
		{from: stateQuoted, err: ErrUnterminatedQuote},
		{from: stateQuotedNewline, err: ErrUnterminatedQuote},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			tok := tokenizer{state: tt.from}
			err := tok.finish()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRow, tok.row)
		})
	}
}
