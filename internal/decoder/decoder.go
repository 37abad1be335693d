// Package decoder builds an SML element tree from WSV rows.
//
// A Decoder keeps a stack of open elements. A single-cell row opens an
// element, or closes the innermost one when the cell is "end" in any letter
// case. A row with more cells adds an attribute to the innermost open
// element. Empty rows are ignored. When the root element closes the document
// is complete; from then on only empty rows are accepted.
//
// Whole-document and incremental decoding both go through AddRow, so the
// structural rules cannot diverge between the two.
package decoder

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/joshuapare/smlkit/pkg/ast"
)

// Options configures a Decoder. The zero value imposes no limits and logs
// nothing.
type Options struct {
	// Limits bounds the decoded tree. Nil means unbounded.
	Limits *ast.Limits

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// Decoder is an incremental SML structure decoder. It is not safe for
// concurrent use.
type Decoder struct {
	stack  []*ast.Element // open elements, root first
	done   bool           // root element has closed
	rows   int
	err    error
	limits *ast.Limits
	log    *slog.Logger
}

// New creates a Decoder with no open elements.
func New(opts Options) *Decoder {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Decoder{limits: opts.Limits, log: log}
}

// AddRow applies one row. It returns the root element exactly once, from the
// call whose end row closes it; ownership of the tree passes to the caller.
// After an error the decoder is unusable and every later call returns the
// same error.
func (d *Decoder) AddRow(row ast.Row) (*ast.Element, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.rows++

	root, err := d.step(row)
	if err != nil {
		d.err = err
		d.log.Debug("structural error", "row", d.rows, "depth", len(d.stack), "error", err)
		return nil, err
	}
	if root != nil {
		d.log.Debug("document complete", "title", root.Title, "rows", d.rows)
	}
	return root, nil
}

// Finish reports whether the input seen so far forms a complete document.
// It returns an error of kind KindMissingEnd if the root never closed.
func (d *Decoder) Finish() error {
	if d.err != nil {
		return d.err
	}
	if !d.done {
		d.err = &StructuralError{Kind: KindMissingEnd}
		d.log.Debug("structural error", "row", d.rows, "depth", len(d.stack), "error", d.err)
	}
	return d.err
}

// Done reports whether the root element has closed.
func (d *Decoder) Done() bool { return d.done }

// Depth returns the number of open elements.
func (d *Decoder) Depth() int { return len(d.stack) }

// Rows returns the number of rows passed to AddRow, including empty ones.
func (d *Decoder) Rows() int { return d.rows }

// Err returns the error that stopped the decoder, if any.
func (d *Decoder) Err() error { return d.err }

func (d *Decoder) step(row ast.Row) (*ast.Element, error) {
	switch {
	case len(row) == 0:
		return nil, nil
	case d.done:
		if len(row) == 1 && isEnd(row[0]) {
			return nil, &StructuralError{Kind: KindExtraEnd}
		}
		return nil, &StructuralError{Kind: KindTooManyRoots}
	case len(row) == 1 && isEnd(row[0]):
		return d.closeElement()
	case len(row) == 1:
		return nil, d.openElement(row[0])
	default:
		return nil, d.addAttribute(row)
	}
}

func (d *Decoder) openElement(title ast.Cell) error {
	if title.Null {
		return &StructuralError{Kind: KindNullTitle}
	}
	if err := d.limits.CheckName(title.Value); err != nil {
		return limitExceeded(err)
	}
	if top := d.top(); top != nil {
		// The child is attached on close; reserve its slot now.
		if err := d.limits.CheckChildren(top); err != nil {
			return limitExceeded(err)
		}
	}
	if err := d.limits.CheckDepth(len(d.stack) + 1); err != nil {
		return limitExceeded(err)
	}
	d.stack = append(d.stack, ast.NewElement(title.Value))
	return nil
}

// closeElement pops the innermost element and moves it into its parent.
func (d *Decoder) closeElement() (*ast.Element, error) {
	n := len(d.stack)
	if n == 0 {
		return nil, &StructuralError{Kind: KindBadRoot}
	}
	elt := d.stack[n-1]
	d.stack[n-1] = nil
	d.stack = d.stack[:n-1]

	if n == 1 {
		d.done = true
		return elt, nil
	}
	d.stack[n-2].AddElement(elt)
	return nil, nil
}

func (d *Decoder) addAttribute(row ast.Row) error {
	name := row[0]
	if name.Null {
		return &StructuralError{Kind: KindNullAttribute}
	}
	top := d.top()
	if top == nil {
		return &StructuralError{Kind: KindBadRoot}
	}
	values := slices.Clone(row[1:])
	if err := d.limits.CheckChildren(top); err != nil {
		return limitExceeded(err)
	}
	if err := d.limits.CheckAttribute(name.Value, values); err != nil {
		return limitExceeded(err)
	}
	top.AddAttribute(name.Value, values...)
	return nil
}

func (d *Decoder) top() *ast.Element {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

func isEnd(c ast.Cell) bool {
	return !c.Null && strings.EqualFold(c.Value, ast.EndKeyword)
}

func limitExceeded(err error) error {
	return &StructuralError{Kind: KindLimitExceeded, Err: err}
}
