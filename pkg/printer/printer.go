package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/smlkit/pkg/ast"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented outline.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels of elements are printed (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowAttributes includes attributes in output.
	// Default: true
	ShowAttributes bool

	// PrintMetadata includes attribute and element counts per element.
	// Default: false
	PrintMetadata bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		ShowAttributes: true,
		PrintMetadata:  false,
	}
}

// Printer renders decoded trees for inspection. The output is diagnostic and
// is not SML.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	root, _ := sml.ParseFile("game.sml", sml.Options{})
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintElement(root)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintElement prints e and everything below it, up to MaxDepth levels.
func (p *Printer) PrintElement(e *ast.Element) error {
	if e == nil {
		return fmt.Errorf("print element: nil element")
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printElementJSON(e)
	case FormatText:
		return p.printElementText(e)
	default:
		return p.printElementText(e)
	}
}

// PrintPath prints the node found at path below root.
//
// Path segments are matched case-insensitively, see ast.Element.Find.
//
// Example:
//
//	p.PrintPath(root, "Video/Resolution")
func (p *Printer) PrintPath(root *ast.Element, path string) error {
	node := root.Find(path)
	if node == nil {
		return fmt.Errorf("find %q: not found", path)
	}

	switch n := node.(type) {
	case *ast.Element:
		return p.PrintElement(n)
	case *ast.Attribute:
		if p.opts.Format == FormatJSON {
			return p.printAttributeJSON(n)
		}
		return p.printAttributeText(n, 0)
	default:
		return fmt.Errorf("find %q: unexpected node %T", path, node)
	}
}

// counts returns the number of attributes and nested elements of e.
func counts(e *ast.Element) (attrs, elts int) {
	for _, child := range e.Children {
		if _, ok := child.(*ast.Attribute); ok {
			attrs++
		} else {
			elts++
		}
	}
	return attrs, elts
}
