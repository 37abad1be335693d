package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/smlkit/pkg/ast"
)

// printElementText prints a subtree as an indented outline.
func (p *Printer) printElementText(root *ast.Element) error {
	return ast.Walk(root, func(n ast.Node, depth int) error {
		switch n := n.(type) {
		case *ast.Element:
			if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
				return ast.SkipChildren
			}
			return p.printTitleText(n, depth)
		case *ast.Attribute:
			if p.opts.ShowAttributes {
				return p.printAttributeText(n, depth)
			}
		}
		return nil
	})
}

func (p *Printer) printTitleText(e *ast.Element, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if !p.opts.PrintMetadata {
		_, err := fmt.Fprintf(p.writer, "%s[%s]\n", indent, e.Title)
		return err
	}
	attrs, elts := counts(e)
	_, err := fmt.Fprintf(p.writer, "%s[%s] Attributes: %d, Elements: %d\n", indent, e.Title, attrs, elts)
	return err
}

// printAttributeText prints one attribute as: Name = "v1" "v2" -
func (p *Printer) printAttributeText(a *ast.Attribute, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(a.Key)
	b.WriteString(" =")
	for _, v := range a.Values {
		b.WriteByte(' ')
		if v.Null {
			b.WriteString(ast.NullSentinel)
		} else {
			b.WriteString(strconv.Quote(v.Value))
		}
	}
	b.WriteByte('\n')

	_, err := fmt.Fprint(p.writer, b.String())
	return err
}
