package printer

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/joshuapare/smlkit/pkg/ast"
)

// jsonElement represents an element in JSON format. Children holds
// jsonElement and jsonAttribute values in document order.
type jsonElement struct {
	Title      string `json:"title"`
	Attributes int    `json:"attributes,omitempty"`
	Elements   int    `json:"elements,omitempty"`
	Children   []any  `json:"children,omitempty"`
}

// jsonAttribute represents an attribute in JSON format. Null values are
// JSON null.
type jsonAttribute struct {
	Name   string    `json:"name"`
	Values []*string `json:"values"`
}

// printElementJSON prints a subtree in JSON format.
func (p *Printer) printElementJSON(e *ast.Element) error {
	return p.writeJSON(p.elementJSON(e, 0))
}

// printAttributeJSON prints a single attribute in JSON format.
func (p *Printer) printAttributeJSON(a *ast.Attribute) error {
	return p.writeJSON(attributeJSON(a))
}

func (p *Printer) elementJSON(e *ast.Element, depth int) jsonElement {
	out := jsonElement{Title: e.Title}
	if p.opts.PrintMetadata {
		out.Attributes, out.Elements = counts(e)
	}

	for _, child := range e.Children {
		switch c := child.(type) {
		case *ast.Element:
			if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
				continue
			}
			out.Children = append(out.Children, p.elementJSON(c, depth+1))
		case *ast.Attribute:
			if p.opts.ShowAttributes {
				out.Children = append(out.Children, attributeJSON(c))
			}
		}
	}
	return out
}

func attributeJSON(a *ast.Attribute) jsonAttribute {
	return jsonAttribute{Name: a.Key, Values: a.Strings()}
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
