package ast

import (
	"strings"
)

// PathSeparator separates element titles in paths passed to Element.Find.
const PathSeparator = "/"

// Cell is one optional string value within a row.
// The zero value is a present, empty string.
type Cell struct {
	Value string
	Null  bool
}

// Value returns a present cell holding s.
func Value(s string) Cell {
	return Cell{Value: s}
}

// Null returns a null cell.
func Null() Cell {
	return Cell{Null: true}
}

// Ptr returns the cell as a *string, nil when the cell is null.
func (c Cell) Ptr() *string {
	if c.Null {
		return nil
	}
	s := c.Value
	return &s
}

// String returns the cell value, or "-" for a null cell.
func (c Cell) String() string {
	if c.Null {
		return NullSentinel
	}
	return c.Value
}

// Row is the ordered list of cells decoded from one line.
type Row []Cell

// Node is a child of an Element: either *Element or *Attribute.
type Node interface {
	// Name returns the element title or the attribute name.
	Name() string
	node()
}

// Attribute is a named list of values attached to an element.
type Attribute struct {
	Key    string
	Values []Cell
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.Key }

func (*Attribute) node() {}

// Strings returns the attribute values with null cells as nil.
func (a *Attribute) Strings() []*string {
	out := make([]*string, len(a.Values))
	for i, v := range a.Values {
		out[i] = v.Ptr()
	}
	return out
}

// Element is a titled, ordered collection of attributes and nested elements.
type Element struct {
	Title    string
	Children []Node
}

// NewElement creates an element with no children.
func NewElement(title string) *Element {
	return &Element{Title: title}
}

// Name returns the element title.
func (e *Element) Name() string { return e.Title }

func (*Element) node() {}

// AddElement appends child to the element's children.
func (e *Element) AddElement(child *Element) {
	e.Children = append(e.Children, child)
}

// AddAttribute appends an attribute built from name and values.
func (e *Element) AddAttribute(name string, values ...Cell) *Attribute {
	attr := &Attribute{Key: name, Values: values}
	e.Children = append(e.Children, attr)
	return attr
}

// Elements returns the nested elements in document order. When names are
// given, only elements whose title matches one of them are returned.
func (e *Element) Elements(names ...string) []*Element {
	var out []*Element
	for _, child := range e.Children {
		if elt, ok := child.(*Element); ok && matchesAny(elt.Title, names) {
			out = append(out, elt)
		}
	}
	return out
}

// Attributes returns the attributes in document order. When names are given,
// only attributes whose name matches one of them are returned.
func (e *Element) Attributes(names ...string) []*Attribute {
	var out []*Attribute
	for _, child := range e.Children {
		if attr, ok := child.(*Attribute); ok && matchesAny(attr.Key, names) {
			out = append(out, attr)
		}
	}
	return out
}

// Element returns the first nested element titled name, or nil.
func (e *Element) Element(name string) *Element {
	for _, child := range e.Children {
		if elt, ok := child.(*Element); ok && strings.EqualFold(elt.Title, name) {
			return elt
		}
	}
	return nil
}

// Attribute returns the first attribute called name, or nil.
func (e *Element) Attribute(name string) *Attribute {
	for _, child := range e.Children {
		if attr, ok := child.(*Attribute); ok && strings.EqualFold(attr.Key, name) {
			return attr
		}
	}
	return nil
}

// Find resolves a slash-separated path relative to e. Every segment but the
// last must name a nested element; the last may name an element or an
// attribute, elements taking precedence. An empty path returns e.
// Returns nil if not found.
func (e *Element) Find(path string) Node {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return e
	}
	return findRecursive(e, segments)
}

func findRecursive(e *Element, segments []string) Node {
	if len(segments) == 1 {
		if elt := e.Element(segments[0]); elt != nil {
			return elt
		}
		if attr := e.Attribute(segments[0]); attr != nil {
			return attr
		}
		return nil
	}
	next := e.Element(segments[0])
	if next == nil {
		return nil
	}
	return findRecursive(next, segments[1:])
}

// SplitPath splits a path into non-empty segments.
func SplitPath(path string) []string {
	parts := strings.Split(path, PathSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchesAny(name string, names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
