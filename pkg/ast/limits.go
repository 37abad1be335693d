package ast

import (
	"fmt"
	"unicode/utf8"
)

// Limits defines constraints applied while a tree is decoded, to bound the
// resources consumed by hostile or malformed input. A zero field means the
// corresponding dimension is unbounded.
type Limits struct {
	// MaxDepth is the maximum number of simultaneously open elements.
	MaxDepth int

	// MaxChildren is the maximum number of children (attributes and
	// elements) of a single element.
	MaxChildren int

	// MaxValues is the maximum number of values of a single attribute.
	MaxValues int

	// MaxNameLen is the maximum length of an element title or attribute
	// name in characters (not bytes).
	MaxNameLen int
}

// DefaultLimits returns limits that every reasonable document satisfies.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:    DefaultMaxDepth,
		MaxChildren: DefaultMaxChildren,
		MaxValues:   DefaultMaxValues,
		MaxNameLen:  DefaultMaxNameLen,
	}
}

// RelaxedLimits returns permissive limits for large generated documents.
// Name length is left unbounded.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:    RelaxedMaxDepth,
		MaxChildren: RelaxedMaxChildren,
		MaxValues:   RelaxedMaxValues,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:    StrictMaxDepth,
		MaxChildren: StrictMaxChildren,
		MaxValues:   StrictMaxValues,
		MaxNameLen:  StrictMaxNameLen,
	}
}

// LimitError represents a limit validation failure.
type LimitError struct {
	Limit   string // Name of the limit that was exceeded
	Current int    // Offending value
	Maximum int    // Maximum allowed value
	Name    string // Element or attribute involved, if any
}

func (e *LimitError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("limit exceeded at %q: %s is %d (max %d)",
			e.Name, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// CheckDepth validates the number of open elements.
func (l *Limits) CheckDepth(depth int) error {
	if l == nil || l.MaxDepth <= 0 || depth <= l.MaxDepth {
		return nil
	}
	return &LimitError{Limit: "MaxDepth", Current: depth, Maximum: l.MaxDepth}
}

// CheckName validates the length of a title or attribute name.
func (l *Limits) CheckName(name string) error {
	if l == nil || l.MaxNameLen <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(name); n > l.MaxNameLen {
		return &LimitError{Limit: "MaxNameLen", Current: n, Maximum: l.MaxNameLen, Name: name}
	}
	return nil
}

// CheckChildren validates that e can accept one more child.
func (l *Limits) CheckChildren(e *Element) error {
	if l == nil || l.MaxChildren <= 0 {
		return nil
	}
	if n := len(e.Children) + 1; n > l.MaxChildren {
		return &LimitError{Limit: "MaxChildren", Current: n, Maximum: l.MaxChildren, Name: e.Title}
	}
	return nil
}

// CheckAttribute validates an attribute before it is attached.
func (l *Limits) CheckAttribute(name string, values []Cell) error {
	if err := l.CheckName(name); err != nil {
		return err
	}
	if l == nil || l.MaxValues <= 0 || len(values) <= l.MaxValues {
		return nil
	}
	return &LimitError{Limit: "MaxValues", Current: len(values), Maximum: l.MaxValues, Name: name}
}

// Validate checks a complete tree against the limits, for trees built by
// hand rather than decoded.
func (l *Limits) Validate(root *Element) error {
	return Walk(root, func(n Node, depth int) error {
		switch n := n.(type) {
		case *Element:
			if l != nil && l.MaxDepth > 0 && depth+1 > l.MaxDepth {
				return &LimitError{Limit: "MaxDepth", Current: depth + 1, Maximum: l.MaxDepth, Name: n.Title}
			}
			if err := l.CheckName(n.Title); err != nil {
				return err
			}
			if l != nil && l.MaxChildren > 0 && len(n.Children) > l.MaxChildren {
				return &LimitError{Limit: "MaxChildren", Current: len(n.Children), Maximum: l.MaxChildren, Name: n.Title}
			}
		case *Attribute:
			return l.CheckAttribute(n.Key, n.Values)
		}
		return nil
	})
}
