// Package ast provides the in-memory tree produced by decoding an SML
// document.
//
// An SML document is a single root Element. Each Element has a title and an
// ordered list of children; a child is either a nested Element or an
// Attribute. An Attribute has a name and one or more values, and each value
// is a Cell: a string that may be null.
//
// # Core Types
//
// Cell is an optional string. Row is the ordered list of cells produced for
// one line of WSV text. Element and Attribute both implement Node, so the
// children of an element can be iterated in document order with a type
// switch.
//
// # Queries
//
// Titles and names in SML are matched case-insensitively. Element.Element,
// Element.Elements and Element.Attribute look up direct children by name;
// Element.Find resolves a slash-separated path:
//
//	video := root.Element("Video")
//	res := root.Find("Video/Resolution") // *Attribute or *Element
//
// Walk visits every node depth-first:
//
//	err := ast.Walk(root, func(n ast.Node, depth int) error {
//		if e, ok := n.(*ast.Element); ok && e.Title == "Secrets" {
//			return ast.SkipChildren
//		}
//		return nil
//	})
//
// # Validation
//
// Limits bounds the shape of a tree while it is being decoded. Three presets
// are available: DefaultLimits covers any hand-written or generated document,
// RelaxedLimits allows very large machine-generated trees, and StrictLimits
// provides conservative bounds for untrusted input. A nil *Limits means no
// bounds at all.
package ast
