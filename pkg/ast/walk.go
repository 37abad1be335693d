package ast

import "errors"

// SkipChildren is returned by a WalkFunc to skip the children of the element
// just visited. It is never returned by Walk.
var SkipChildren = errors.New("ast: skip children")

// WalkFunc is called for every node visited by Walk. depth is 0 for the root
// and increases by one per enclosing element.
type WalkFunc func(n Node, depth int) error

// Walk traverses the tree rooted at root depth-first in document order,
// calling fn for each element and attribute. Traversal is iterative, so
// deeply nested documents cannot exhaust the goroutine stack.
func Walk(root *Element, fn WalkFunc) error {
	if root == nil {
		return nil
	}

	type frame struct {
		node  Node
		depth int
	}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := fn(top.node, top.depth)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}

		elt, ok := top.node.(*Element)
		if !ok {
			continue
		}
		// Push in reverse so the first child is visited next.
		for i := len(elt.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: elt.Children[i], depth: top.depth + 1})
		}
	}
	return nil
}

// Depth returns the nesting depth of the tree: 1 for an element without
// nested elements.
func Depth(root *Element) int {
	maxDepth := 0
	_ = Walk(root, func(n Node, depth int) error {
		if _, ok := n.(*Element); ok && depth+1 > maxDepth {
			maxDepth = depth + 1
		}
		return nil
	})
	return maxDepth
}
