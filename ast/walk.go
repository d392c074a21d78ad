package ast

import "iter"

// Visitor defines the interface for tree traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a behavior tree in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Root:
		if n.Child != nil {
			Walk(v, n.Child)
		}
	case *Sequence:
		for _, child := range n.Children {
			if child != nil {
				Walk(v, child)
			}
		}
	case *Fallback:
		for _, child := range n.Children {
			if child != nil {
				Walk(v, child)
			}
		}
	case *Parallel:
		for _, child := range n.Children {
			if child != nil {
				Walk(v, child)
			}
		}
	case *Decorator:
		if n.Child != nil {
			Walk(v, n.Child)
		}
	case *Executor:
		// No children
	}
}

// Inspect traverses a behavior tree in depth-first order. It calls f(node)
// for each node; if f returns true, Inspect invokes f recursively for each
// of the non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the tree rooted at
// node in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			switch node := n.(type) {
			case *Root:
				if node.Child != nil && !visit(node.Child) {
					return false
				}
			case *Sequence:
				for _, child := range node.Children {
					if child != nil && !visit(child) {
						return false
					}
				}
			case *Fallback:
				for _, child := range node.Children {
					if child != nil && !visit(child) {
						return false
					}
				}
			case *Parallel:
				for _, child := range node.Children {
					if child != nil && !visit(child) {
						return false
					}
				}
			case *Decorator:
				if node.Child != nil && !visit(node.Child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
