// Package ast defines the in-memory representation of behavior trees.
package ast

import (
	"strings"

	"github.com/deepnoodle-ai/arbor/ident"
)

// Node represents a single behavior-tree node. All nodes render a compact
// s-expression form via String, intended for debugging and test output
// rather than round-tripping.
type Node interface {
	// String returns a human friendly representation of the node and its
	// children.
	String() string

	behaviorNode()
}

// Root is the entry point of a tree. A Root may appear only at the top of
// the structure handed to the compiler; nested roots are rejected there.
type Root struct {
	Child Node
}

// Sequence runs its children in order until one of them fails.
type Sequence struct {
	Children []Node
}

// Fallback runs its children in order until one of them succeeds.
type Fallback struct {
	Children []Node
}

// Parallel runs all of its children concurrently.
type Parallel struct {
	Children []Node
}

// Decorator wraps a single child and transforms its outcome through the
// named decorator callable.
type Decorator struct {
	Name  ident.Identifier
	Child Node
}

// Executor is a leaf that invokes the named executor callable.
type Executor struct {
	Name ident.Identifier
}

func (n *Root) behaviorNode()      {}
func (n *Sequence) behaviorNode()  {}
func (n *Fallback) behaviorNode()  {}
func (n *Parallel) behaviorNode()  {}
func (n *Decorator) behaviorNode() {}
func (n *Executor) behaviorNode()  {}

// NewRoot returns a Root wrapping the given child.
func NewRoot(child Node) *Root {
	return &Root{Child: child}
}

// NewSequence returns a Sequence over the given children.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{Children: children}
}

// NewFallback returns a Fallback over the given children.
func NewFallback(children ...Node) *Fallback {
	return &Fallback{Children: children}
}

// NewParallel returns a Parallel over the given children.
func NewParallel(children ...Node) *Parallel {
	return &Parallel{Children: children}
}

// NewDecorator returns a Decorator with the given name, parsed with
// ident.Parse, wrapping child.
func NewDecorator(name string, child Node) *Decorator {
	return &Decorator{Name: ident.Parse(name), Child: child}
}

// NewExecutor returns an Executor leaf with the given name, parsed with
// ident.Parse.
func NewExecutor(name string) *Executor {
	return &Executor{Name: ident.Parse(name)}
}

func (n *Root) String() string {
	if n.Child == nil {
		return "(root)"
	}
	return "(root " + n.Child.String() + ")"
}

func (n *Sequence) String() string { return sexpr("sequence", n.Children) }

func (n *Fallback) String() string { return sexpr("fallback", n.Children) }

func (n *Parallel) String() string { return sexpr("parallel", n.Children) }

func (n *Decorator) String() string {
	var out strings.Builder
	out.WriteString("(decorator ")
	out.WriteString(n.Name.String())
	if n.Child != nil {
		out.WriteString(" ")
		out.WriteString(n.Child.String())
	}
	out.WriteString(")")
	return out.String()
}

func (n *Executor) String() string {
	return "(executor " + n.Name.String() + ")"
}

func sexpr(name string, children []Node) string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(name)
	for _, child := range children {
		if child == nil {
			continue
		}
		out.WriteString(" ")
		out.WriteString(child.String())
	}
	out.WriteString(")")
	return out.String()
}
