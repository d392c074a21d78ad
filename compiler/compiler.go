// Package compiler flattens behavior trees into the corresponding bytecode.
//
// # Layout Strategy
//
// Compilation turns a tree of ast nodes into a flat sequence of 32-bit
// words, two per node: the first word packs the node kind and its operand,
// the second points at the node's children. The stream is emitted in level
// order using a FIFO work queue. Level order gives two guarantees that an
// engine can rely on:
//
//   - The children of any node occupy one contiguous run of word pairs,
//     beginning exactly at the offset recorded in the parent's second word.
//   - Sibling pairs appear in their source order.
//
// The offset can therefore be computed in closed form at the moment a
// parent is emitted: every pair already waiting in the queue emits exactly
// one pair before the parent's children do, so the children land at
//
//	len(code) + len(queue)*op.NodeWords
//
// measured right after the parent's own pair is appended.
//
// # Pruning
//
// A composite with no children cannot be encoded, since its offset would
// point at nothing. Before emission the tree is normalized: empty
// composites are removed, and the removal cascades upward through
// composites whose children all vanish and decorators whose child
// vanishes. Names inside removed subtrees are never resolved, so a stale
// name in a doomed branch does not fail the build. If nothing at all
// survives under the root, compilation fails with ErrNoNodes.
//
// Compilation is all or nothing: on any error no partial output is
// returned, and the input tree is never modified.
package compiler

import (
	"fmt"
	"weak"

	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/behavior"
	"github.com/deepnoodle-ai/arbor/bytecode"
	"github.com/deepnoodle-ai/arbor/ident"
	"github.com/deepnoodle-ai/arbor/op"
	"github.com/deepnoodle-ai/arbor/registry"
)

// Compile compiles the given node, which must be an *ast.Root, against the
// context referenced by ctx and returns an immutable tree.
//
// The context is passed as a weak pointer so that a compiler embedded in a
// long-lived host cannot keep a discarded context alive on its own; the
// caller is expected to hold the strong reference. If the context has been
// collected, Compile fails with ErrNonExistentContext. On success the
// returned tree holds the context strongly.
func Compile[Args any](node ast.Node, ctx weak.Pointer[behavior.Context[Args]]) (*bytecode.Tree[Args], error) {
	root, ok := node.(*ast.Root)
	if !ok {
		return nil, ErrInitialNonRootNode
	}
	strong := ctx.Value()
	if strong == nil {
		return nil, ErrNonExistentContext
	}
	top, err := prune(root.Child)
	if err != nil {
		return nil, err
	}
	if top == nil {
		return nil, ErrNoNodes
	}
	c := &compiler[Args]{
		ctx:  strong,
		code: make([]op.Word, 0, top.count()*op.NodeWords),
	}
	if err := c.emit(top); err != nil {
		return nil, err
	}
	return bytecode.New(bytecode.Params[Args]{
		Code:      c.code,
		NodeCount: c.nodes,
		Context:   strong,
	}), nil
}

// compiler holds the state of one compilation.
type compiler[Args any] struct {
	ctx   *behavior.Context[Args]
	code  []op.Word
	nodes int
}

// pruned is a node that survived normalization. Composites carry only
// their surviving children, so child counts encoded from this form are
// honest.
type pruned struct {
	kind     op.Kind
	name     ident.Identifier
	children []*pruned
}

func (p *pruned) count() int {
	n := 1
	for _, child := range p.children {
		n += child.count()
	}
	return n
}

// prune normalizes the subtree under node. It returns nil for subtrees
// that vanish entirely. A root node below the top of the tree is the one
// structural error it can report.
func prune(node ast.Node) (*pruned, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case *ast.Root:
		return nil, ErrRootNodeInTree
	case *ast.Sequence:
		return pruneComposite(op.Sequence, n.Children)
	case *ast.Fallback:
		return pruneComposite(op.Fallback, n.Children)
	case *ast.Parallel:
		return pruneComposite(op.Parallel, n.Children)
	case *ast.Decorator:
		child, err := prune(n.Child)
		if err != nil {
			return nil, err
		}
		if child == nil {
			return nil, nil
		}
		return &pruned{kind: op.Decorator, name: n.Name, children: []*pruned{child}}, nil
	case *ast.Executor:
		return &pruned{kind: op.Executor, name: n.Name}, nil
	default:
		return nil, fmt.Errorf("compile error: unsupported node type %T", node)
	}
}

func pruneComposite(kind op.Kind, children []ast.Node) (*pruned, error) {
	kept := make([]*pruned, 0, len(children))
	for _, child := range children {
		p, err := prune(child)
		if err != nil {
			return nil, err
		}
		if p != nil {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return &pruned{kind: kind, children: kept}, nil
}

// emit appends the instruction pairs for the tree rooted at top, level by
// level.
func (c *compiler[Args]) emit(top *pruned) error {
	queue := []*pruned{top}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		instr, err := c.encode(n)
		if err != nil {
			return err
		}
		c.code = append(c.code, instr, 0)
		c.nodes++

		if len(n.children) > 0 {
			// Everything queued ahead of the children emits one pair
			// each, so the child block lands here.
			offset := len(c.code) + len(queue)*op.NodeWords
			c.code[len(c.code)-1] = op.Word(offset)
			queue = append(queue, n.children...)
		}
	}
	return nil
}

// encode produces the first word of a node's pair, resolving callable
// names through the context.
func (c *compiler[Args]) encode(n *pruned) (op.Word, error) {
	switch n.kind {
	case op.Sequence, op.Fallback, op.Parallel:
		return childCountWord(n.kind, len(n.children))
	case op.Decorator:
		h, ok := c.ctx.DecoratorHandle(n.name)
		if !ok {
			return 0, UnknownDecoratorError{Name: n.name}
		}
		return handleWord(n.kind, n.name, h)
	case op.Executor:
		h, ok := c.ctx.ExecutorHandle(n.name)
		if !ok {
			return 0, UnknownExecutorError{Name: n.name}
		}
		return handleWord(n.kind, n.name, h)
	default:
		return 0, fmt.Errorf("compile error: unsupported node kind %s", n.kind)
	}
}

func childCountWord(kind op.Kind, count int) (op.Word, error) {
	if count > int(op.MaxOperand) {
		return 0, ErrTooManyChildNodes
	}
	return op.Encode(kind, op.Word(count)), nil
}

func handleWord(kind op.Kind, name ident.Identifier, h registry.Handle) (op.Word, error) {
	if uint64(h) > uint64(op.MaxOperand) {
		return 0, UnencodableHandleError{Name: name, RegistryIndex: uint64(h)}
	}
	return op.Encode(kind, op.Word(h)), nil
}
