package bytecode

import (
	"github.com/deepnoodle-ai/arbor/behavior"
	"github.com/deepnoodle-ai/arbor/op"
)

// Tree is a compiled behavior tree. It is immutable after creation and
// safe for concurrent use.
//
// The code is laid out level by level: the root's pair comes first and
// every node's children occupy one contiguous run of pairs at the word
// offset recorded in the parent's second word.
type Tree[Args any] struct {
	code      []op.Word
	nodeCount int
	ctx       *behavior.Context[Args]
}

// Params contains parameters for creating a new Tree.
type Params[Args any] struct {
	// Code is the flat instruction stream, two words per node.
	Code []op.Word

	// NodeCount is the number of nodes encoded in Code.
	NodeCount int

	// Context is the context the tree was compiled against. The tree
	// holds it strongly, keeping its callables alive for the tree's
	// lifetime.
	Context *behavior.Context[Args]
}

// New creates a new immutable Tree from the given parameters. The code
// slice is copied, so the caller keeps ownership of its argument.
func New[Args any](params Params[Args]) *Tree[Args] {
	var code []op.Word
	if len(params.Code) > 0 {
		code = make([]op.Word, len(params.Code))
		copy(code, params.Code)
	}
	return &Tree[Args]{
		code:      code,
		nodeCount: params.NodeCount,
		ctx:       params.Context,
	}
}

// WordAt returns the instruction word at index i. It panics if i is out
// of range, like indexing a slice.
func (t *Tree[Args]) WordAt(i int) op.Word {
	return t.code[i]
}

// WordCount returns the number of words in the code.
func (t *Tree[Args]) WordCount() int {
	return len(t.code)
}

// NodeCount returns the number of nodes encoded in the tree.
func (t *Tree[Args]) NodeCount() int {
	return t.nodeCount
}

// Words returns a copy of the instruction stream.
func (t *Tree[Args]) Words() []op.Word {
	code := make([]op.Word, len(t.code))
	copy(code, t.code)
	return code
}

// Context returns the context the tree was compiled against.
func (t *Tree[Args]) Context() *behavior.Context[Args] {
	return t.ctx
}
