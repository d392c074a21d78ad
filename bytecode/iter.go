package bytecode

import (
	"iter"

	"github.com/deepnoodle-ai/arbor/op"
)

// Instruction is one decoded node pair from a compiled tree.
type Instruction struct {
	// Index is the position of the pair's first word within the code.
	Index int

	// Kind is the node kind tag.
	Kind op.Kind

	// Operand is the kind-specific operand field: the child count for
	// composites, or the registry handle for decorators and executors.
	Operand op.Word

	// Offset is the absolute word offset of the node's first child pair,
	// or zero when the node has no children.
	Offset op.Word
}

// Instructions returns an iterator over the decoded node pairs of the
// tree, keyed by node ordinal in emission order.
func (t *Tree[Args]) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(int, Instruction) bool) {
		node := 0
		for i := 0; i+1 < len(t.code); i += op.NodeWords {
			instr := Instruction{
				Index:   i,
				Kind:    op.KindOf(t.code[i]),
				Operand: op.OperandOf(t.code[i]),
				Offset:  t.code[i+1],
			}
			if !yield(node, instr) {
				return
			}
			node++
		}
	}
}
