package bytecode

import "github.com/deepnoodle-ai/arbor/op"

// Stats contains statistics about a compiled tree. This is useful for
// auditing trees before handing them to an engine.
type Stats struct {
	// NodeCount is the number of encoded nodes.
	NodeCount int

	// WordCount is the total number of instruction words.
	WordCount int

	// CompositeCount is the number of sequence, fallback, and parallel
	// nodes.
	CompositeCount int

	// ExecutorRefs is the number of executor leaves.
	ExecutorRefs int

	// DecoratorRefs is the number of decorator nodes.
	DecoratorRefs int

	// MaxOffset is the largest child offset in the code, zero for a tree
	// of a single leaf.
	MaxOffset op.Word
}

// Stats computes statistics for the tree.
func (t *Tree[Args]) Stats() Stats {
	stats := Stats{
		NodeCount: t.nodeCount,
		WordCount: len(t.code),
	}
	for _, instr := range t.Instructions() {
		switch instr.Kind {
		case op.Sequence, op.Fallback, op.Parallel:
			stats.CompositeCount++
		case op.Decorator:
			stats.DecoratorRefs++
		case op.Executor:
			stats.ExecutorRefs++
		}
		if instr.Offset > stats.MaxOffset {
			stats.MaxOffset = instr.Offset
		}
	}
	return stats
}
