// Package bytecode provides the immutable representation of compiled
// behavior trees.
//
// A [Tree] is the output of compilation: a flat sequence of 32-bit words,
// two per node, paired with the [behavior.Context] the tree was compiled
// against. Trees are created once and may then be shared freely across
// goroutines.
//
// All fields are unexported and there are no mutation methods. The
// constructor copies the code slice so later changes by the caller cannot
// leak in, and [Tree.Words] returns a fresh copy for the same reason.
// Use [Tree.WordAt] for cheap point access and [Tree.Instructions] to
// iterate decoded node pairs.
package bytecode
