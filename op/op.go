// Package op defines the instruction kinds and word encoding used by the
// arbor compiler.
//
// A compiled tree is a flat sequence of 32-bit words, two per node. The
// first word of a pair carries the node kind in its high byte and a
// kind-specific operand in the low 24 bits. The second word holds the
// absolute offset of the node's first child pair, or zero for a node with
// no children.
package op

import "fmt"

// Word is a single 32-bit instruction cell.
type Word uint32

// Kind identifies the type of a behavior-tree node in encoded form.
type Kind uint8

const (
	Invalid Kind = 0

	Sequence  Kind = 1
	Fallback  Kind = 2
	Parallel  Kind = 3
	Decorator Kind = 4
	Executor  Kind = 5
)

// Layout of the first word in each instruction pair.
const (
	// KindShift is the bit position of the kind tag within a word.
	KindShift = 24

	// OperandMask selects the operand field of a word.
	OperandMask Word = 0x00FFFFFF

	// MaxOperand is the largest value the operand field can carry.
	MaxOperand Word = OperandMask

	// NodeWords is the number of words each node occupies.
	NodeWords = 2
)

// Encode packs a kind and an operand into one instruction word. Operands
// above MaxOperand would bleed into the kind field, so callers must range
// check before encoding.
func Encode(k Kind, operand Word) Word {
	return Word(k)<<KindShift | operand&OperandMask
}

// KindOf extracts the kind tag from an instruction word.
func KindOf(w Word) Kind {
	return Kind(w >> KindShift)
}

// OperandOf extracts the operand field from an instruction word.
func OperandOf(w Word) Word {
	return w & OperandMask
}

func (k Kind) String() string {
	if info := GetInfo(k); info.Name != "" {
		return info.Name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined node kinds.
func (k Kind) Valid() bool {
	return k >= Sequence && k <= Executor
}

// Info contains information about an instruction kind.
type Info struct {
	Kind        Kind
	Name        string
	OperandName string
}

var infos = make([]Info, 256)

func init() {
	type kindInfo struct {
		kind    Kind
		name    string
		operand string
	}
	kinds := []kindInfo{
		{Sequence, "sequence", "children"},
		{Fallback, "fallback", "children"},
		{Parallel, "parallel", "children"},
		{Decorator, "decorator", "decorator"},
		{Executor, "executor", "executor"},
	}
	for _, k := range kinds {
		infos[k.kind] = Info{
			Kind:        k.kind,
			Name:        k.name,
			OperandName: k.operand,
		}
	}
}

// GetInfo returns information about the given instruction kind.
func GetInfo(k Kind) Info {
	return infos[k]
}
