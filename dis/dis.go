// Package dis supports analysis of compiled behavior trees by
// disassembling them. It works with the kinds defined in the op package
// and resolves callable handles back to their registered names through
// the tree's context.
package dis

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/arbor/bytecode"
	"github.com/deepnoodle-ai/arbor/internal/table"
	"github.com/deepnoodle-ai/arbor/op"
	"github.com/deepnoodle-ai/arbor/registry"
)

// Instruction represents a single decoded node pair and its annotation.
type Instruction struct {
	Index      int
	Name       string
	Kind       op.Kind
	Operand    op.Word
	Offset     op.Word
	Annotation string
}

// Disassemble returns a parsed representation of the given tree. Callable
// handles are annotated with their registered names when the tree carries
// a context; a handle with no registration is reported as an error, since
// it means the tree and context no longer match. A tree without a context
// disassembles with empty annotations.
func Disassemble[Args any](tree *bytecode.Tree[Args]) ([]Instruction, error) {
	ctx := tree.Context()
	var instructions []Instruction
	for _, instr := range tree.Instructions() {
		info := op.GetInfo(instr.Kind)
		if info.Name == "" {
			return nil, fmt.Errorf("dis error: invalid kind %d at word %d", uint8(instr.Kind), instr.Index)
		}
		var annotation string
		switch instr.Kind {
		case op.Decorator:
			if ctx != nil {
				name, ok := ctx.DecoratorKey(registry.Handle(instr.Operand))
				if !ok {
					return nil, fmt.Errorf("dis error: decorator handle out of range: %d", instr.Operand)
				}
				annotation = name.String()
			}
		case op.Executor:
			if ctx != nil {
				name, ok := ctx.ExecutorKey(registry.Handle(instr.Operand))
				if !ok {
					return nil, fmt.Errorf("dis error: executor handle out of range: %d", instr.Operand)
				}
				annotation = name.String()
			}
		}
		instructions = append(instructions, Instruction{
			Index:      instr.Index,
			Name:       info.Name,
			Kind:       instr.Kind,
			Operand:    instr.Operand,
			Offset:     instr.Offset,
			Annotation: annotation,
		})
	}
	return instructions, nil
}

// Print writes a string representation of the given instructions to the
// given writer.
func Print(instructions []Instruction, writer io.Writer) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	var lines [][]string
	for _, instr := range instructions {
		info := instr.Annotation
		if info != "" {
			info = cyan.Sprint(info)
		}
		lines = append(lines, []string{
			fmt.Sprintf("%d", instr.Index),
			bold.Sprint(instr.Name),
			fmt.Sprintf("%d", instr.Operand),
			formatOffset(instr.Offset),
			info,
		})
	}

	table.NewTable(writer).
		WithHeader([]string{"WORD", "KIND", "OPERAND", "OFFSET", "INFO"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignRight,
			table.AlignLeft,
			table.AlignRight,
			table.AlignRight,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(lines).
		Render()
}

func formatOffset(offset op.Word) string {
	if offset == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", offset)
}
