package compiler

import (
	"errors"
	"fmt"

	"github.com/deepnoodle-ai/arbor/ident"
)

var (
	// ErrNoNodes indicates the tree contains nothing executable once
	// empty composites are pruned away.
	ErrNoNodes = errors.New("compile error: tree contains no executable nodes")

	// ErrInitialNonRootNode indicates the top of the tree is not a root
	// node.
	ErrInitialNonRootNode = errors.New("compile error: top node must be a root node")

	// ErrRootNodeInTree indicates a root node was found below the top of
	// the tree.
	ErrRootNodeInTree = errors.New("compile error: root node nested inside the tree")

	// ErrNonExistentContext indicates the context was collected before
	// compilation ran.
	ErrNonExistentContext = errors.New("compile error: context is no longer alive")

	// ErrTooManyChildNodes indicates a composite has more children than
	// the operand field can express.
	ErrTooManyChildNodes = errors.New("compile error: too many child nodes")
)

// UnknownExecutorError indicates the tree references an executor name that
// is not registered in the context.
type UnknownExecutorError struct {
	Name ident.Identifier
}

func (e UnknownExecutorError) Error() string {
	return fmt.Sprintf("compile error: unknown executor %q", e.Name.String())
}

// UnknownDecoratorError indicates the tree references a decorator name
// that is not registered in the context.
type UnknownDecoratorError struct {
	Name ident.Identifier
}

func (e UnknownDecoratorError) Error() string {
	return fmt.Sprintf("compile error: unknown decorator %q", e.Name.String())
}

// UnencodableHandleError indicates a registry handle is too large to fit
// in the operand field of an instruction word.
type UnencodableHandleError struct {
	Name          ident.Identifier
	RegistryIndex uint64
}

func (e UnencodableHandleError) Error() string {
	return fmt.Sprintf("compile error: handle %d for %q exceeds the operand range",
		e.RegistryIndex, e.Name.String())
}
