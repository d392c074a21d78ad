package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/ident"
	"github.com/deepnoodle-ai/arbor/op"
	"github.com/deepnoodle-ai/arbor/registry"
)

func TestPruneExecutorSurvives(t *testing.T) {
	p, err := prune(ast.NewExecutor("idle"))
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, op.Executor, p.kind)
	require.Equal(t, ident.New("game", "idle"), p.name)
	require.Empty(t, p.children)
}

func TestPruneNil(t *testing.T) {
	p, err := prune(nil)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestPruneEmptyComposites(t *testing.T) {
	for _, node := range []ast.Node{
		ast.NewSequence(),
		ast.NewFallback(),
		ast.NewParallel(),
	} {
		p, err := prune(node)
		require.NoError(t, err)
		require.Nil(t, p)
	}
}

func TestPruneCascade(t *testing.T) {
	node := ast.NewSequence(
		ast.NewSequence(),
		ast.NewFallback(ast.NewParallel()),
	)
	p, err := prune(node)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestPruneDecoratorWithVanishedChild(t *testing.T) {
	p, err := prune(ast.NewDecorator("invert", ast.NewSequence()))
	require.NoError(t, err)
	require.Nil(t, p)

	p, err = prune(ast.NewDecorator("invert", nil))
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestPruneKeepsSurvivors(t *testing.T) {
	node := ast.NewFallback(
		ast.NewSequence(),
		ast.NewExecutor("idle"),
		ast.NewDecorator("invert", ast.NewParallel()),
		ast.NewExecutor("seek"),
	)
	p, err := prune(node)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, op.Fallback, p.kind)
	require.Len(t, p.children, 2)
	require.Equal(t, "game:idle", p.children[0].name.String())
	require.Equal(t, "game:seek", p.children[1].name.String())
}

func TestPruneNestedRoot(t *testing.T) {
	_, err := prune(ast.NewSequence(ast.NewRoot(ast.NewExecutor("idle"))))
	require.ErrorIs(t, err, ErrRootNodeInTree)

	// A nested root is rejected even when its surroundings would prune
	// away.
	_, err = prune(ast.NewSequence(ast.NewSequence(ast.NewRoot(nil))))
	require.ErrorIs(t, err, ErrRootNodeInTree)
}

func TestPrunedCount(t *testing.T) {
	p, err := prune(ast.NewSequence(
		ast.NewExecutor("a"),
		ast.NewDecorator("d", ast.NewExecutor("b")),
	))
	require.NoError(t, err)
	require.Equal(t, 4, p.count())
}

func TestChildCountWordLimit(t *testing.T) {
	w, err := childCountWord(op.Sequence, int(op.MaxOperand))
	require.NoError(t, err)
	require.Equal(t, op.MaxOperand, op.OperandOf(w))
	require.Equal(t, op.Sequence, op.KindOf(w))

	_, err = childCountWord(op.Sequence, int(op.MaxOperand)+1)
	require.ErrorIs(t, err, ErrTooManyChildNodes)
}

func TestHandleWordLimit(t *testing.T) {
	name := ident.New("game", "crowded")

	w, err := handleWord(op.Executor, name, registry.Handle(op.MaxOperand))
	require.NoError(t, err)
	require.Equal(t, op.MaxOperand, op.OperandOf(w))

	_, err = handleWord(op.Executor, name, registry.Handle(op.MaxOperand)+1)
	var unencodable UnencodableHandleError
	require.ErrorAs(t, err, &unencodable)
	require.Equal(t, name, unencodable.Name)
	require.Equal(t, uint64(op.MaxOperand)+1, unencodable.RegistryIndex)
}
