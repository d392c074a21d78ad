package arbor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/behavior"
	"github.com/deepnoodle-ai/arbor/compiler"
	"github.com/deepnoodle-ai/arbor/exprfn"
	"github.com/deepnoodle-ai/arbor/ident"
	"github.com/deepnoodle-ai/arbor/op"
	"github.com/deepnoodle-ai/arbor/registry"
)

type world struct {
	visited []string
}

func newTestContext(t *testing.T) *behavior.Context[*world] {
	t.Helper()
	ctx := behavior.NewContext[*world]()
	visit := func(name string, out behavior.Outcome) behavior.ExecutorFunc[*world] {
		return func(w *world) behavior.Outcome {
			w.visited = append(w.visited, name)
			return out
		}
	}
	for _, e := range []struct {
		name string
		out  behavior.Outcome
	}{
		{"idle", behavior.Success},
		{"seek", behavior.Running},
		{"flee", behavior.Failure},
	} {
		_, err := ctx.RegisterExecutor(e.name, visit(e.name, e.out))
		require.NoError(t, err)
	}
	_, err := ctx.RegisterDecorator("invert", func(result behavior.Outcome, _ *world) behavior.Outcome {
		switch result {
		case behavior.Success:
			return behavior.Failure
		case behavior.Failure:
			return behavior.Success
		default:
			return result
		}
	})
	require.NoError(t, err)
	return ctx
}

func TestCompile(t *testing.T) {
	ctx := newTestContext(t)
	tree, err := Compile(ast.NewRoot(ast.NewSequence(
		ast.NewExecutor("idle"),
		ast.NewDecorator("invert", ast.NewExecutor("flee")),
	)), ctx)
	require.NoError(t, err)
	require.Equal(t, 4, tree.NodeCount())
	require.Equal(t, 8, tree.WordCount())

	var kinds []op.Kind
	for _, in := range tree.Instructions() {
		kinds = append(kinds, in.Kind)
	}
	require.Equal(t, []op.Kind{op.Sequence, op.Executor, op.Decorator, op.Executor}, kinds)

	// The handles baked into the words dispatch through the context.
	w := &world{}
	for _, in := range tree.Instructions() {
		if in.Kind == op.Executor {
			ctx.CallExecutor(registry.Handle(in.Operand), w)
		}
	}
	require.Equal(t, []string{"idle", "flee"}, w.visited)
}

func TestCompileErrors(t *testing.T) {
	ctx := newTestContext(t)

	_, err := Compile(ast.NewExecutor("idle"), ctx)
	require.ErrorIs(t, err, compiler.ErrInitialNonRootNode)

	_, err = Compile(ast.NewRoot(ast.NewExecutor("warp")), ctx)
	var unknown compiler.UnknownExecutorError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "game:warp", unknown.Name.String())
}

func TestValidate(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, Validate(ast.NewRoot(ast.NewExecutor("idle")), ctx))

	err := Validate(ast.NewRoot(ast.NewSequence(
		ast.NewExecutor("idle"),
		ast.NewExecutor("warp"),
		ast.NewRoot(ast.NewExecutor("seek")),
	)), ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, compiler.UnknownExecutorError{Name: ident.New("game", "warp")})
	require.ErrorIs(t, err, compiler.ErrRootNodeInTree)
}

func TestCompileWithExpressionBehaviors(t *testing.T) {
	ctx := behavior.NewContext[map[string]any]()

	hurt, err := exprfn.Executor[map[string]any]("args.health < 30")
	require.NoError(t, err)
	_, err = ctx.RegisterExecutor("health:hurt", hurt)
	require.NoError(t, err)

	tree, err := Compile(ast.NewRoot(ast.NewFallback(ast.NewExecutor("health:hurt"))), ctx)
	require.NoError(t, err)

	var leaf registry.Handle
	for _, in := range tree.Instructions() {
		if in.Kind == op.Executor {
			leaf = registry.Handle(in.Operand)
		}
	}
	require.Equal(t, behavior.Success, ctx.CallExecutor(leaf, map[string]any{"health": 10}))
	require.Equal(t, behavior.Failure, ctx.CallExecutor(leaf, map[string]any{"health": 80}))
}
