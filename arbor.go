// Package arbor compiles behavior trees into flat bytecode.
//
// A tree is described with the ast package, behaviors are registered on a
// behavior.Context, and Compile lowers the tree into an immutable
// bytecode.Tree whose instruction words reference the registered behaviors
// by handle.
package arbor

import (
	"runtime"
	"weak"

	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/behavior"
	"github.com/deepnoodle-ai/arbor/bytecode"
	"github.com/deepnoodle-ai/arbor/compiler"
)

// Version is the current arbor version.
const Version = "0.1.0"

// Compile lowers a behavior tree into executable bytecode. The returned
// Tree is immutable and safe for concurrent use. The tree must be rooted
// in an *ast.Root and every executor and decorator it names must already
// be registered with ctx.
//
// Example:
//
//	ctx := behavior.NewContext[World]()
//	ctx.RegisterExecutor("idle", idle)
//	tree, err := arbor.Compile(ast.NewRoot(ast.NewExecutor("idle")), ctx)
func Compile[Args any](node ast.Node, ctx *behavior.Context[Args]) (*bytecode.Tree[Args], error) {
	tree, err := compiler.Compile(node, weak.Make(ctx))
	runtime.KeepAlive(ctx)
	return tree, err
}

// Validate reports every problem that would make node uncompilable against
// ctx, joined into a single error. Unlike Compile, which stops at the first
// problem, Validate keeps going and also inspects subtrees that compilation
// would prune away. A nil error means Compile would succeed.
func Validate[Args any](node ast.Node, ctx *behavior.Context[Args]) error {
	return compiler.Validate(node, ctx)
}
