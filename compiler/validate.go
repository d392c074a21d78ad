package compiler

import (
	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/behavior"
)

// Validate checks a tree for the problems Compile would reject it for,
// without emitting any code, and aggregates every finding instead of
// stopping at the first. Unlike Compile it also resolves names inside
// subtrees that pruning would discard, so it can surface mistakes that
// compilation silently skips.
//
// A nil return means Compile will succeed against the same context.
func Validate[Args any](node ast.Node, ctx *behavior.Context[Args]) error {
	var errs *multierror.Error
	add := func(err error) { errs = multierror.Append(errs, err) }

	if ctx == nil {
		add(ErrNonExistentContext)
	}

	root, isRoot := node.(*ast.Root)
	body := node
	if isRoot {
		body = root.Child
	} else {
		add(ErrInitialNonRootNode)
	}

	if body != nil {
		ast.Inspect(body, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.Root:
				add(ErrRootNodeInTree)
			case *ast.Decorator:
				if ctx != nil {
					if _, ok := ctx.DecoratorHandle(n.Name); !ok {
						add(UnknownDecoratorError{Name: n.Name})
					}
				}
			case *ast.Executor:
				if ctx != nil {
					if _, ok := ctx.ExecutorHandle(n.Name); !ok {
						add(UnknownExecutorError{Name: n.Name})
					}
				}
			}
			return true
		})
	}

	if isRoot {
		if top, err := prune(body); err == nil && top == nil {
			add(ErrNoNodes)
		}
	}
	return errs.ErrorOrNil()
}
