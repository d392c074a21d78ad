// Package exprfn builds behavior callables from expr-lang expressions, so
// hosts can define leaf behaviors as data instead of Go code.
//
// Expressions are compiled once, when the callable is constructed, and
// evaluated on every call with the world state bound to "args". Decorator
// expressions additionally see "result" and the outcome constants
// "failure", "success", and "running".
package exprfn

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/deepnoodle-ai/arbor/behavior"
)

// Executor compiles src into an executor callable. The expression must
// produce a boolean: true maps to Success and false to Failure, and any
// evaluation error maps to Failure.
func Executor[Args any](src string) (behavior.ExecutorFunc[Args], error) {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(args Args) behavior.Outcome {
		out, err := vm.Run(program, map[string]any{"args": args})
		if err != nil {
			return behavior.Failure
		}
		if result, ok := out.(bool); ok && result {
			return behavior.Success
		}
		return behavior.Failure
	}, nil
}

// Decorator compiles src into a decorator callable. The expression may
// produce a boolean, mapped to Success or Failure, or one of the outcome
// constants, returned as is. Any other value, and any evaluation error,
// maps to Failure.
func Decorator[Args any](src string) (behavior.DecoratorFunc[Args], error) {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return func(result behavior.Outcome, args Args) behavior.Outcome {
		env := map[string]any{
			"args":    args,
			"result":  int(result),
			"failure": int(behavior.Failure),
			"success": int(behavior.Success),
			"running": int(behavior.Running),
		}
		out, err := vm.Run(program, env)
		if err != nil {
			return behavior.Failure
		}
		return coerceOutcome(out)
	}, nil
}

func coerceOutcome(v any) behavior.Outcome {
	switch out := v.(type) {
	case bool:
		if out {
			return behavior.Success
		}
		return behavior.Failure
	case int:
		return outcomeFromInt(out)
	case int64:
		return outcomeFromInt(int(out))
	case float64:
		n := int(out)
		if float64(n) == out {
			return outcomeFromInt(n)
		}
		return behavior.Failure
	default:
		return behavior.Failure
	}
}

func outcomeFromInt(n int) behavior.Outcome {
	switch n {
	case int(behavior.Failure), int(behavior.Success), int(behavior.Running):
		return behavior.Outcome(n)
	default:
		return behavior.Failure
	}
}
