// Package behavior defines the callable surface a compiled tree executes
// against: outcomes, executor and decorator functions, and the Context
// that registers them under namespaced identifiers.
package behavior

import "fmt"

// Outcome is the result of running a behavior.
type Outcome uint8

const (
	// Failure indicates the behavior did not achieve its goal.
	Failure Outcome = 0

	// Success indicates the behavior achieved its goal.
	Success Outcome = 1

	// Running indicates the behavior needs more ticks to finish.
	Running Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Success:
		return "success"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// ExecutorFunc is a leaf behavior. It receives the world state and reports
// how the behavior went.
type ExecutorFunc[Args any] func(args Args) Outcome

// DecoratorFunc transforms the outcome of a wrapped behavior. The wrapped
// behavior's result comes first, the world state second.
type DecoratorFunc[Args any] func(result Outcome, args Args) Outcome
