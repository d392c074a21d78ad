package behavior

import (
	"fmt"

	"github.com/deepnoodle-ai/arbor/ident"
	"github.com/deepnoodle-ai/arbor/registry"
)

// Context owns the named executors and decorators that trees are compiled
// against. Args is the world-state type passed to every callable.
//
// A Context is not safe for concurrent mutation. Register everything up
// front; afterward any number of goroutines may compile against it and
// invoke its callables concurrently.
type Context[Args any] struct {
	executors  *registry.Registry[ExecutorFunc[Args]]
	decorators *registry.Registry[DecoratorFunc[Args]]
}

// NewContext returns an empty context.
func NewContext[Args any]() *Context[Args] {
	return NewContextWithCapacity[Args](0)
}

// NewContextWithCapacity returns an empty context with room reserved for
// n executors and n decorators.
func NewContextWithCapacity[Args any](n int) *Context[Args] {
	return &Context[Args]{
		executors:  registry.WithCapacity[ExecutorFunc[Args]](n),
		decorators: registry.WithCapacity[DecoratorFunc[Args]](n),
	}
}

// RegisterExecutor parses name with ident.Parse and registers fn under the
// result. Registering a name twice fails with
// registry.ErrEntryAlreadyExists.
func (c *Context[Args]) RegisterExecutor(name string, fn ExecutorFunc[Args]) (registry.Handle, error) {
	return c.executors.Insert(ident.Parse(name), fn)
}

// RegisterDecorator parses name with ident.Parse and registers fn under
// the result. Registering a name twice fails with
// registry.ErrEntryAlreadyExists.
func (c *Context[Args]) RegisterDecorator(name string, fn DecoratorFunc[Args]) (registry.Handle, error) {
	return c.decorators.Insert(ident.Parse(name), fn)
}

// ExecutorHandle returns the handle of the named executor.
func (c *Context[Args]) ExecutorHandle(name ident.Identifier) (registry.Handle, bool) {
	return c.executors.Lookup(name)
}

// DecoratorHandle returns the handle of the named decorator.
func (c *Context[Args]) DecoratorHandle(name ident.Identifier) (registry.Handle, bool) {
	return c.decorators.Lookup(name)
}

// CallExecutor invokes the executor addressed by h. It panics if h does
// not address a registered executor; passing a stale or fabricated handle
// is a programming error, like indexing a slice out of range.
func (c *Context[Args]) CallExecutor(h registry.Handle, args Args) Outcome {
	fn, ok := c.executors.Get(h)
	if !ok {
		panic(fmt.Sprintf("behavior: no executor registered for handle %d", h))
	}
	return fn(args)
}

// CallDecorator invokes the decorator addressed by h with the wrapped
// behavior's result. The handle contract matches CallExecutor.
func (c *Context[Args]) CallDecorator(h registry.Handle, result Outcome, args Args) Outcome {
	fn, ok := c.decorators.Get(h)
	if !ok {
		panic(fmt.Sprintf("behavior: no decorator registered for handle %d", h))
	}
	return fn(result, args)
}

// ExecutorKey returns the name of the executor at handle h.
func (c *Context[Args]) ExecutorKey(h registry.Handle) (ident.Identifier, bool) {
	return c.executors.Key(h)
}

// DecoratorKey returns the name of the decorator at handle h.
func (c *Context[Args]) DecoratorKey(h registry.Handle) (ident.Identifier, bool) {
	return c.decorators.Key(h)
}

// Executors returns the number of registered executors.
func (c *Context[Args]) Executors() int { return c.executors.Len() }

// Decorators returns the number of registered decorators.
func (c *Context[Args]) Decorators() int { return c.decorators.Len() }

// Clear empties both registries. Handles issued before the call, and any
// trees compiled against them, are invalid afterward.
func (c *Context[Args]) Clear() {
	c.executors.Clear()
	c.decorators.Clear()
}
