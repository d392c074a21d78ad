// Package registry provides an append-only, insertion-ordered mapping from
// identifiers to values, addressed by dense integer handles.
package registry

import (
	"errors"
	"math"

	"github.com/deepnoodle-ai/arbor/ident"
)

// ErrEntryAlreadyExists is returned by Insert when the name is taken.
var ErrEntryAlreadyExists = errors.New("registry: entry already exists")

// ErrFull is returned by Insert when no more handles can be issued.
var ErrFull = errors.New("registry: too many entries")

// Handle addresses a registered value. Handles are positions: the first
// successful Insert returns handle 0, the next returns 1, and so on.
// Clear invalidates every handle issued before it.
type Handle uint32

// Registry stores values in insertion order and resolves names to handles.
// Entries cannot be removed individually; the registry only grows, or is
// emptied wholesale with Clear.
//
// A Registry is not safe for concurrent mutation. The intended pattern is
// to populate it up front and share it read-only afterward.
type Registry[T any] struct {
	entries []entry[T]
	byName  map[ident.Identifier]Handle
}

type entry[T any] struct {
	name  ident.Identifier
	value T
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return WithCapacity[T](0)
}

// WithCapacity returns an empty registry with room for n entries.
func WithCapacity[T any](n int) *Registry[T] {
	return &Registry[T]{
		entries: make([]entry[T], 0, n),
		byName:  make(map[ident.Identifier]Handle, n),
	}
}

// Insert adds a value under the given name and returns its handle. If the
// name is already registered, ErrEntryAlreadyExists is returned and the
// registry is unchanged.
func (r *Registry[T]) Insert(name ident.Identifier, value T) (Handle, error) {
	if _, ok := r.byName[name]; ok {
		return 0, ErrEntryAlreadyExists
	}
	if uint64(len(r.entries)) >= math.MaxUint32 {
		return 0, ErrFull
	}
	h := Handle(len(r.entries))
	r.entries = append(r.entries, entry[T]{name: name, value: value})
	r.byName[name] = h
	return h, nil
}

// Lookup returns the handle registered under name.
func (r *Registry[T]) Lookup(name ident.Identifier) (Handle, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// Get returns the value addressed by h.
func (r *Registry[T]) Get(h Handle) (T, bool) {
	if int(h) >= len(r.entries) {
		var zero T
		return zero, false
	}
	return r.entries[h].value, true
}

// GetByName returns the value registered under name.
func (r *Registry[T]) GetByName(name ident.Identifier) (T, bool) {
	h, ok := r.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return r.entries[h].value, true
}

// Contains reports whether name is registered.
func (r *Registry[T]) Contains(name ident.Identifier) bool {
	_, ok := r.byName[name]
	return ok
}

// Key returns the name registered at handle h. Useful when turning a
// handle from compiled output back into something readable.
func (r *Registry[T]) Key(h Handle) (ident.Identifier, bool) {
	if int(h) >= len(r.entries) {
		return ident.Identifier{}, false
	}
	return r.entries[h].name, true
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Clear removes every entry. Handles issued before the call are invalid
// afterward: Get and Key report false for them.
func (r *Registry[T]) Clear() {
	r.entries = r.entries[:0]
	clear(r.byName)
}
