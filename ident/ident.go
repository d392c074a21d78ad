// Package ident provides the namespaced identifiers used to name executors
// and decorators, written as "scope:id".
package ident

import "strings"

// DefaultScope is assumed when a raw identifier carries no scope prefix.
const DefaultScope = "game"

const (
	divider   = ":"
	unknownID = "unknown"
)

// Identifier is a two-part name with a scope and an id, rendered in the
// form "scope:id". Identifiers are comparable and may be used as map keys.
type Identifier struct {
	scope string
	id    string
}

// New builds an Identifier from explicit parts, without any parsing.
func New(scope, id string) Identifier {
	return Identifier{scope: scope, id: id}
}

// Parse converts a raw string into an Identifier. One leading divider is
// ignored. Input without a divider is an id in DefaultScope. Otherwise the
// first segment is the scope and the remaining segments are joined with
// underscores to form the id. An empty id becomes "unknown".
//
//	Parse("vision:scan")  // vision:scan
//	Parse("scan")         // game:scan
//	Parse(":scan")        // game:scan
//	Parse("vision:")      // vision:unknown
//	Parse("a:b:c")        // a:b_c
//
// Parse never fails; every input maps to some Identifier.
func Parse(raw string) Identifier {
	raw = strings.TrimPrefix(raw, divider)
	scope, rest, found := strings.Cut(raw, divider)
	if !found {
		return Identifier{scope: DefaultScope, id: orUnknown(scope)}
	}
	id := strings.ReplaceAll(rest, divider, "_")
	return Identifier{scope: scope, id: orUnknown(id)}
}

func orUnknown(id string) string {
	if id == "" {
		return unknownID
	}
	return id
}

// Scope returns the scope part of the identifier.
func (i Identifier) Scope() string { return i.scope }

// ID returns the id part of the identifier.
func (i Identifier) ID() string { return i.id }

// String returns the canonical "scope:id" form, which parses back to the
// same value whenever scope and id are themselves divider free.
func (i Identifier) String() string {
	return i.scope + divider + i.id
}
