package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/arbor/ident"
)

func TestConstructorsParseNames(t *testing.T) {
	exec := NewExecutor("scan")
	require.Equal(t, ident.New("game", "scan"), exec.Name)

	dec := NewDecorator("vision:invert", exec)
	require.Equal(t, ident.New("vision", "invert"), dec.Name)
	require.Same(t, Node(exec), dec.Child)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "executor",
			node: NewExecutor("idle"),
			want: "(executor game:idle)",
		},
		{
			name: "empty sequence",
			node: NewSequence(),
			want: "(sequence)",
		},
		{
			name: "sequence",
			node: NewSequence(NewExecutor("idle"), NewExecutor("seek")),
			want: "(sequence (executor game:idle) (executor game:seek))",
		},
		{
			name: "fallback",
			node: NewFallback(NewExecutor("flee")),
			want: "(fallback (executor game:flee))",
		},
		{
			name: "parallel",
			node: NewParallel(NewExecutor("a"), NewExecutor("b")),
			want: "(parallel (executor game:a) (executor game:b))",
		},
		{
			name: "decorator",
			node: NewDecorator("invert", NewExecutor("scan")),
			want: "(decorator game:invert (executor game:scan))",
		},
		{
			name: "decorator without child",
			node: NewDecorator("invert", nil),
			want: "(decorator game:invert)",
		},
		{
			name: "empty root",
			node: NewRoot(nil),
			want: "(root)",
		},
		{
			name: "nested",
			node: NewRoot(NewSequence(
				NewExecutor("idle"),
				NewDecorator("invert", NewExecutor("seek")),
			)),
			want: "(root (sequence (executor game:idle) (decorator game:invert (executor game:seek))))",
		},
		{
			name: "nil children skipped",
			node: NewSequence(nil, NewExecutor("idle"), nil),
			want: "(sequence (executor game:idle))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.node.String())
		})
	}
}
