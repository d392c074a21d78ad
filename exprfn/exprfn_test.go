package exprfn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/arbor/behavior"
)

func TestExecutor(t *testing.T) {
	tests := []struct {
		name string
		src  string
		args map[string]any
		want behavior.Outcome
	}{
		{
			name: "true result",
			src:  "args.enemies > 0",
			args: map[string]any{"enemies": 3},
			want: behavior.Success,
		},
		{
			name: "false result",
			src:  "args.enemies > 0",
			args: map[string]any{"enemies": 0},
			want: behavior.Failure,
		},
		{
			name: "boolean field",
			src:  "args.alerted",
			args: map[string]any{"alerted": true},
			want: behavior.Success,
		},
		{
			name: "evaluation error",
			src:  "args.missing > 0",
			args: map[string]any{"enemies": 3},
			want: behavior.Failure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Executor[map[string]any](tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, fn(tt.args))
		})
	}
}

func TestExecutorCompileError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "malformed expression", src: "args.enemies >"},
		{name: "non-boolean result", src: "1 + 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Executor[map[string]any](tt.src)
			require.Error(t, err)
			require.Nil(t, fn)
		})
	}
}

func TestDecorator(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		result behavior.Outcome
		want   behavior.Outcome
	}{
		{
			name:   "invert failure",
			src:    "result == failure ? success : failure",
			result: behavior.Failure,
			want:   behavior.Success,
		},
		{
			name:   "invert success",
			src:    "result == failure ? success : failure",
			result: behavior.Success,
			want:   behavior.Failure,
		},
		{
			name:   "pass running through",
			src:    "result",
			result: behavior.Running,
			want:   behavior.Running,
		},
		{
			name:   "boolean result",
			src:    "result == running",
			result: behavior.Running,
			want:   behavior.Success,
		},
		{
			name:   "outcome constant",
			src:    "running",
			result: behavior.Failure,
			want:   behavior.Running,
		},
		{
			name:   "out of range value",
			src:    "42",
			result: behavior.Success,
			want:   behavior.Failure,
		},
		{
			name:   "non-numeric value",
			src:    `"stop"`,
			result: behavior.Success,
			want:   behavior.Failure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Decorator[map[string]any](tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, fn(tt.result, nil))
		})
	}
}

func TestDecoratorReadsArgs(t *testing.T) {
	fn, err := Decorator[map[string]any]("args.retries > 0 ? result : failure")
	require.NoError(t, err)
	require.Equal(t, behavior.Running, fn(behavior.Running, map[string]any{"retries": 2}))
	require.Equal(t, behavior.Failure, fn(behavior.Running, map[string]any{"retries": 0}))
}

func TestDecoratorCompileError(t *testing.T) {
	fn, err := Decorator[map[string]any]("result ==")
	require.Error(t, err)
	require.Nil(t, fn)
}

func TestDecoratorEvaluationError(t *testing.T) {
	fn, err := Decorator[map[string]any]("args.missing + 1")
	require.NoError(t, err)
	require.Equal(t, behavior.Failure, fn(behavior.Success, map[string]any{}))
}

func TestExecutorStructArgs(t *testing.T) {
	type world struct {
		Enemies int
		Alerted bool
	}
	fn, err := Executor[world]("args.Enemies > 2 && args.Alerted")
	require.NoError(t, err)
	require.Equal(t, behavior.Success, fn(world{Enemies: 3, Alerted: true}))
	require.Equal(t, behavior.Failure, fn(world{Enemies: 3, Alerted: false}))
}

func TestRegisteredWithContext(t *testing.T) {
	ctx := behavior.NewContext[map[string]any]()

	seek, err := Executor[map[string]any]("args.enemies > 0")
	require.NoError(t, err)
	h, err := ctx.RegisterExecutor("seek", seek)
	require.NoError(t, err)

	invert, err := Decorator[map[string]any]("result == failure ? success : failure")
	require.NoError(t, err)
	d, err := ctx.RegisterDecorator("invert", invert)
	require.NoError(t, err)

	require.Equal(t, behavior.Success, ctx.CallExecutor(h, map[string]any{"enemies": 1}))
	require.Equal(t, behavior.Failure, ctx.CallExecutor(h, map[string]any{"enemies": 0}))
	require.Equal(t, behavior.Success, ctx.CallDecorator(d, behavior.Failure, nil))
}
