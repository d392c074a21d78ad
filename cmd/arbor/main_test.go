package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// runCommand executes the CLI with the given arguments and returns its
// stdout. Colors are disabled for consistent output.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	return captureStdout(t, func() {
		rootCmd.SetArgs(append([]string{"--no-color"}, args...))
		require.NoError(t, rootCmd.Execute())
	})
}
