package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", color.RedString(s))
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// outputJSON marshals v for terminal display, with colors unless they are
// suppressed or stdout is not a terminal.
func outputJSON(v any) ([]byte, error) {
	if viper.GetBool("no-color") || !isTerminal(os.Stdout) {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}
