package main

import (
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Compile behavior trees into flat bytecode",
	Long: `Arbor compiles behavior trees into flat bytecode.

Trees are described as nested sequence, fallback, parallel, decorator, and
executor nodes. The compiler resolves the named behaviors against a
registration context and lowers the tree into pairs of 32-bit instruction
words that an engine can walk without chasing pointers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("no-color", false, "Disable colored output")
	pf.Bool("verbose", false, "Enable verbose logging")
	viper.BindPFlag("no-color", pf.Lookup("no-color"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
	viper.BindEnv("no-color", "ARBOR_NO_COLOR", "NO_COLOR")
	viper.SetEnvPrefix("arbor")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    color.NoColor,
	}).With().Timestamp().Str("app", "arbor").Logger().Level(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
