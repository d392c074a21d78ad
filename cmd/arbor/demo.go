package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/arbor"
	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/behavior"
	"github.com/deepnoodle-ai/arbor/bytecode"
	"github.com/deepnoodle-ai/arbor/dis"
	"github.com/deepnoodle-ai/arbor/exprfn"
)

// guard is the world state threaded through the demo behaviors.
type guard struct {
	Enemies int
	Alerted bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Compile a sample patrol tree and show the result",
	RunE:  demoHandler,
}

func init() {
	demoCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
	rootCmd.AddCommand(demoCmd)
}

func demoContext() (*behavior.Context[*guard], error) {
	ctx := behavior.NewContext[*guard]()

	// Registration order is fixed so the demo compiles to the same words
	// on every run.
	executors := []struct {
		name string
		fn   behavior.ExecutorFunc[*guard]
	}{
		{"idle", func(*guard) behavior.Outcome {
			return behavior.Success
		}},
		{"flee", func(g *guard) behavior.Outcome {
			if g.Enemies > 1 {
				return behavior.Running
			}
			return behavior.Failure
		}},
		{"patrol", func(*guard) behavior.Outcome {
			return behavior.Running
		}},
		{"vision:scan", func(g *guard) behavior.Outcome {
			if g.Enemies > 0 {
				return behavior.Success
			}
			return behavior.Failure
		}},
	}
	for _, e := range executors {
		if _, err := ctx.RegisterExecutor(e.name, e.fn); err != nil {
			return nil, err
		}
	}

	// The threat check is data, not Go code.
	threatened, err := exprfn.Executor[*guard]("args.Alerted && args.Enemies > 0")
	if err != nil {
		return nil, err
	}
	if _, err := ctx.RegisterExecutor("threat:detected", threatened); err != nil {
		return nil, err
	}

	if _, err := ctx.RegisterDecorator("invert", func(result behavior.Outcome, _ *guard) behavior.Outcome {
		switch result {
		case behavior.Success:
			return behavior.Failure
		case behavior.Failure:
			return behavior.Success
		default:
			return result
		}
	}); err != nil {
		return nil, err
	}
	return ctx, nil
}

func demoTree() *ast.Root {
	return ast.NewRoot(ast.NewFallback(
		ast.NewSequence(
			ast.NewExecutor("threat:detected"),
			ast.NewDecorator("invert", ast.NewExecutor("flee")),
		),
		ast.NewParallel(
			ast.NewExecutor("patrol"),
			ast.NewExecutor("vision:scan"),
		),
		ast.NewExecutor("idle"),
	))
}

func demoHandler(cmd *cobra.Command, args []string) error {
	ctx, err := demoContext()
	if err != nil {
		return err
	}
	log.Debug().
		Int("executors", ctx.Executors()).
		Int("decorators", ctx.Decorators()).
		Msg("registered demo behaviors")

	root := demoTree()
	tree, err := arbor.Compile(root, ctx)
	if err != nil {
		return err
	}
	stats := tree.Stats()
	log.Debug().
		Int("nodes", stats.NodeCount).
		Int("words", stats.WordCount).
		Msg("compiled demo tree")

	instructions, err := dis.Disassemble(tree)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	if strings.ToLower(format) == "json" {
		return printDemoJSON(root, stats, instructions)
	}

	bold := color.New(color.Bold)
	bold.Println("Tree")
	fmt.Println()
	fmt.Printf("  %s\n", root.String())
	fmt.Println()

	bold.Println("Bytecode")
	fmt.Println()
	dis.Print(instructions, os.Stdout)
	fmt.Println()

	bold.Println("Summary")
	fmt.Println()
	fmt.Printf("  nodes:      %d\n", stats.NodeCount)
	fmt.Printf("  words:      %d\n", stats.WordCount)
	fmt.Printf("  composites: %d\n", stats.CompositeCount)
	fmt.Printf("  executors:  %d\n", stats.ExecutorRefs)
	fmt.Printf("  decorators: %d\n", stats.DecoratorRefs)
	fmt.Printf("  max offset: %d\n", stats.MaxOffset)
	return nil
}

func printDemoJSON(root *ast.Root, stats bytecode.Stats, instructions []dis.Instruction) error {
	type instructionReport struct {
		Index   int    `json:"index"`
		Kind    string `json:"kind"`
		Operand uint32 `json:"operand"`
		Offset  uint32 `json:"offset"`
		Info    string `json:"info,omitempty"`
	}
	type demoReport struct {
		Tree         string              `json:"tree"`
		NodeCount    int                 `json:"node_count"`
		WordCount    int                 `json:"word_count"`
		Composites   int                 `json:"composites"`
		Executors    int                 `json:"executor_refs"`
		Decorators   int                 `json:"decorator_refs"`
		MaxOffset    uint32              `json:"max_offset"`
		Instructions []instructionReport `json:"instructions"`
	}

	report := demoReport{
		Tree:       root.String(),
		NodeCount:  stats.NodeCount,
		WordCount:  stats.WordCount,
		Composites: stats.CompositeCount,
		Executors:  stats.ExecutorRefs,
		Decorators: stats.DecoratorRefs,
		MaxOffset:  uint32(stats.MaxOffset),
	}
	for _, in := range instructions {
		report.Instructions = append(report.Instructions, instructionReport{
			Index:   in.Index,
			Kind:    in.Name,
			Operand: uint32(in.Operand),
			Offset:  uint32(in.Offset),
			Info:    in.Annotation,
		})
	}

	out, err := outputJSON(report)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
