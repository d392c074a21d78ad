package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/arbor"
	"github.com/deepnoodle-ai/arbor/ast"
	"github.com/deepnoodle-ai/arbor/behavior"
)

// benchResult holds compilation benchmark statistics.
type benchResult struct {
	Nodes          int     `json:"nodes"`
	Words          int     `json:"words"`
	Count          int     `json:"count"`
	Warmup         int     `json:"warmup"`
	TotalNs        int64   `json:"total_ns"`
	TotalDuration  string  `json:"total_duration"`
	CompilesPerSec float64 `json:"compiles_per_sec"`
	NodesPerSec    float64 `json:"nodes_per_sec"`
	MinNs          int64   `json:"min_ns"`
	MaxNs          int64   `json:"max_ns"`
	AvgNs          int64   `json:"avg_ns"`
	MedianNs       int64   `json:"median_ns"`
	P95Ns          int64   `json:"p95_ns"`
	P99Ns          int64   `json:"p99_ns"`
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark tree compilation",
	RunE:  benchHandler,
}

func init() {
	benchCmd.Flags().IntP("nodes", "n", 1024, "Approximate node count of the synthetic tree")
	benchCmd.Flags().IntP("count", "c", 1000, "Number of timed compilations")
	benchCmd.Flags().IntP("warmup", "w", 100, "Warmup compilations")
	benchCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
	rootCmd.AddCommand(benchCmd)
}

func benchHandler(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetInt("nodes")
	if target <= 0 {
		target = 1024
	}
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = 1000
	}
	warmup, _ := cmd.Flags().GetInt("warmup")
	if warmup < 0 {
		warmup = 100
	}

	ctx, root, err := buildBenchTree(target)
	if err != nil {
		return err
	}

	// Verify the tree compiles before timing anything.
	tree, err := arbor.Compile(root, ctx)
	if err != nil {
		return err
	}
	nodes := tree.NodeCount()
	words := tree.WordCount()
	log.Debug().Int("nodes", nodes).Int("words", words).Msg("synthetic tree verified")

	for i := 0; i < warmup; i++ {
		_, _ = arbor.Compile(root, ctx)
	}
	runtime.GC()

	durations := make([]time.Duration, count)
	var total time.Duration
	for i := range durations {
		start := time.Now()
		_, _ = arbor.Compile(root, ctx)
		elapsed := time.Since(start)
		durations[i] = elapsed
		total += elapsed
	}
	slices.Sort(durations)

	result := benchResult{
		Nodes:          nodes,
		Words:          words,
		Count:          count,
		Warmup:         warmup,
		TotalNs:        total.Nanoseconds(),
		TotalDuration:  total.Round(time.Microsecond).String(),
		CompilesPerSec: float64(count) / total.Seconds(),
		NodesPerSec:    float64(count) * float64(nodes) / total.Seconds(),
		MinNs:          durations[0].Nanoseconds(),
		MaxNs:          durations[count-1].Nanoseconds(),
		AvgNs:          (total / time.Duration(count)).Nanoseconds(),
		MedianNs:       durations[count/2].Nanoseconds(),
		P95Ns:          durations[min(int(float64(count)*0.95), count-1)].Nanoseconds(),
		P99Ns:          durations[min(int(float64(count)*0.99), count-1)].Nanoseconds(),
	}

	format, _ := cmd.Flags().GetString("output")
	if strings.ToLower(format) == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	bold := color.New(color.Bold)
	bold.Println("Compilation Benchmark")
	fmt.Println()
	fmt.Printf("  nodes:        %d\n", result.Nodes)
	fmt.Printf("  words:        %d\n", result.Words)
	fmt.Printf("  compilations: %d (plus %d warmup)\n", result.Count, result.Warmup)
	fmt.Println()
	fmt.Printf("  total:        %s\n", result.TotalDuration)
	fmt.Printf("  compiles/sec: %.1f\n", result.CompilesPerSec)
	fmt.Printf("  nodes/sec:    %.0f\n", result.NodesPerSec)
	fmt.Println()
	fmt.Printf("  min:          %v\n", time.Duration(result.MinNs).Round(time.Microsecond))
	fmt.Printf("  max:          %v\n", time.Duration(result.MaxNs).Round(time.Microsecond))
	fmt.Printf("  avg:          %v\n", time.Duration(result.AvgNs).Round(time.Microsecond))
	fmt.Printf("  median:       %v\n", time.Duration(result.MedianNs).Round(time.Microsecond))
	fmt.Printf("  p95:          %v\n", time.Duration(result.P95Ns).Round(time.Microsecond))
	fmt.Printf("  p99:          %v\n", time.Duration(result.P99Ns).Round(time.Microsecond))
	return nil
}

// buildBenchTree builds a wide synthetic tree of at least target nodes: a
// fallback of decorated sequences, each with eight executor leaves.
func buildBenchTree(target int) (*behavior.Context[int], ast.Node, error) {
	ctx := behavior.NewContext[int]()
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("step:%d", i)
		if _, err := ctx.RegisterExecutor(name, func(int) behavior.Outcome {
			return behavior.Success
		}); err != nil {
			return nil, nil, err
		}
	}
	if _, err := ctx.RegisterDecorator("retry", func(result behavior.Outcome, _ int) behavior.Outcome {
		return result
	}); err != nil {
		return nil, nil, err
	}

	var branches []ast.Node
	nodes := 1
	for nodes < target || len(branches) == 0 {
		leaves := make([]ast.Node, 8)
		for i := range leaves {
			leaves[i] = ast.NewExecutor(fmt.Sprintf("step:%d", i))
		}
		branches = append(branches, ast.NewDecorator("retry", ast.NewSequence(leaves...)))
		nodes += 10
	}
	return ctx, ast.NewRoot(ast.NewFallback(branches...)), nil
}
