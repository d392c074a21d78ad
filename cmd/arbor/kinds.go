package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/arbor/internal/table"
	"github.com/deepnoodle-ai/arbor/op"
)

var compiledKinds = []op.Kind{
	op.Sequence,
	op.Fallback,
	op.Parallel,
	op.Decorator,
	op.Executor,
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the instruction kinds the compiler emits",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		if strings.ToLower(format) == "json" {
			type kindReport struct {
				Kind    uint8  `json:"kind"`
				Name    string `json:"name"`
				Operand string `json:"operand"`
			}
			rows := make([]kindReport, 0, len(compiledKinds))
			for _, k := range compiledKinds {
				info := op.GetInfo(k)
				rows = append(rows, kindReport{
					Kind:    uint8(k),
					Name:    info.Name,
					Operand: info.OperandName,
				})
			}
			out, err := outputJSON(rows)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		tbl := table.NewTable(os.Stdout).
			WithHeader([]string{"KIND", "NAME", "OPERAND"}).
			WithHeaderAlignment([]table.Alignment{
				table.AlignCenter,
				table.AlignCenter,
				table.AlignCenter,
			}).
			WithColumnAlignment([]table.Alignment{
				table.AlignRight,
				table.AlignLeft,
				table.AlignLeft,
			})
		for _, k := range compiledKinds {
			info := op.GetInfo(k)
			tbl.Append([]string{strconv.Itoa(int(k)), info.Name, info.OperandName})
		}
		tbl.Render()
		return nil
	},
}

func init() {
	kindsCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
	rootCmd.AddCommand(kindsCmd)
}
