package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		if strings.ToLower(format) == "json" {
			info, err := outputJSON(map[string]any{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
			if err != nil {
				return err
			}
			fmt.Println(string(info))
			return nil
		}
		fmt.Println(version)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("output", "o", "", "Output format (json or text)")
	rootCmd.AddCommand(versionCmd)
}
