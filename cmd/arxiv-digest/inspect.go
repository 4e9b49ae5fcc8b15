// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a JSONL dataset without writing a digest",
	Long: `Inspect reads a dataset the same way render does and prints a table of
the normalized items. Annotation coverage and category counts can be
written to a YAML report for pipeline checks.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("data", "", "path to the JSONL dataset (required)")
	inspectCmd.Flags().String("report", "", "write a YAML coverage report to this path")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	dataPath, _ := cmd.Flags().GetString("data")
	if dataPath == "" {
		return fmt.Errorf("provide a dataset with --data")
	}
	if _, err := os.Stat(dataPath); err != nil {
		return fmt.Errorf("data file not found: %s", dataPath)
	}

	res, err := feed.ReadAll(dataPath, os.Stderr)
	if err != nil {
		return err
	}

	rep, items := inspect.Build(dataPath, res)
	fmt.Print(inspect.FormatTable(items))

	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath != "" {
		if err := inspect.WriteReport(reportPath, rep); err != nil {
			return err
		}
		fmt.Printf("Wrote report to %s\n", reportPath)
	}
	return nil
}
