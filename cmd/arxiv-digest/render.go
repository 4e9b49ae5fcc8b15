// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/digest"
	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/site"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a JSONL dataset into a dated Markdown digest",
	Long: `Render reads an AI-annotated JSON Lines dataset, normalizes every
record, and writes one Markdown digest into the site tree. The digest
date comes from the dataset file name when it starts with YYYY-MM-DD,
otherwise from the current day.

The output directory is detected inside the site root: _posts is
preferred, then docs, then md is created.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("data", "", "path to the JSONL dataset (required)")
	renderCmd.Flags().String("root", "", "site root to write into (default from config, else .)")
	renderCmd.Flags().String("out", "", "output directory override; skips _posts/docs detection")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
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
	if len(res.Records) == 0 {
		fmt.Fprintf(os.Stderr, "warning: no items found in %s; writing an empty stub digest\n", dataPath)
	}

	date := site.DeriveDate(dataPath)
	doc := digest.Render(date, res.Records)

	dir, err := site.ResolveOutputDir(siteConfig(cmd))
	if err != nil {
		return err
	}
	outPath := filepath.Join(dir, site.OutputFileName(dir, date))
	if err := site.WriteFile(outPath, []byte(doc)); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d papers)\n", outPath, len(res.Records))
	return nil
}

// siteConfig merges the site flags over config-file values.
func siteConfig(cmd *cobra.Command) types.SiteConfig {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = viper.GetString("site.root")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = viper.GetString("site.output_dir")
	}
	return types.SiteConfig{Root: root, OutputDir: out}
}
