package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/digest"
	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/preview"
	"github.com/pdiddy/arxiv-digest/internal/site"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a dataset and convert it to a standalone HTML page",
	Long: `Preview renders a dataset exactly like render, then converts the digest
body into a self-contained HTML page next to where the Markdown would
go. The Markdown digest itself is not written.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("data", "", "path to the JSONL dataset (required)")
	previewCmd.Flags().String("root", "", "site root to write into (default from config, else .)")
	previewCmd.Flags().String("out", "", "output directory override; skips _posts/docs detection")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	date := site.DeriveDate(dataPath)
	page, err := preview.Render(digest.Render(date, res.Records))
	if err != nil {
		return err
	}

	dir, err := site.ResolveOutputDir(siteConfig(cmd))
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(site.OutputFileName(dir, date), ".md") + ".html"
	outPath := filepath.Join(dir, name)
	if err := site.WriteFile(outPath, []byte(page)); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d papers)\n", outPath, len(res.Records))
	return nil
}
