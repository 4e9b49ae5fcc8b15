// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect summarizes a dataset before it is rendered. It
// reports annotation coverage and aggregate category counts so a
// broken upstream export is visible without reading the digest.
package inspect

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/normalize"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

var timeNow = time.Now

// Report is the machine-readable summary of one dataset.
type Report struct {
	Source            string         `yaml:"source"`
	GeneratedAt       string         `yaml:"generated_at"`
	Records           int            `yaml:"records"`
	SkippedLines      int            `yaml:"skipped_lines"`
	MissingAnnotation int            `yaml:"missing_annotation"`
	MissingIdentifier int            `yaml:"missing_identifier"`
	Categories        map[string]int `yaml:"categories"`
}

// Build normalizes every record and tallies coverage statistics. The
// returned items are in dataset order, ready for display.
func Build(source string, res feed.Result) (Report, []types.Item) {
	rep := Report{
		Source:       source,
		GeneratedAt:  timeNow().UTC().Format(time.RFC3339),
		Records:      len(res.Records),
		SkippedLines: res.Skipped,
		Categories:   map[string]int{},
	}

	items := make([]types.Item, 0, len(res.Records))
	for i, rec := range res.Records {
		it := normalize.Item(i+1, rec)
		items = append(items, it)

		if _, ok := normalize.Block(rec); !ok {
			rep.MissingAnnotation++
		}
		if it.ArxivID == "" {
			rep.MissingIdentifier++
		}
		for _, c := range it.Categories {
			rep.Categories[c]++
		}
	}
	return rep, items
}

// FormatTable renders items as a fixed-width table. Column widths are
// display widths, so CJK titles line up with ASCII ones.
func FormatTable(items []types.Item) string {
	if len(items) == 0 {
		return "No records found.\n"
	}

	cols := []struct {
		name  string
		width int
	}{
		{"#", 4},
		{"ID", 14},
		{"Title", 40},
		{"Authors", 24},
		{"Categories", 14},
		{"HL", 4},
	}

	header := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(c.name, c.width)
		rules[i] = strings.Repeat("-", c.width)
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, "  ") + "\n")
	b.WriteString(strings.Join(rules, "  ") + "\n")

	for _, it := range items {
		row := []string{
			pad(fmt.Sprintf("%d", it.Index), cols[0].width),
			pad(it.ArxivID, cols[1].width),
			pad(it.DisplayTitle(), cols[2].width),
			pad(strings.Join(it.Authors, ", "), cols[3].width),
			pad(strings.Join(it.Categories, ", "), cols[4].width),
			pad(fmt.Sprintf("%d", len(it.Highlights)), cols[5].width),
		}
		b.WriteString(strings.Join(row, "  ") + "\n")
	}

	fmt.Fprintf(&b, "\n%d records\n", len(items))
	return b.String()
}

// pad truncates s to width display cells and fills the remainder with
// spaces. Double-width runes count as two cells.
func pad(s string, width int) string {
	s = runewidth.Truncate(s, width, "...")
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// WriteReport marshals the report to YAML at path.
func WriteReport(path string, rep Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
