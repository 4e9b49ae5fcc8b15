package inspect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

func TestBuild(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	res := feed.Result{
		Records: []types.Record{
			{
				"id":         "2508.01234",
				"title":      "Attention Is All You Need",
				"categories": []any{"cs.CL", "cs.AI"},
				"AI":         map[string]any{"tldr": "short", "highlights": []any{"a", "b"}},
			},
			{
				"title":      "No Annotation Here",
				"categories": []any{"cs.CL"},
			},
			nil,
		},
		Skipped: 2,
	}

	rep, items := Build("data/2025-08-15_AI_enhanced_Chinese.jsonl", res)

	require.Len(t, items, 3)
	assert.Equal(t, "data/2025-08-15_AI_enhanced_Chinese.jsonl", rep.Source)
	assert.Equal(t, "2025-08-15T10:00:00Z", rep.GeneratedAt)
	assert.Equal(t, 3, rep.Records)
	assert.Equal(t, 2, rep.SkippedLines)
	assert.Equal(t, 2, rep.MissingAnnotation)
	assert.Equal(t, 2, rep.MissingIdentifier)
	assert.Equal(t, map[string]int{"cs.CL": 2, "cs.AI": 1}, rep.Categories)

	assert.Equal(t, "2508.01234", items[0].ArxivID)
	assert.Equal(t, []string{"a", "b"}, items[0].Highlights)
	assert.Equal(t, "Item #3", items[2].DisplayTitle())
}

func TestFormatTable(t *testing.T) {
	items := []types.Item{
		{
			Index:      1,
			ArxivID:    "2508.01234",
			TitleZH:    "注意力就是一切",
			Authors:    []string{"Alice", "Bob"},
			Categories: []string{"cs.CL"},
			Highlights: []string{"x", "y", "z"},
		},
		{
			Index:   2,
			TitleEN: "A Very Long Title That Certainly Exceeds The Forty Cell Column Width",
		},
	}

	out := FormatTable(items)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[1], "----")
	assert.Contains(t, lines[2], "2508.01234")
	assert.Contains(t, lines[2], "注意力就是一切")
	assert.Contains(t, lines[3], "...")
	assert.Contains(t, out, "2 records")

	// Rows with CJK text must occupy the same number of display cells
	// as ASCII-only rows.
	want := runewidth.StringWidth(lines[0])
	for _, line := range lines[1:4] {
		assert.Equal(t, want, runewidth.StringWidth(line), "line %q", line)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	assert.Equal(t, "No records found.\n", FormatTable(nil))
}

func TestWriteReport(t *testing.T) {
	rep := Report{
		Source:            "data/2025-08-15.jsonl",
		GeneratedAt:       "2025-08-15T10:00:00Z",
		Records:           4,
		SkippedLines:      1,
		MissingAnnotation: 2,
		Categories:        map[string]int{"cs.CL": 3},
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: data/2025-08-15.jsonl")

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, rep, got)
}
