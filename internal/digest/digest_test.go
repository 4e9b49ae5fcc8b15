// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

func TestRenderItemFull(t *testing.T) {
	it := types.Item{
		Index:      1,
		TitleEN:    "English Title",
		TitleZH:    "中文标题",
		TLDR:       "short synopsis",
		Summary:    "长摘要。",
		Highlights: []string{"first", "second"},
		Authors:    []string{"Alice", "Bob"},
		Categories: []string{"cs.CL"},
		ArxivID:    "2508.01234",
		AbsURL:     "https://arxiv.org/abs/2508.01234",
		PDFURL:     "https://arxiv.org/pdf/2508.01234.pdf",
	}

	want := strings.Join([]string{
		"### 中文标题",
		"- **arXiv**: [2508.01234](https://arxiv.org/abs/2508.01234)  ·  [PDF](https://arxiv.org/pdf/2508.01234.pdf)",
		"- **Title (EN)**: English Title",
		"- **Authors**: Alice, Bob",
		"- **Categories**: cs.CL",
		"- **TL;DR**: short synopsis",
		"- **Highlights:**",
		"  - first",
		"  - second",
		"",
		"长摘要。",
		"",
	}, "\n")

	if got := RenderItem(it); got != want {
		t.Errorf("RenderItem mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderItemMinimal(t *testing.T) {
	got := RenderItem(types.Item{Index: 4})
	want := "### Item #4\n"
	if got != want {
		t.Errorf("RenderItem = %q, want %q", got, want)
	}
}

func TestRenderItemLinkVariants(t *testing.T) {
	tests := []struct {
		name     string
		item     types.Item
		wantLine string
	}{
		{
			name:     "link label falls back without identifier",
			item:     types.Item{Index: 1, AbsURL: "https://example.org/p"},
			wantLine: "- **arXiv**: [link](https://example.org/p)",
		},
		{
			name:     "no pdf suffix without pdf url",
			item:     types.Item{Index: 1, ArxivID: "2508.01234", AbsURL: "https://arxiv.org/abs/2508.01234"},
			wantLine: "- **arXiv**: [2508.01234](https://arxiv.org/abs/2508.01234)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderItem(tt.item)
			if !strings.Contains(got, tt.wantLine+"\n") {
				t.Errorf("block missing %q:\n%s", tt.wantLine, got)
			}
			if strings.Contains(got, "PDF") != strings.Contains(tt.wantLine, "PDF") {
				t.Errorf("unexpected PDF link in:\n%s", got)
			}
		})
	}
}

func TestRenderItemEnglishTitleLineNeedsBothTitles(t *testing.T) {
	it := types.Item{Index: 1, TitleEN: "Only English"}
	got := RenderItem(it)

	if !strings.HasPrefix(got, "### Only English\n") {
		t.Errorf("heading = %q", got)
	}
	if strings.Contains(got, "Title (EN)") {
		t.Error("Title (EN) line rendered without a localized title")
	}
}

func TestRenderItemEscapesAngleBrackets(t *testing.T) {
	it := types.Item{Index: 1, TitleZH: "<script>alert(1)</script>"}
	got := RenderItem(it)

	if !strings.Contains(got, "### &lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("heading not escaped:\n%s", got)
	}
	if strings.Contains(got, "<script>") {
		t.Error("raw angle brackets leaked into output")
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	got := Render("2025-08-15", nil)
	want := strings.Join([]string{
		"---",
		`title: "arXiv Daily · 2025-08-15 · 0 papers"`,
		"date: 2025-08-15",
		"layout: post",
		"tags: [arxiv, daily]",
		"---",
		"",
		"# arXiv Daily · 2025-08-15 · 0 papers",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderFrontMatterParses(t *testing.T) {
	records := []types.Record{
		{"title": "First Paper", "arxiv_id": "2508.00001"},
		{"title": "Second Paper", "arxiv_id": "2508.00002"},
	}
	doc := Render("2025-08-15", records)

	var meta struct {
		Title  string   `yaml:"title"`
		Date   string   `yaml:"date"`
		Layout string   `yaml:"layout"`
		Tags   []string `yaml:"tags"`
	}
	rest, err := frontmatter.Parse(strings.NewReader(doc), &meta)
	if err != nil {
		t.Fatalf("parsing front matter: %v", err)
	}

	if meta.Title != "arXiv Daily · 2025-08-15 · 2 papers" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.Date != "2025-08-15" {
		t.Errorf("date = %q", meta.Date)
	}
	if meta.Layout != "post" {
		t.Errorf("layout = %q", meta.Layout)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "arxiv" || meta.Tags[1] != "daily" {
		t.Errorf("tags = %v", meta.Tags)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(rest)), "# arXiv Daily") {
		t.Errorf("body does not open with the heading: %q", string(rest))
	}
}

func TestRenderHeadingStructure(t *testing.T) {
	records := []types.Record{
		{"title": "First"},
		{"title": "Second"},
		{"title": "Third"},
	}
	doc := Render("2025-08-15", records)

	var meta struct{}
	body, err := frontmatter.Parse(strings.NewReader(doc), &meta)
	if err != nil {
		t.Fatalf("parsing front matter: %v", err)
	}

	var buf bytes.Buffer
	if err := goldmark.New().Convert(body, &buf); err != nil {
		t.Fatalf("converting digest body: %v", err)
	}
	html := buf.String()

	if got := strings.Count(html, "<h1"); got != 1 {
		t.Errorf("document heading count = %d, want 1", got)
	}
	if got := strings.Count(html, "<h3"); got != 3 {
		t.Errorf("item heading count = %d, want 3", got)
	}
}

func TestRenderKeepsInputOrderAndPositions(t *testing.T) {
	records := []types.Record{
		nil,
		{"title": "Named Paper"},
	}
	doc := Render("2025-08-15", records)

	first := strings.Index(doc, "### Item #1")
	second := strings.Index(doc, "### Named Paper")
	if first == -1 || second == -1 {
		t.Fatalf("missing item headings:\n%s", doc)
	}
	if first > second {
		t.Error("items rendered out of input order")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"<b>", "&lt;b&gt;"},
		{"a < b > c", "a &lt; b &gt; c"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
