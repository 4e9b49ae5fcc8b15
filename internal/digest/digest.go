// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest renders normalized paper records into the daily Markdown
// digest published to a Jekyll site.
package digest

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-digest/internal/normalize"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Title returns the digest title for a date and paper count.
func Title(date string, count int) string {
	return fmt.Sprintf("arXiv Daily · %s · %d papers", date, count)
}

// Escape neutralizes the characters that would break Markdown rendering.
// Only angle brackets are rewritten; everything else passes through.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// RenderItem renders one item as a Markdown block. Optional lines appear
// only when their field is non-empty, and the block ends with a blank line
// so concatenated items stay separated.
func RenderItem(it types.Item) string {
	lines := []string{"### " + Escape(it.DisplayTitle())}

	if it.AbsURL != "" {
		label := it.ArxivID
		if label == "" {
			label = "link"
		}
		link := fmt.Sprintf("- **arXiv**: [%s](%s)", label, it.AbsURL)
		if it.PDFURL != "" {
			link += fmt.Sprintf("  ·  [PDF](%s)", it.PDFURL)
		}
		lines = append(lines, link)
	}
	if it.TitleEN != "" && it.TitleZH != "" {
		lines = append(lines, "- **Title (EN)**: "+Escape(it.TitleEN))
	}
	if len(it.Authors) > 0 {
		lines = append(lines, "- **Authors**: "+joinEscaped(it.Authors))
	}
	if len(it.Categories) > 0 {
		lines = append(lines, "- **Categories**: "+joinEscaped(it.Categories))
	}
	if it.TLDR != "" {
		lines = append(lines, "- **TL;DR**: "+Escape(it.TLDR))
	}
	if len(it.Highlights) > 0 {
		lines = append(lines, "- **Highlights:**")
		for _, h := range it.Highlights {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			lines = append(lines, "  - "+Escape(h))
		}
	}
	if it.Summary != "" {
		lines = append(lines, "", Escape(it.Summary))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Render produces the full digest document: Jekyll front matter in fixed
// key order, a heading repeating the digest title, and every record's block
// at its 1-based input position. Nothing is reordered, filtered, or
// deduplicated, and zero records still yield a valid document.
func Render(date string, records []types.Record) string {
	title := Title(date, len(records))

	parts := []string{
		"---",
		fmt.Sprintf("title: %q", title),
		"date: " + date,
		"layout: post",
		"tags: [arxiv, daily]",
		"---",
		"",
		"# " + title,
		"",
	}
	for i, rec := range records {
		parts = append(parts, RenderItem(normalize.Item(i+1, rec)))
	}
	return strings.Join(parts, "\n")
}

func joinEscaped(names []string) string {
	escaped := make([]string, len(names))
	for i, n := range names {
		escaped[i] = Escape(n)
	}
	return strings.Join(escaped, ", ")
}
