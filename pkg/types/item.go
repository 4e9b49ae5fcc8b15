// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Annotation is the filled AI block of a record: the localized fields plus
// the canonicalized highlight list. Missing source data leaves fields empty,
// never errors.
type Annotation struct {
	// TitleZH is the localized paper title.
	TitleZH string

	// SummaryZH is the localized summary paragraph.
	SummaryZH string

	// TLDR is the short synopsis.
	TLDR string

	// Highlights lists the key points in source order.
	Highlights []string
}

// Item is the normalized, ephemeral view of a record used during rendering
// and inspection. Every field is derived through a fallback chain; absent
// source data yields empty strings and empty lists.
type Item struct {
	// Index is the record's 1-based position in the input sequence.
	Index int

	// TitleEN is the English title from the record.
	TitleEN string

	// TitleZH is the localized title from the annotation block.
	TitleZH string

	// TLDR is the short synopsis.
	TLDR string

	// Summary is the long summary paragraph.
	Summary string

	// Highlights lists the annotation key points.
	Highlights []string

	// Authors lists author names in source order.
	Authors []string

	// Categories lists arXiv category codes.
	Categories []string

	// ArxivID is the paper identifier (e.g. "2508.01234").
	ArxivID string

	// AbsURL is the abstract page URL.
	AbsURL string

	// PDFURL is the PDF download URL.
	PDFURL string
}

// DisplayTitle returns the heading title for the item: the localized title
// first, then the English title, then the identifier, then "Item #N".
func (it Item) DisplayTitle() string {
	if it.TitleZH != "" {
		return it.TitleZH
	}
	if it.TitleEN != "" {
		return it.TitleEN
	}
	if it.ArxivID != "" {
		return it.ArxivID
	}
	return fmt.Sprintf("Item #%d", it.Index)
}
