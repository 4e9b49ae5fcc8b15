// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Item builds the normalized view of a record for rendering and inspection.
// idx is the record's 1-based position in the input, used as the title
// fallback of untitled items.
func Item(idx int, rec types.Record) types.Item {
	ann := Annotation(rec)
	id, absURL, pdfURL := Resolve(rec)

	return types.Item{
		Index:      idx,
		TitleEN:    strings.TrimSpace(rec.FirstString("title")),
		TitleZH:    ann.TitleZH,
		TLDR:       ann.TLDR,
		Summary:    ann.SummaryZH,
		Highlights: ann.Highlights,
		Authors:    StringList(rec.First("authors", "author")),
		Categories: StringList(rec.First("categories", "category")),
		ArxivID:    id,
		AbsURL:     absURL,
		PDFURL:     pdfURL,
	}
}
