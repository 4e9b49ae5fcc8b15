// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const (
	absURLFormat = "https://arxiv.org/abs/%s"
	pdfURLFormat = "https://arxiv.org/pdf/%s.pdf"
)

// Resolve returns a record's paper identifier and its abstract and PDF
// URLs. The identifier comes from the first non-empty of several key
// spellings and is trimmed. Explicit URLs win; when the record carries none
// and the identifier is non-empty, canonical arxiv.org URLs are
// synthesized. Without an identifier nothing is synthesized.
func Resolve(rec types.Record) (id, absURL, pdfURL string) {
	id = strings.TrimSpace(rec.FirstString("arxiv_id", "id", "arxivId", "identifier"))

	absURL = rec.FirstString("url", "link")
	pdfURL = rec.FirstString("pdf_url")

	if id != "" {
		if absURL == "" {
			absURL = fmt.Sprintf(absURLFormat, id)
		}
		if pdfURL == "" {
			pdfURL = fmt.Sprintf(pdfURLFormat, id)
		}
	}
	return id, absURL, pdfURL
}
