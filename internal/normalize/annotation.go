// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes the loosely-shaped fields of annotated
// paper records: the AI annotation block, list-valued fields, and the paper
// identifier with its URLs. Every function tolerates absent or malformed
// input and produces empty values instead of errors.
package normalize

import (
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// tldrLimit is the synopsis length in Unicode code points when the synopsis
// has to be cut from the abstract.
const tldrLimit = 140

// Block returns the raw annotation mapping of a record, taken from the "AI"
// key first, then "ai". The second return is false when neither key holds a
// non-empty mapping.
func Block(rec types.Record) (map[string]any, bool) {
	if m, ok := rec.First("AI", "ai").(map[string]any); ok {
		return m, true
	}
	return nil, false
}

// Annotation fills the annotation block of a record. A value the block
// itself carries wins even when it is empty; the fallback chains over the
// record's own fields apply only when the block lacks the key entirely.
func Annotation(rec types.Record) types.Annotation {
	block, _ := Block(rec)

	tldr, ok := own(block, "tldr")
	if !ok {
		tldr = rec.FirstString("tldr")
		if tldr == "" {
			tldr = truncateRunes(rec.FirstString("abstract"), tldrLimit)
		}
	}

	return types.Annotation{
		TitleZH:    fill(block, "title_zh", rec, "title_zh", "title"),
		SummaryZH:  fill(block, "summary_zh", rec, "summary_zh", "abstract", "summary"),
		TLDR:       strings.TrimSpace(tldr),
		Highlights: Highlights(block["highlights"]),
	}
}

// fill resolves one annotation field: the block's own value when the key is
// present, otherwise the first non-empty of the record's fallback keys.
func fill(block map[string]any, key string, rec types.Record, fallbacks ...string) string {
	if s, ok := own(block, key); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(rec.FirstString(fallbacks...))
}

// own returns the block's value for key stringified, and whether the key is
// present at all. An empty or non-scalar value stringifies to "" but still
// counts as present.
func own(block map[string]any, key string) (string, bool) {
	v, ok := block[key]
	if !ok {
		return "", false
	}
	if !types.Truthy(v) {
		return "", true
	}
	return types.Stringify(v), true
}

// Highlights canonicalizes the highlights field of an annotation block. A
// sequence keeps its order with every element stringified, trimmed, and
// dropped when empty. A single string is split: full-width semicolons become
// ASCII, the string splits on line breaks, and every piece drops surrounding
// whitespace and bullet markers; if exactly one piece remains and it
// contains a semicolon, the piece splits again on semicolons. Any other
// value yields no highlights.
func Highlights(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, e := range t {
			if s := strings.TrimSpace(types.Stringify(e)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitHighlights(t)
	default:
		return nil
	}
}

// splitHighlights breaks one highlight string into pieces.
func splitHighlights(s string) []string {
	s = strings.ReplaceAll(s, "；", ";")

	var parts []string
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	for _, p := range lines {
		if p = strings.Trim(p, " •-\t"); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 1 && strings.Contains(parts[0], ";") {
		var resplit []string
		for _, p := range strings.Split(parts[0], ";") {
			if p = strings.TrimSpace(p); p != "" {
				resplit = append(resplit, p)
			}
		}
		return resplit
	}
	return parts
}

// truncateRunes cuts s to at most n code points. The cut is by code point,
// not byte or display width, so multi-byte scripts keep their exact prefix.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
