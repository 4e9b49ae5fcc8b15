// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// StringList canonicalizes a value meant to hold a list of names, such as
// authors or categories. A delimiter-joined string splits into parts, a
// sequence resolves element by element, and any other scalar becomes a
// single-element list. The result holds trimmed, non-empty strings in
// source order.
func StringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return splitNames(t)
	case []any:
		var out []string
		for _, e := range t {
			if s := elementName(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		s := strings.TrimSpace(types.Stringify(v))
		if s == "" {
			return nil
		}
		return []string{s}
	}
}

// splitNames splits a joined name string on commas and on both semicolon
// forms.
func splitNames(s string) []string {
	s = strings.ReplaceAll(s, "；", ";")
	s = strings.ReplaceAll(s, ",", ";")

	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// elementName extracts the display string of one sequence element. Mappings
// resolve through the name, author, and text keys, first non-empty wins;
// anything else is stringified directly.
func elementName(e any) string {
	if m, ok := e.(map[string]any); ok {
		return strings.TrimSpace(types.Record(m).FirstString("name", "author", "text"))
	}
	return strings.TrimSpace(types.Stringify(e))
}
