// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the digest pipeline:
// the schemaless input record, the filled annotation block, and the
// normalized item view used by rendering and inspection.
package types

import (
	"encoding/json"
	"strconv"
)

// Record is one paper entry decoded from a JSONL line. It is an open mapping
// with no enforced schema; every lookup must tolerate absent keys and
// unexpected value shapes. A nil Record behaves as an empty mapping, which is
// how non-object input lines travel through the pipeline.
type Record map[string]any

// First returns the value of the first key holding a non-empty value, or nil
// when none does. Emptiness follows JSON conventions: null, false, zero
// numbers, and empty strings, arrays, and objects all count as empty.
func (r Record) First(keys ...string) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && Truthy(v) {
			return v
		}
	}
	return nil
}

// FirstString returns the stringified value of the first key holding a
// non-empty value, or "" when none does.
func (r Record) FirstString(keys ...string) string {
	return Stringify(r.First(keys...))
}

// Truthy reports whether v counts as non-empty. Composite values are
// non-empty when they have elements; numbers when they are non-zero.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return true
		}
		return f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// Stringify renders a decoded JSON value as a plain string. Strings pass
// through unchanged, numbers keep their literal form, booleans become
// "true"/"false". Null and composite values have no string form and
// stringify to "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
