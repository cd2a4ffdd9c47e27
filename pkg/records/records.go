// Package records defines the dynamic record type produced by parsers and
// consumed by the extractor.
//
// A Record is an untyped JSON object. The accessor methods implement an
// explicit optional-field contract: absent keys and values of an unexpected
// shape never fail, they yield the zero value for the requested type. This
// keeps field access explicit at call sites instead of scattering type
// assertions through extraction code.
package records

import "encoding/json"

// Record is a single parsed input object, keyed by field name.
type Record map[string]any

// String returns the string value for key, or "" when the key is absent or
// not string-like. json.Number values (parsers decode with UseNumber) are
// rendered in their literal form, so numeric source fields still coerce to
// a stable string.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// StringSlice returns the array of strings stored under key, preserving
// element order. Non-string elements are skipped. Absent keys and non-array
// values yield nil.
func (r Record) StringSlice(key string) []string {
	arr, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// RecordSlice returns the array of objects stored under key as []Record,
// preserving element order. Non-object elements are skipped; absent keys
// yield nil.
func (r Record) RecordSlice(key string) []Record {
	arr, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(arr))
	for _, e := range arr {
		if m, ok := e.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}
