// Package json implements a JSON parser that turns card export files into
// records.Record maps.
//
// Card exports are usually a single top-level array of objects:
//
//	[{"id":"base1-1","name":"Alakazam"}, {"id":"base1-2","name":"Blastoise"}]
//
// NDJSON streams (one object per line) are accepted as well, including
// NDJSON content trailing a top-level value. Non-object top-level values
// are rejected.
//
// Input is read through a BOM-tolerant decoder: exports produced by Windows
// tooling may carry a UTF-8 BOM or be UTF-16 encoded, and a BOM would
// otherwise poison the first decoded token.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"cardetl/pkg/records"
)

// NewReader wraps r so that a leading BOM selects the input encoding and is
// stripped; BOM-less input is treated as UTF-8.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Decoder provides a record-oriented API over a stream of JSON objects.
type Decoder struct {
	dec *json.Decoder
}

// NewDecoder constructs a Decoder reading from r. Numbers are decoded with
// UseNumber so callers decide how numeric values map to output strings.
func NewDecoder(r io.Reader) *Decoder {
	d := json.NewDecoder(NewReader(r))
	d.UseNumber()
	return &Decoder{dec: d}
}

// Next reads the next top-level JSON object and converts it into a
// records.Record. Non-object top-level values are skipped, so junk lines in
// NDJSON streams do not abort the read. io.EOF is returned when the stream
// is exhausted.
func (d *Decoder) Next() (records.Record, error) {
	for {
		var raw any
		if err := d.dec.Decode(&raw); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("json parser: decode: %w", err)
		}

		if m, ok := raw.(map[string]any); ok {
			return records.Record(m), nil
		}
	}
}

// DecodeAll reads the whole stream from r and returns its objects in source
// order.
//
// Accepted shapes:
//   - a top-level array of objects (the common card export layout),
//   - a top-level object, optionally followed by NDJSON content,
//   - an empty stream (returns nil, nil).
//
// A top-level primitive, or an array containing a non-object element, is a
// malformed input and yields an error.
func DecodeAll(r io.Reader) ([]records.Record, error) {
	br := NewReader(r)
	d := json.NewDecoder(br)
	d.UseNumber()

	var root any
	if err := d.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("json parser: decode root: %w", err)
	}

	var out []records.Record
	switch v := root.(type) {
	case []any:
		out = make([]records.Record, 0, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("json parser: element %d in array is not an object", i)
			}
			out = append(out, records.Record(obj))
		}

	case map[string]any:
		out = append(out, records.Record(v))

	default:
		return nil, fmt.Errorf("json parser: unsupported top-level JSON type %T", v)
	}

	// Consume trailing NDJSON content after the root value, if any. The
	// root decoder has read ahead by at most one internal buffer, so the
	// tail is its buffered bytes stitched back onto the unread remainder
	// of the stream.
	dec := &Decoder{dec: json.NewDecoder(io.MultiReader(d.Buffered(), br))}
	dec.dec.UseNumber()
	for {
		rec, err := dec.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}
