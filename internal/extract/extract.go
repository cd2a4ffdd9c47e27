// Package extract turns parsed card records into flat export rows.
//
// Only records of one supertype are retained; everything else (Trainer and
// Energy cards) is dropped. Each retained record is flattened into a Row of
// seven string fields in the fixed output column order shared by both
// writers.
package extract

import (
	"context"
	"fmt"
	"strings"

	"cardetl/internal/datasource/file"
	jsonparser "cardetl/internal/parser/json"
	"cardetl/pkg/records"
)

// Supertype is the category retained by the extractor. The comparison is an
// exact byte match: the source data makes no Unicode normalization
// guarantee, so spellings in other normal forms do not match.
const Supertype = "Pokémon"

// listSep joins list-valued fields in the output.
const listSep = ", "

// Columns is the fixed output column order shared by the CSV and SQL
// writers.
var Columns = []string{"id", "name", "subtypes", "level", "hp", "types", "weaknesses"}

// Row is one flattened card. Every field is already coerced to its output
// string form; absent source fields are empty strings, never omitted.
type Row struct {
	ID         string
	Name       string
	Subtypes   string
	Level      string
	HP         string
	Types      string
	Weaknesses string
}

// Values returns the row's fields in Columns order.
func (r Row) Values() []string {
	return []string{r.ID, r.Name, r.Subtypes, r.Level, r.HP, r.Types, r.Weaknesses}
}

// Matches reports whether rec belongs to the extracted category.
func Matches(rec records.Record) bool {
	return rec.String("supertype") == Supertype
}

// FromRecord flattens one card record into a Row. Missing fields yield
// empty strings; list-valued fields are joined in source order.
func FromRecord(rec records.Record) Row {
	return Row{
		ID:         rec.String("id"),
		Name:       rec.String("name"),
		Subtypes:   strings.Join(rec.StringSlice("subtypes"), listSep),
		Level:      rec.String("level"),
		HP:         rec.String("hp"),
		Types:      strings.Join(rec.StringSlice("types"), listSep),
		Weaknesses: joinWeaknesses(rec.RecordSlice("weaknesses")),
	}
}

// joinWeaknesses renders a weakness list as "type(value)" pairs joined by
// listSep, e.g. `Fire(×2), Water(+10)`.
func joinWeaknesses(ws []records.Record) string {
	if len(ws) == 0 {
		return ""
	}
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String("type") + "(" + w.String("value") + ")"
	}
	return strings.Join(parts, listSep)
}

// FromRecords filters recs to the extracted category and flattens the
// matches, preserving source order.
func FromRecords(recs []records.Record) []Row {
	var out []Row
	for _, rec := range recs {
		if !Matches(rec) {
			continue
		}
		out = append(out, FromRecord(rec))
	}
	return out
}

// FileResult is the outcome of extracting a single input file. Err is
// non-nil when the file contributed no rows due to a failure; every such
// failure is non-fatal at the batch level.
type FileResult struct {
	Path string
	Rows []Row
	Err  error
}

// File reads one card export file and extracts its matching rows. Failures
// (missing file, malformed JSON, anything else) are captured in the result
// rather than aborting the caller's batch. Open errors preserve
// errors.Is(err, os.ErrNotExist).
func File(ctx context.Context, path string) FileResult {
	src, err := file.Open(ctx, path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	defer src.Close()

	recs, err := jsonparser.DecodeAll(src)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return FileResult{Path: path, Rows: FromRecords(recs)}
}
