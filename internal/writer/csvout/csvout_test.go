package csvout

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cardetl/internal/extract"
)

func TestWrite_HeaderPlusRows(t *testing.T) {
	t.Parallel()

	rows := []extract.Row{
		{ID: "base1-58", Name: "Pikachu", Types: "Lightning"},
		{ID: "base1-4", Name: "Charizard", Subtypes: "Stage 2", Level: "76", HP: "120", Types: "Fire", Weaknesses: "Water(×2)"},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(rows, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// header + N rows, one line each
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != len(rows)+1 {
		t.Fatalf("got %d lines; want %d", len(lines), len(rows)+1)
	}

	recs, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !reflect.DeepEqual(recs[0], extract.Columns) {
		t.Fatalf("header = %#v; want %#v", recs[0], extract.Columns)
	}
	if !reflect.DeepEqual(recs[1], rows[0].Values()) {
		t.Fatalf("row 1 = %#v; want %#v", recs[1], rows[0].Values())
	}
}

/*
TestWrite_QuotingRoundTrip verifies the delimited-quoting convention: fields
containing the delimiter, the quote character, or a newline are quoted with
embedded quotes doubled, and survive a strict CSV re-parse unchanged.
*/
func TestWrite_QuotingRoundTrip(t *testing.T) {
	t.Parallel()

	rows := []extract.Row{
		{
			ID:       "x-1",
			Name:     `Nidoran "F", the small` + "\none",
			Subtypes: "Basic, V",
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(rows, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records; want 2", len(recs))
	}
	if !reflect.DeepEqual(recs[1], rows[0].Values()) {
		t.Fatalf("round-trip = %#v; want %#v", recs[1], rows[0].Values())
	}
}

func TestWrite_EmptyAggregateWritesNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Write(nil, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no file for empty aggregate, stat err = %v", err)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := Write([]extract.Row{{ID: "a"}}, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(b), "stale") {
		t.Fatalf("previous content not overwritten: %q", b)
	}
}
