package ddl

import (
	"strings"
	"testing"
)

func TestBuildCreateTableSQL(t *testing.T) {
	t.Parallel()

	def := TableDef{
		Name: "pokemon_cards",
		Columns: []ColumnDef{
			{Name: "id", SQLType: "VARCHAR(50)", PrimaryKey: true},
			{Name: "name", SQLType: "VARCHAR(100)"},
			{Name: "level", SQLType: "VARCHAR(10)", Nullable: true},
		},
	}

	got, err := BuildCreateTableSQL(def)
	if err != nil {
		t.Fatalf("BuildCreateTableSQL error: %v", err)
	}

	want := "CREATE TABLE IF NOT EXISTS \"pokemon_cards\" (\n" +
		"  \"id\" VARCHAR(50) NOT NULL,\n" +
		"  \"name\" VARCHAR(100) NOT NULL,\n" +
		"  \"level\" VARCHAR(10),\n" +
		"  PRIMARY KEY (\"id\")\n" +
		");"
	if got != want {
		t.Fatalf("BuildCreateTableSQL =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildCreateTableSQL_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  TableDef
	}{
		{
			name: "empty_table_name",
			def:  TableDef{Columns: []ColumnDef{{Name: "id", SQLType: "TEXT"}}},
		},
		{
			name: "no_columns",
			def:  TableDef{Name: "t"},
		},
		{
			name: "column_missing_type",
			def:  TableDef{Name: "t", Columns: []ColumnDef{{Name: "id"}}},
		},
		{
			name: "column_missing_name",
			def:  TableDef{Name: "t", Columns: []ColumnDef{{SQLType: "TEXT"}}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildCreateTableSQL(tc.def); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	if got := QuoteIdent("id"); got != `"id"` {
		t.Fatalf("QuoteIdent(id) = %s", got)
	}
	if got := QuoteIdent(`we"ird`); got != `"we""ird"` {
		t.Fatalf("QuoteIdent escaping = %s", got)
	}
}

func TestBuildCreateTableSQL_DottedName(t *testing.T) {
	t.Parallel()

	def := TableDef{
		Name:    "public.cards",
		Columns: []ColumnDef{{Name: "id", SQLType: "TEXT", PrimaryKey: true}},
	}
	got, err := BuildCreateTableSQL(def)
	if err != nil {
		t.Fatalf("BuildCreateTableSQL error: %v", err)
	}
	if !strings.Contains(got, `"public"."cards"`) {
		t.Fatalf("dotted name not quoted per segment:\n%s", got)
	}
}
