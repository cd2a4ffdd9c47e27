// Package sqlout writes the aggregated extraction result as an executable
// SQL script: a CREATE TABLE preamble for the pokemon_cards table followed
// by one INSERT statement per row.
//
// The script is plain UTF-8 SQL targeting Postgres-compatible databases;
// it also executes cleanly on SQLite, which the tests rely on.
package sqlout

import (
	"fmt"
	"log"
	"os"
	"strings"

	"cardetl/internal/ddl"
	"cardetl/internal/extract"
)

// Table is the destination table declared by the preamble and referenced by
// every INSERT.
const Table = "pokemon_cards"

// tableDef returns the fixed pokemon_cards schema: id is the primary key,
// name is required, the remaining columns are optional character varyings.
func tableDef() ddl.TableDef {
	return ddl.TableDef{
		Name: Table,
		Columns: []ddl.ColumnDef{
			{Name: "id", SQLType: "VARCHAR(50)", PrimaryKey: true},
			{Name: "name", SQLType: "VARCHAR(100)"},
			{Name: "subtypes", SQLType: "VARCHAR(100)", Nullable: true},
			{Name: "level", SQLType: "VARCHAR(10)", Nullable: true},
			{Name: "hp", SQLType: "VARCHAR(10)", Nullable: true},
			{Name: "types", SQLType: "VARCHAR(100)", Nullable: true},
			{Name: "weaknesses", SQLType: "VARCHAR(100)", Nullable: true},
		},
	}
}

// quoteLiteral renders s as a single-quoted SQL string literal with
// embedded single quotes doubled.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Render returns the full SQL script for rows.
func Render(rows []extract.Row) (string, error) {
	create, err := ddl.BuildCreateTableSQL(tableDef())
	if err != nil {
		return "", fmt.Errorf("sql preamble: %w", err)
	}

	quotedCols := make([]string, len(extract.Columns))
	for i, c := range extract.Columns {
		quotedCols[i] = ddl.QuoteIdent(c)
	}
	insertPrefix := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (",
		ddl.QuoteIdent(Table),
		strings.Join(quotedCols, ", "),
	)

	var sb strings.Builder
	sb.WriteString("-- pokemon_cards table creation\n")
	sb.WriteString(create)
	sb.WriteString("\n\n-- insert statements\n")

	vals := make([]string, len(extract.Columns))
	for _, r := range rows {
		for i, v := range r.Values() {
			vals[i] = quoteLiteral(v)
		}
		sb.WriteString(insertPrefix)
		sb.WriteString(strings.Join(vals, ", "))
		sb.WriteString(");\n")
	}
	return sb.String(), nil
}

// Write renders rows and writes the script to path, overwriting any
// existing file in a single operation. An empty aggregate is reported and
// produces no file.
func Write(rows []extract.Row, path string) error {
	if len(rows) == 0 {
		log.Printf("sql: no data to write, skipping %s", path)
		return nil
	}

	script, err := Render(rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
