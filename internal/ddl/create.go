// Package ddl defines a small table-definition model and renders CREATE
// TABLE statements from it.
//
// Identifiers are emitted in double-quoted, escape-safe form using pgx's
// identifier sanitizer: the generated SQL targets Postgres-compatible
// databases, and SQLite understands the same quoting. Types are emitted
// verbatim; the caller owns dialect correctness of SQLType values.
package ddl

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// QuoteIdent returns id in double-quoted form with embedded quotes escaped.
func QuoteIdent(id string) string {
	return pgx.Identifier{id}.Sanitize()
}

// quoteName quotes a possibly dotted table name, one segment at a time.
func quoteName(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}

// BuildCreateTableSQL renders a CREATE TABLE statement for t:
//
//	CREATE TABLE IF NOT EXISTS "tbl" (
//	  "col1" TYPE NOT NULL,
//	  "col2" TYPE,
//	  PRIMARY KEY ("col1")
//	);
//
// Columns marked PrimaryKey are collected into a trailing table-level
// PRIMARY KEY constraint. NOT NULL is added when Nullable == false.
func BuildCreateTableSQL(t TableDef) (string, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, len(t.Columns))

	for _, c := range t.Columns {
		colName := strings.TrimSpace(c.Name)
		if colName == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", name)
		}
		typ := strings.TrimSpace(c.SQLType)
		if typ == "" {
			return "", fmt.Errorf("ddl: column %s missing SQLType", colName)
		}

		var sb strings.Builder
		sb.WriteString(QuoteIdent(colName))
		sb.WriteByte(' ')
		sb.WriteString(typ)

		if !c.Nullable {
			sb.WriteString(" NOT NULL")
		}

		cols = append(cols, sb.String())

		if c.PrimaryKey {
			pks = append(pks, QuoteIdent(colName))
		}
	}

	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}

	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		quoteName(name),
		strings.Join(cols, ",\n  "),
	)
	return stmt, nil
}
