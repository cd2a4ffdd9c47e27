package ddl

// ColumnDef describes a single column in a table definition.
//
// Fields:
//   - Name: logical column name (unquoted; quoting happens at render time)
//   - SQLType: target SQL type (e.g., VARCHAR(100), TEXT)
//   - Nullable: whether NULL is allowed
//   - PrimaryKey: whether the column is part of the primary key
type ColumnDef struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
}

// TableDef holds a table name and an ordered list of columns. A dotted name
// (e.g., "public.cards") has each segment quoted individually by renderers.
type TableDef struct {
	Name    string
	Columns []ColumnDef
}
