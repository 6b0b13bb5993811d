package dataset

// ============================================================================
// TABLE — Immutable tabular data
// ============================================================================
// A Table is named columns plus one Row per record. Charts reference columns
// by name; renderers serialize rows wholesale. Tables are never mutated after
// load; builders hold references, not copies.
// ============================================================================

// Row is a single record. Values are float64 for numeric cells, string
// otherwise, nil for empty cells.
type Row map[string]any

// Table holds tabular data with a stable column order.
type Table struct {
	name    string
	columns []string
	rows    []Row
}

// New creates a Table from explicit columns and rows.
// Rows are used as-is; callers must not modify them afterwards.
func New(name string, columns []string, rows []Row) *Table {
	return &Table{name: name, columns: columns, rows: rows}
}

// Name returns the dataset name ("" for ad-hoc tables).
func (t *Table) Name() string { return t.name }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns column names in load order.
// The returned slice is a copy and is safe to modify.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the cell at (row, column), or nil when out of range or the
// column is absent.
func (t *Table) Value(row int, column string) any {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	return t.rows[row][column]
}

// ColumnValues returns all non-nil values of a column, in row order.
func (t *Table) ColumnValues(column string) []any {
	var out []any
	for _, r := range t.rows {
		if v, ok := r[column]; ok && v != nil {
			out = append(out, v)
		}
	}
	return out
}

// Records returns the rows as plain maps for serialization.
// The maps are shared with the table; treat them as read-only.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = map[string]any(r)
	}
	return out
}
