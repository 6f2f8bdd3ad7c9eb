package dataset

import (
	"fmt"
	"sort"
	"time"
)

// Column is a named, typed, ordered collection of cells.
type Column struct {
	Name string
	Kind Kind
	// Levels holds the ordered category labels for KindCategory columns.
	Levels []string
	Cells  []Cell
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Cells)
}

// IsNull reports whether the cell at index i is null.
func (c *Column) IsNull(i int) bool {
	return c.Cells[i].Null
}

// NullCount returns the number of null cells.
func (c *Column) NullCount() int {
	count := 0
	for _, cell := range c.Cells {
		if cell.Null {
			count++
		}
	}
	return count
}

// Median computes the median of the non-null values of a numeric column.
// The second return value is false when the column is not numeric or holds
// no non-null values.
func (c *Column) Median() (float64, bool) {
	if c.Kind != KindNumber {
		return 0, false
	}

	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Null {
			values = append(values, cell.Num)
		}
	}
	if len(values) == 0 {
		return 0, false
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], true
	}
	return (values[mid-1] + values[mid]) / 2, true
}

// FillNulls replaces every null cell with the given cell and returns the
// number of replacements.
func (c *Column) FillNulls(v Cell) int {
	filled := 0
	for i := range c.Cells {
		if c.Cells[i].Null {
			c.Cells[i] = v
			filled++
		}
	}
	return filled
}

// CastDate converts the column to the date kind. String values are parsed
// with the given layouts, tried in order; values that parse with none of
// them become nulls rather than errors. Non-string values also become nulls.
func (c *Column) CastDate(layouts []string) {
	wasDate := c.Kind == KindDate
	for i, cell := range c.Cells {
		if cell.Null || wasDate {
			continue
		}
		c.Cells[i] = parseDateCell(cell.Str, layouts)
	}
	c.Kind = KindDate
	c.Levels = nil
}

// CastCategory converts the column to the category kind. Levels are the
// distinct non-null labels in lexicographic order, matching how the source
// data tooling orders unordered categories.
func (c *Column) CastCategory() {
	seen := make(map[string]bool)
	var levels []string
	for _, cell := range c.Cells {
		if cell.Null {
			continue
		}
		if !seen[cell.Str] {
			seen[cell.Str] = true
			levels = append(levels, cell.Str)
		}
	}
	sort.Strings(levels)

	c.Kind = KindCategory
	c.Levels = levels
}

func parseDateCell(s string, layouts []string) Cell {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t)
		}
	}
	return Null()
}

// Table is an ordered, mutable collection of named, typed columns. Column
// order is insertion order and is preserved on persist.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New creates an empty table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// AddColumn appends a column. It fails on a duplicate name or on a cell
// count that disagrees with the existing columns.
func (t *Table) AddColumn(name string, kind Kind, cells []Cell) (*Column, error) {
	if _, exists := t.index[name]; exists {
		return nil, fmt.Errorf("duplicate column %q", name)
	}
	if len(t.cols) > 0 && len(cells) != t.NumRows() {
		return nil, fmt.Errorf("column %q has %d cells, table has %d rows", name, len(cells), t.NumRows())
	}

	col := &Column{Name: name, Kind: kind, Cells: cells}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, col)
	return col, nil
}

// SetColumn replaces the named column's kind and cells in place, or appends
// a new column when absent, so recomputing a derived column is safe on a
// table that already carries it. The cell count must agree with the table.
func (t *Table) SetColumn(name string, kind Kind, cells []Cell) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return t.AddColumn(name, kind, cells)
	}
	if t.NumCols() > 1 && len(cells) != t.NumRows() {
		return nil, fmt.Errorf("column %q has %d cells, table has %d rows", name, len(cells), t.NumRows())
	}

	col := t.cols[i]
	col.Kind = kind
	col.Levels = nil
	col.Cells = cells
	return col, nil
}

// Column returns the named column, or false when absent.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Columns returns the columns in insertion order.
func (t *Table) Columns() []*Column {
	return t.cols
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Cells)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Drop removes the named columns. Absent names are ignored.
func (t *Table) Drop(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	kept := t.cols[:0]
	for _, col := range t.cols {
		if !drop[col.Name] {
			kept = append(kept, col)
		}
	}
	t.cols = kept
	t.reindex()
}

// Rename changes a column name. It reports whether the column existed.
func (t *Table) Rename(old, new string) bool {
	i, ok := t.index[old]
	if !ok {
		return false
	}
	if old == new {
		return true
	}

	t.cols[i].Name = new
	delete(t.index, old)
	t.index[new] = i
	return true
}

// RenameAll applies a rename mapping. Names not in the mapping pass through
// unchanged; mapping entries for absent columns are ignored.
func (t *Table) RenameAll(renames map[string]string) {
	for old, new := range renames {
		t.Rename(old, new)
	}
}

// NormalizeNames rewrites every column name through f.
func (t *Table) NormalizeNames(f func(string) string) {
	for _, col := range t.cols {
		col.Name = f(col.Name)
	}
	t.reindex()
}

// FilterRows keeps only the rows for which keep returns true and returns
// the number of rows dropped. All columns are filtered in lockstep.
func (t *Table) FilterRows(keep func(row int) bool) int {
	rows := t.NumRows()
	keepIdx := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		if keep(i) {
			keepIdx = append(keepIdx, i)
		}
	}
	if len(keepIdx) == rows {
		return 0
	}

	for _, col := range t.cols {
		cells := make([]Cell, len(keepIdx))
		for j, i := range keepIdx {
			cells[j] = col.Cells[i]
		}
		col.Cells = cells
	}
	return rows - len(keepIdx)
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.cols))
	for i, col := range t.cols {
		t.index[col.Name] = i
	}
}
