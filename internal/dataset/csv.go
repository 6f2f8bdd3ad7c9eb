package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "campcli/internal/errors"
)

// ReadCSV parses a delimited file into a table. Column types are inferred:
// a column whose non-empty values all parse as floats becomes numeric,
// everything else stays string. Empty fields become nulls.
//
// A missing file surfaces as os.ErrNotExist through the returned error so
// callers can recognize it with errors.Is; structural problems (ragged rows,
// quoting) propagate as parsing errors.
func ReadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open dataset %s", path), err)
		}
		return nil, apperrors.NewStorageError("failed to open dataset", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("malformed delimited file", err)
	}

	return buildTable(records)
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM for Excel compatibility.
	BOMPrefix bool
}

// WriteCSV writes the table to path in insertion column order with no index
// column. Dates render as YYYY-MM-DD, numbers with trailing zeros trimmed,
// nulls as empty fields.
func WriteCSV(path string, t *Table, opts WriteOptions) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create output file", err)
	}
	defer file.Close()

	if opts.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.Names()); err != nil {
		return apperrors.NewStorageError("failed to write header row", err)
	}

	cols := t.Columns()
	row := make([]string, len(cols))
	for i := 0; i < t.NumRows(); i++ {
		for j, col := range cols {
			row[j] = FormatCell(col.Cells[i], col.Kind)
		}
		if err := writer.Write(row); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write row %d", i), err)
		}
	}

	return writer.Error()
}

// buildTable assembles a typed table from raw header+rows records.
func buildTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("dataset has no header row", nil)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	rows := records[1:]

	table := New()
	for j, name := range header {
		kind := inferKind(rows, j)
		cells := make([]Cell, len(rows))
		for i, row := range rows {
			cells[i] = cellFrom(fieldAt(row, j), kind)
		}
		if _, err := table.AddColumn(name, kind, cells); err != nil {
			return nil, apperrors.NewParsingError("invalid dataset header", err)
		}
	}

	return table, nil
}

// inferKind decides the column kind from its raw values. Numeric wins only
// when every non-empty value parses as a float.
func inferKind(rows [][]string, col int) Kind {
	sawValue := false
	for _, row := range rows {
		v := strings.TrimSpace(fieldAt(row, col))
		if v == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return KindString
		}
	}
	if !sawValue {
		return KindString
	}
	return KindNumber
}

func cellFrom(raw string, kind Kind) Cell {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Null()
	}
	if kind == KindNumber {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Null()
		}
		return Number(f)
	}
	return String(v)
}

// fieldAt tolerates short rows from loosely structured spreadsheet exports.
func fieldAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
