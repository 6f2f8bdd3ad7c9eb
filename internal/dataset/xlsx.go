package dataset

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "campcli/internal/errors"
)

// ReadXLSX parses the first sheet of an Excel workbook into a table, with
// the same header and type-inference rules as ReadCSV. Spreadsheet exports
// often pad or truncate trailing cells, so short rows are tolerated.
func ReadXLSX(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewStorageError("failed to open dataset "+path, err)
		}
		return nil, apperrors.NewStorageError("failed to stat dataset", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet "+sheets[0], err)
	}

	return buildTable(rows)
}

// WriteXLSX writes the table to a single-sheet workbook in insertion column
// order, with the same cell rendering rules as WriteCSV, so a table loaded
// from a workbook persists back to a workbook its own reader accepts.
func WriteXLSX(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, t.NumCols())
	for i, name := range t.Names() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write header row", err)
	}

	cols := t.Columns()
	for i := 0; i < t.NumRows(); i++ {
		row := make([]interface{}, len(cols))
		for j, col := range cols {
			row[j] = FormatCell(col.Cells[i], col.Kind)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewStorageError("failed to address row", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewStorageError("failed to write data row", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err)
	}
	return nil
}
