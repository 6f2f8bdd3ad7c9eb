// Package dataset provides the in-memory table model the campaign pipeline
// runs on: an ordered collection of named, typed columns of nullable cells.
//
// # Components
//
// Table/Column: mutable tabular storage with insertion-ordered columns,
// rename/drop/filter operations, per-column medians and type casts.
//
// Codecs: ReadCSV/WriteCSV for delimited files and ReadXLSX for Excel
// workbooks. Reading infers column types (numeric when every non-empty
// value parses as a float); writing preserves column order, renders dates
// as YYYY-MM-DD and trims trailing zeros from floats.
//
// # Null handling
//
// Empty fields load as null cells. Date casting converts unparseable values
// to nulls instead of failing, so a malformed dataset degrades to missing
// values rather than aborting a run.
//
// Example:
//
//	table, err := dataset.ReadCSV("data/dataset_final.csv")
//	if err != nil {
//	    return err
//	}
//	col, ok := table.Column("duration")
//	if ok {
//	    median, _ := col.Median()
//	    col.FillNulls(dataset.Number(median))
//	}
package dataset
