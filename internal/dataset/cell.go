package dataset

import "time"

// Kind identifies the scalar type of a column.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
	KindCategory
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Cell is a single scalar value with an explicit null flag. Only the field
// matching the column kind is meaningful; null cells carry no value at all.
type Cell struct {
	Str  string
	Num  float64
	Date time.Time
	Null bool
}

// Null returns a null cell.
func Null() Cell {
	return Cell{Null: true}
}

// String returns a string cell.
func String(s string) Cell {
	return Cell{Str: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{Num: f}
}

// Date returns a date cell truncated to midnight UTC. Time of day is not
// semantically meaningful anywhere in the pipeline.
func Date(t time.Time) Cell {
	y, m, d := t.Date()
	return Cell{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}
